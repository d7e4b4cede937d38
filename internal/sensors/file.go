package sensors

import (
	"github.com/openvoiceos/mk2fan/internal/configuration"
	"github.com/openvoiceos/mk2fan/internal/util"
)

// FileSensor reads a file holding millidegrees Celsius, e.g. /sys/class/thermal/thermal_zone0/temp
type FileSensor struct {
	Config configuration.SensorConfig `json:"configuration"`
}

func (sensor FileSensor) GetId() string {
	return sensor.Config.ID
}

func (sensor FileSensor) GetConfig() configuration.SensorConfig {
	return sensor.Config
}

func (sensor FileSensor) GetValue() (float64, error) {
	return readMilliDegreesFile(sensor.GetId(), sensor.Config.File.Path)
}

func readMilliDegreesFile(sensorId string, path string) (float64, error) {
	filePath, err := util.ExpandHomeDir(path)
	if err != nil {
		return 0, &SensorError{SensorId: sensorId, Err: err}
	}

	text, err := util.ReadTextFromFile(filePath)
	if err != nil {
		return 0, &SensorError{SensorId: sensorId, Err: err}
	}

	value, err := ParseMilliDegrees(text)
	if err != nil {
		return 0, &SensorError{SensorId: sensorId, Err: err}
	}
	return value, nil
}
