package sensors

import (
	"github.com/openvoiceos/mk2fan/internal/configuration"
)

// HwmonSensor reads the temp*_input file of an lm-sensors chip.
type HwmonSensor struct {
	Config configuration.SensorConfig `json:"configuration"`
}

func (sensor HwmonSensor) GetId() string {
	return sensor.Config.ID
}

func (sensor HwmonSensor) GetConfig() configuration.SensorConfig {
	return sensor.Config
}

func (sensor HwmonSensor) GetValue() (float64, error) {
	return readMilliDegreesFile(sensor.GetId(), sensor.Config.HwMon.TempInput)
}
