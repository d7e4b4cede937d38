package sensors

import (
	"time"

	"github.com/openvoiceos/mk2fan/internal/configuration"
	"github.com/openvoiceos/mk2fan/internal/util"
)

const cmdTimeout = 2 * time.Second

// CmdSensor runs an executable that prints millidegrees Celsius.
type CmdSensor struct {
	Config configuration.SensorConfig `json:"configuration"`
}

func (sensor CmdSensor) GetId() string {
	return sensor.Config.ID
}

func (sensor CmdSensor) GetConfig() configuration.SensorConfig {
	return sensor.Config
}

func (sensor CmdSensor) GetValue() (float64, error) {
	conf := sensor.Config.Cmd
	result, err := util.SafeCmdExecution(conf.Exec, conf.Args, cmdTimeout)
	if err != nil {
		return 0, &SensorError{SensorId: sensor.GetId(), Err: err}
	}

	value, err := ParseMilliDegrees(result)
	if err != nil {
		return 0, &SensorError{SensorId: sensor.GetId(), Err: err}
	}
	return value, nil
}
