package fans

import (
	"github.com/openvoiceos/mk2fan/internal/configuration"
	"github.com/openvoiceos/mk2fan/internal/util"
)

// FileFan writes its pwm value as text to a file, e.g. a sysfs pwm node.
type FileFan struct {
	Config configuration.FanConfig `json:"config"`
}

func (fan *FileFan) GetId() string {
	return fan.Config.ID
}

func (fan *FileFan) GetConfig() configuration.FanConfig {
	return fan.Config
}

func (fan *FileFan) SetPwm(pwm int) (err error) {
	filePath, err := util.ExpandHomeDir(fan.Config.File.Path)
	if err != nil {
		return &IoError{FanId: fan.GetId(), Pwm: pwm, Err: err}
	}

	err = util.WriteIntToFile(pwm, filePath)
	if err != nil {
		return &IoError{FanId: fan.GetId(), Pwm: pwm, Err: err}
	}
	return nil
}
