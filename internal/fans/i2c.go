package fans

import (
	"github.com/openvoiceos/mk2fan/internal/configuration"
	"github.com/openvoiceos/mk2fan/internal/i2c"
	"github.com/openvoiceos/mk2fan/internal/util"
)

// I2cFan is a fan whose speed register is written over an i2c bus,
// like the fan of the SJ201 (bus 1, address 0x04, register 101).
type I2cFan struct {
	Config configuration.FanConfig `json:"config"`
	Bus    i2c.Writer              `json:"-"`
}

func (fan *I2cFan) GetId() string {
	return fan.Config.ID
}

func (fan *I2cFan) GetConfig() configuration.FanConfig {
	return fan.Config
}

func (fan *I2cFan) SetPwm(pwm int) (err error) {
	conf := fan.Config.I2c
	value := util.Clamp(pwm, MinPwmValue, MaxPwmValue)

	err = fan.Bus.WriteRegister(conf.Bus, uint16(conf.Address), byte(conf.Register), byte(value))
	if err != nil {
		return &IoError{FanId: fan.GetId(), Pwm: value, Err: err}
	}
	return nil
}
