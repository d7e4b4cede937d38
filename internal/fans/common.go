package fans

import (
	"fmt"

	"github.com/openvoiceos/mk2fan/internal/configuration"
	"github.com/openvoiceos/mk2fan/internal/i2c"
	"github.com/openvoiceos/mk2fan/internal/util"
	cmap "github.com/orcaman/concurrent-map/v2"
)

const (
	MinPwmValue = 0
	MaxPwmValue = 255

	MinSpeed = 0
	MaxSpeed = 100
)

var (
	FanMap = cmap.New[Fan]()
)

// Fan is an output that accepts a device-native pwm value.
type Fan interface {
	GetId() string

	GetConfig() configuration.FanConfig

	// SetPwm writes the given value in [MinPwmValue, MaxPwmValue] to the device.
	// A failed write is returned as *IoError.
	SetPwm(pwm int) (err error)
}

// NewFan creates the fan output described by config. i2c fans write through bus.
func NewFan(config configuration.FanConfig, bus i2c.Writer) (Fan, error) {
	if config.I2c != nil {
		if bus == nil {
			return nil, fmt.Errorf("fan %s: no i2c bus available", config.ID)
		}
		return &I2cFan{
			Config: config,
			Bus:    bus,
		}, nil
	}

	if config.File != nil {
		return &FileFan{
			Config: config,
		}, nil
	}

	if config.Cmd != nil {
		return &CmdFan{
			Config: config,
		}, nil
	}

	return nil, fmt.Errorf("no matching fan type for fan: %s", config.ID)
}

// SpeedToPwm maps a speed in [0..100] to the pwm range [0..255].
// Out of range speeds are clamped, the result is truncated toward zero.
func SpeedToPwm(speed int) int {
	speed = util.Clamp(speed, MinSpeed, MaxSpeed)
	pwmSteps := MaxPwmValue - MinPwmValue
	speedSteps := MaxSpeed - MinSpeed
	return (speed-MinSpeed)*pwmSteps/speedSteps + MinPwmValue
}

// PwmToSpeed maps a pwm value in [0..255] to the speed range [0..100].
// Out of range values are clamped, the result is rounded to the nearest integer.
func PwmToSpeed(pwm int) int {
	pwm = util.Clamp(pwm, MinPwmValue, MaxPwmValue)
	ratio := float64(MaxSpeed-MinSpeed) / float64(MaxPwmValue-MinPwmValue)
	return util.Round(float64(pwm-MinPwmValue)*ratio) + MinSpeed
}
