package controller

import (
	"errors"
	"sync"

	"github.com/openvoiceos/mk2fan/internal/fans"
	"github.com/openvoiceos/mk2fan/internal/sensors"
	"github.com/openvoiceos/mk2fan/internal/util"
)

// FanControl is the actuation layer between the normalized speed scale and a fan output.
type FanControl interface {
	// SetFanSpeed maps speed to a pwm value and writes it to the fan.
	// The stored pwm is only updated if the write succeeded.
	SetFanSpeed(speed int) error
	// GetFanSpeed returns the speed derived from the last successfully written pwm.
	GetFanSpeed() int
	// GetPwm returns the last successfully written pwm.
	GetPwm() int
	// GetCpuTemp reads the sensor and returns degrees Celsius.
	GetCpuTemp() (float64, error)

	GetFan() fans.Fan
	GetSensor() sensors.Sensor
}

type fanControl struct {
	mu     sync.Mutex
	fan    fans.Fan
	sensor sensors.Sensor
	pwm    int
}

func NewFanControl(fan fans.Fan, sensor sensors.Sensor) FanControl {
	return &fanControl{
		fan:    fan,
		sensor: sensor,
		pwm:    fans.MinPwmValue,
	}
}

func (c *fanControl) GetFan() fans.Fan {
	return c.fan
}

func (c *fanControl) GetSensor() sensors.Sensor {
	return c.sensor
}

func (c *fanControl) SetFanSpeed(speed int) error {
	pwm := util.Clamp(fans.SpeedToPwm(speed), fans.MinPwmValue, fans.MaxPwmValue)

	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.fan.SetPwm(pwm)
	if err != nil {
		var ioErr *fans.IoError
		if !errors.As(err, &ioErr) {
			err = &fans.IoError{FanId: c.fan.GetId(), Pwm: pwm, Err: err}
		}
		return err
	}
	c.pwm = pwm
	return nil
}

func (c *fanControl) GetFanSpeed() int {
	return fans.PwmToSpeed(c.GetPwm())
}

func (c *fanControl) GetPwm() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pwm
}

func (c *fanControl) GetCpuTemp() (float64, error) {
	value, err := c.sensor.GetValue()
	if err != nil {
		var sensorErr *sensors.SensorError
		if !errors.As(err, &sensorErr) {
			err = &sensors.SensorError{SensorId: c.sensor.GetId(), Err: err}
		}
		return 0, err
	}
	return value, nil
}
