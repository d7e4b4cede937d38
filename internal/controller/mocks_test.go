package controller

import (
	"errors"

	"github.com/openvoiceos/mk2fan/internal/configuration"
)

var errBus = errors.New("remote I/O error")

// plainErrorFan fails with an untyped error.
type plainErrorFan struct {
	id string
}

func (fan *plainErrorFan) GetId() string { return fan.id }
func (fan *plainErrorFan) GetConfig() configuration.FanConfig {
	return configuration.FanConfig{ID: fan.id}
}
func (fan *plainErrorFan) SetPwm(int) error { return errBus }
