package fans

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/openvoiceos/mk2fan/internal/configuration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTruePath(t *testing.T) string {
	t.Helper()
	p, err := exec.LookPath("true")
	if err != nil {
		t.Skip("true executable not available")
	}
	return p
}

func TestCmdFan_NewFan(t *testing.T) {
	// GIVEN
	config := configuration.FanConfig{
		ID:  "cmd",
		Cmd: &configuration.CmdFanConfig{},
	}

	// WHEN
	fan, err := NewFan(config, nil)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, "cmd", fan.GetId())
}

func TestCmdFan_SetPwm(t *testing.T) {
	// GIVEN
	config := configuration.FanConfig{
		ID: "cmd",
		Cmd: &configuration.CmdFanConfig{
			SetPwm: &configuration.ExecConfig{
				Exec: getTruePath(t),
				Args: []string{"-a", "-y", "1", "0x04", "101", "%pwm%", "i"},
			},
		},
	}
	fan, err := NewFan(config, nil)
	require.NoError(t, err)

	// WHEN
	err = fan.SetPwm(255)

	// THEN
	assert.NoError(t, err)
}

func TestCmdFan_SetPwm_ExecutableMissing(t *testing.T) {
	// GIVEN
	config := configuration.FanConfig{
		ID: "cmd",
		Cmd: &configuration.CmdFanConfig{
			SetPwm: &configuration.ExecConfig{
				Exec: "/path/does/not/exist",
				Args: []string{"%pwm%"},
			},
		},
	}
	fan, err := NewFan(config, nil)
	require.NoError(t, err)

	// WHEN
	err = fan.SetPwm(255)

	// THEN
	var ioErr *IoError
	assert.True(t, errors.As(err, &ioErr))
	assert.Equal(t, 255, ioErr.Pwm)
}
