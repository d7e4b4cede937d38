package fans

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/openvoiceos/mk2fan/internal/configuration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileFan_GetId(t *testing.T) {
	// GIVEN
	id := "test"
	config := configuration.FanConfig{
		ID: id,
		File: &configuration.FileFanConfig{
			Path: "/path/to/pwm",
		},
	}
	fan, err := NewFan(config, nil)
	assert.NoError(t, err)

	// WHEN
	result := fan.GetId()

	// THEN
	assert.Equal(t, id, result)
}

func TestFileFan_SetPwm(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "pwm1")
	config := configuration.FanConfig{
		ID: "file",
		File: &configuration.FileFanConfig{
			Path: filePath,
		},
	}
	fan, err := NewFan(config, nil)
	require.NoError(t, err)

	// WHEN
	err = fan.SetPwm(191)

	// THEN
	assert.NoError(t, err)
	content, err := os.ReadFile(filePath)
	assert.NoError(t, err)
	assert.Equal(t, "191", string(content))
}

func TestFileFan_SetPwm_MissingDirectory(t *testing.T) {
	// GIVEN
	config := configuration.FanConfig{
		ID: "file",
		File: &configuration.FileFanConfig{
			Path: filepath.Join(t.TempDir(), "missing", "pwm1"),
		},
	}
	fan, err := NewFan(config, nil)
	require.NoError(t, err)

	// WHEN
	err = fan.SetPwm(191)

	// THEN
	var ioErr *IoError
	assert.True(t, errors.As(err, &ioErr))
}
