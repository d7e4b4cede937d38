package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/openvoiceos/mk2fan/internal/configuration"
	"github.com/openvoiceos/mk2fan/internal/fans"
	"github.com/openvoiceos/mk2fan/internal/sensors"
	"github.com/openvoiceos/mk2fan/internal/testingutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createFileConfig(t *testing.T, temperature string) (configuration.Configuration, string) {
	dir := t.TempDir()
	tempPath := filepath.Join(dir, "temp")
	pwmPath := filepath.Join(dir, "pwm")
	require.NoError(t, os.WriteFile(tempPath, []byte(temperature), 0644))
	require.NoError(t, os.WriteFile(pwmPath, []byte("0"), 0644))

	config := configuration.DefaultConfiguration()
	config.Sensor = configuration.SensorConfig{
		ID:   "cpu",
		File: &configuration.FileSensorConfig{Path: tempPath},
	}
	config.Fan = configuration.FanConfig{
		ID:   "fan",
		File: &configuration.FileFanConfig{Path: pwmPath},
	}
	t.Cleanup(func() {
		sensors.SensorMap.Remove("cpu")
		fans.FanMap.Remove("fan")
	})
	return config, pwmPath
}

func TestInitializeObjects_FileFanAndSensor(t *testing.T) {
	// GIVEN
	config, pwmPath := createFileConfig(t, "65000\n")

	// WHEN
	objects, err := InitializeObjects(config, nil)

	// THEN
	require.NoError(t, err)
	assert.True(t, sensors.SensorMap.Has("cpu"))
	assert.True(t, fans.FanMap.Has("fan"))

	temperature, err := objects.Control.GetCpuTemp()
	require.NoError(t, err)
	assert.Equal(t, 65.0, temperature)

	err = objects.Control.SetFanSpeed(objects.Table.Evaluate(temperature))
	require.NoError(t, err)
	content, err := os.ReadFile(pwmPath)
	require.NoError(t, err)
	assert.Equal(t, "127", string(content))
}

func TestInitializeObjects_I2cFan(t *testing.T) {
	// GIVEN
	config, _ := createFileConfig(t, "75000")
	config.Fan = configuration.FanConfig{
		ID: "fan",
		I2c: &configuration.I2cFanConfig{
			Bus:      configuration.DefaultI2cBus,
			Address:  configuration.DefaultI2cAddress,
			Register: configuration.DefaultI2cRegister,
		},
	}
	bus := &testingutils.MockBus{}

	// WHEN
	objects, err := InitializeObjects(config, bus)
	require.NoError(t, err)
	err = objects.Control.SetFanSpeed(100)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, [][4]int{{1, 0x04, 101, 255}}, bus.Writes)
}

func TestInitializeObjects_InvalidBands(t *testing.T) {
	// GIVEN
	config, _ := createFileConfig(t, "45000")
	config.Bands = nil

	// WHEN
	_, err := InitializeObjects(config, nil)

	// THEN
	var configErr *configuration.ConfigError
	assert.ErrorAs(t, err, &configErr)
}

func TestInitializeObjects_UnreadableSensorIsNotFatal(t *testing.T) {
	// GIVEN
	config, _ := createFileConfig(t, "not a number")

	// WHEN
	objects, err := InitializeObjects(config, nil)

	// THEN
	require.NoError(t, err)
	_, err = objects.Control.GetCpuTemp()
	var sensorErr *sensors.SensorError
	assert.ErrorAs(t, err, &sensorErr)
}

func TestCreateFan_NoSubConfig(t *testing.T) {
	// WHEN
	_, err := CreateFan(configuration.FanConfig{ID: "fan"}, nil)

	// THEN
	assert.Error(t, err)
}
