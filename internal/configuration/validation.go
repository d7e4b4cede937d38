package configuration

import (
	"fmt"
	"math"

	"github.com/openvoiceos/mk2fan/internal/util"
	"golang.org/x/exp/slices"
)

const (
	minSpeed = 0
	maxSpeed = 100

	maxI2cAddress  = 0x7F
	maxI2cRegister = 0xFF
)

// Validate checks CurrentConfig and returns a *ConfigError describing the first problem found.
func Validate(configPath string) error {
	return validateConfig(&CurrentConfig, configPath)
}

func validateConfig(config *Configuration, path string) error {
	if err := validateController(config.Controller); err != nil {
		return err
	}
	if err := validateFan(config.Fan); err != nil {
		return err
	}
	if err := validateSensor(config.Sensor); err != nil {
		return err
	}
	if err := ValidateBands(config.Bands); err != nil {
		return err
	}
	if err := validatePorts(config); err != nil {
		return err
	}

	if containsCmd(config) && len(path) > 0 {
		if _, err := util.CheckFilePermissionsForExecution(path); err != nil {
			return &ConfigError{
				Section: "config",
				Message: fmt.Sprintf("config file '%s' has invalid permissions: %s", path, err),
				Err:     err,
			}
		}
	}

	return nil
}

func containsCmd(config *Configuration) bool {
	return config.Fan.Cmd != nil || config.Sensor.Cmd != nil
}

func validateController(config ControllerConfig) error {
	if config.Interval <= 0 {
		return newConfigError("controller", "interval must be > 0, got %s", config.Interval)
	}
	if config.TemperatureWindowSize <= 0 {
		return newConfigError("controller", "temperatureWindowSize must be >= 1, got %d", config.TemperatureWindowSize)
	}
	return nil
}

func validateFan(config FanConfig) error {
	section := fmt.Sprintf("fan %s", config.ID)
	if len(config.ID) <= 0 {
		return newConfigError("fan", "missing id")
	}

	subConfigs := 0
	if config.I2c != nil {
		subConfigs++
	}
	if config.File != nil {
		subConfigs++
	}
	if config.Cmd != nil {
		subConfigs++
	}
	if subConfigs > 1 {
		return newConfigError(section, "only one fan type can be used per fan definition block")
	}
	if subConfigs <= 0 {
		return newConfigError(section, "sub-configuration for fan is missing, use one of: i2c | file | cmd")
	}

	if config.I2c != nil {
		if config.I2c.Bus < 0 {
			return newConfigError(section, "invalid i2c bus %d, must be >= 0", config.I2c.Bus)
		}
		if config.I2c.Address == 0 || config.I2c.Address > maxI2cAddress {
			return newConfigError(section, "invalid i2c address 0x%02X, must be within 0x01..0x7F", uint16(config.I2c.Address))
		}
		if config.I2c.Register < 0 || config.I2c.Register > maxI2cRegister {
			return newConfigError(section, "invalid i2c register %d, must be within 0..255", config.I2c.Register)
		}
	}

	if config.File != nil && len(config.File.Path) <= 0 {
		return newConfigError(section, "missing file path")
	}

	if config.Cmd != nil {
		if config.Cmd.SetPwm == nil || len(config.Cmd.SetPwm.Exec) <= 0 {
			return newConfigError(section, "missing setPwm executable")
		}
	}

	return nil
}

func validateSensor(config SensorConfig) error {
	section := fmt.Sprintf("sensor %s", config.ID)
	if len(config.ID) <= 0 {
		return newConfigError("sensor", "missing id")
	}

	subConfigs := 0
	if config.HwMon != nil {
		subConfigs++
	}
	if config.File != nil {
		subConfigs++
	}
	if config.Cmd != nil {
		subConfigs++
	}
	if subConfigs > 1 {
		return newConfigError(section, "only one sensor type can be used per sensor definition block")
	}
	if subConfigs <= 0 {
		return newConfigError(section, "sub-configuration for sensor is missing, use one of: hwmon | file | cmd")
	}

	if config.HwMon != nil && config.HwMon.Index <= 0 {
		return newConfigError(section, "invalid index, must be >= 1")
	}
	if config.File != nil && len(config.File.Path) <= 0 {
		return newConfigError(section, "missing file path")
	}
	if config.Cmd != nil && len(config.Cmd.Exec) <= 0 {
		return newConfigError(section, "missing executable")
	}

	return nil
}

// ValidateBands checks that the given bands select exactly one speed for every temperature.
func ValidateBands(bands []BandConfig) error {
	if len(bands) <= 0 {
		return newConfigError("bands", "no bands defined")
	}

	last := len(bands) - 1
	if bands[last].IsBounded() {
		return newConfigError("bands", "bands do not cover all temperatures, the last band must not have a bound")
	}
	if idx := slices.IndexFunc(bands[:last], func(b BandConfig) bool { return !b.IsBounded() }); idx >= 0 {
		return newConfigError(fmt.Sprintf("band %d", idx+1), "only the last band may omit its bound, all following bands are unreachable")
	}

	for i, band := range bands {
		section := fmt.Sprintf("band %d", i+1)
		if band.Speed < minSpeed || band.Speed > maxSpeed {
			return newConfigError(section, "invalid speed %d, must be within %d..%d", band.Speed, minSpeed, maxSpeed)
		}
		if band.Below != nil && band.UpTo != nil {
			return newConfigError(section, "only one of below | upTo can be used per band")
		}
		if !band.IsBounded() {
			continue
		}

		value, inclusive := band.Bound()
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return newConfigError(section, "invalid bound %v", value)
		}

		if i > 0 {
			prevValue, prevInclusive := bands[i-1].Bound()
			if !boundIsAfter(value, inclusive, prevValue, prevInclusive) {
				return newConfigError(section, "overlaps with band %d, bounds must be strictly increasing", i)
			}
		}
	}

	return nil
}

// boundIsAfter reports whether a band ending at (value, inclusive) still matches
// temperatures that a previous band ending at (prev, prevInclusive) does not.
func boundIsAfter(value float64, inclusive bool, prev float64, prevInclusive bool) bool {
	if value != prev {
		return value > prev
	}
	return inclusive && !prevInclusive
}

func validatePorts(config *Configuration) error {
	if config.Statistics.Enabled && (config.Statistics.Port <= 0 || config.Statistics.Port > 65535) {
		return newConfigError("statistics", "invalid port %d", config.Statistics.Port)
	}
	if config.Api.Enabled && (config.Api.Port <= 0 || config.Api.Port > 65535) {
		return newConfigError("api", "invalid port %d", config.Api.Port)
	}
	return nil
}
