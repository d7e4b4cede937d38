package configuration

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	configName = "mk2fan"
)

type Configuration struct {
	DbPath string `json:"dbPath" yaml:"dbPath"`

	Controller ControllerConfig `json:"controller" yaml:"controller"`

	Fan    FanConfig    `json:"fan" yaml:"fan"`
	Sensor SensorConfig `json:"sensor" yaml:"sensor"`
	Bands  []BandConfig `json:"bands" yaml:"bands"`

	Statistics StatisticsConfig `json:"statistics" yaml:"statistics"`
	Api        ApiConfig        `json:"api" yaml:"api"`

	Notifications bool `json:"notifications" yaml:"notifications"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName(configName)

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Couldn't detect home directory: %v\n", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/mk2fan/")
	}

	viper.SetEnvPrefix(configName)
	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	defaults := DefaultConfiguration()

	viper.SetDefault("dbPath", defaults.DbPath)

	viper.SetDefault("controller.interval", defaults.Controller.Interval)
	viper.SetDefault("controller.temperatureWindowSize", defaults.Controller.TemperatureWindowSize)

	viper.SetDefault("fan.id", defaults.Fan.ID)
	viper.SetDefault("sensor.id", defaults.Sensor.ID)
	viper.SetDefault("bands", defaults.Bands)

	viper.SetDefault("statistics.enabled", defaults.Statistics.Enabled)
	viper.SetDefault("statistics.port", defaults.Statistics.Port)

	viper.SetDefault("api.enabled", defaults.Api.Enabled)
	viper.SetDefault("api.host", defaults.Api.Host)
	viper.SetDefault("api.port", defaults.Api.Port)

	viper.SetDefault("notifications", defaults.Notifications)
}

// DefaultConfiguration returns the configuration of an SJ201 board:
// fan on i2c bus 1, address 0x04, register 101, temperature of thermal_zone0.
func DefaultConfiguration() Configuration {
	return Configuration{
		DbPath: "/etc/mk2fan/mk2fan.db",
		Controller: ControllerConfig{
			Interval:              60 * time.Second,
			TemperatureWindowSize: 10,
		},
		Fan: FanConfig{
			ID: "sj201",
			I2c: &I2cFanConfig{
				Bus:      DefaultI2cBus,
				Address:  DefaultI2cAddress,
				Register: DefaultI2cRegister,
			},
		},
		Sensor: SensorConfig{
			ID: "cpu",
			File: &FileSensorConfig{
				Path: DefaultThermalZonePath,
			},
		},
		Bands: DefaultBands(),
		Statistics: StatisticsConfig{
			Enabled: false,
			Port:    9000,
		},
		Api: ApiConfig{
			Enabled: false,
			Host:    "localhost",
			Port:    9001,
		},
		Notifications: false,
	}
}

// DetectConfigFile reads the config file found by viper and returns its path.
func DetectConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		// a config file is optional, defaults describe the SJ201
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			_, _ = fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
			os.Exit(1)
		}
		return ""
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed()
}

// LoadConfig decodes the viper state into CurrentConfig.
func LoadConfig() error {
	var config Configuration
	err := viper.Unmarshal(&config, viper.DecodeHook(decodeHooks()))
	if err != nil {
		return &ConfigError{Section: "config", Message: fmt.Sprintf("unable to decode into struct: %v", err), Err: err}
	}
	applyDefaultDevices(&config)
	CurrentConfig = config
	return nil
}

// applyDefaultDevices falls back to the SJ201 fan and sensor if no device type is configured.
func applyDefaultDevices(config *Configuration) {
	defaults := DefaultConfiguration()
	fan := &config.Fan
	if fan.I2c == nil && fan.File == nil && fan.Cmd == nil {
		fan.I2c = defaults.Fan.I2c
	} else if fan.I2c != nil {
		// bus 0 is a valid value, so only keys missing from the config are filled in
		if !viper.IsSet("fan.i2c.bus") {
			fan.I2c.Bus = defaults.Fan.I2c.Bus
		}
		if !viper.IsSet("fan.i2c.address") {
			fan.I2c.Address = defaults.Fan.I2c.Address
		}
		if !viper.IsSet("fan.i2c.register") {
			fan.I2c.Register = defaults.Fan.I2c.Register
		}
	}
	sensor := &config.Sensor
	if sensor.HwMon == nil && sensor.File == nil && sensor.Cmd == nil {
		sensor.File = defaults.Sensor.File
	}
}

// DetectAndReadConfigFile loads and validates the configuration.
// Returns the path of the config file in use, empty if none was found.
func DetectAndReadConfigFile() (string, error) {
	configPath := DetectConfigFile()
	if err := LoadConfig(); err != nil {
		return configPath, err
	}
	return configPath, Validate(configPath)
}
