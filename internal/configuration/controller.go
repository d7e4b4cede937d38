package configuration

import "time"

type ControllerConfig struct {
	// Time between two temperature samples. Fixed at runtime.
	Interval time.Duration `json:"interval" yaml:"interval"`
	// Number of samples kept for the avg/max temperature statistics,
	// the control decision itself never looks at past samples.
	TemperatureWindowSize int `json:"temperatureWindowSize" yaml:"temperatureWindowSize"`
}

type controllerConfigYaml struct {
	Interval              string `yaml:"interval"`
	TemperatureWindowSize int    `yaml:"temperatureWindowSize"`
}

// MarshalYAML writes the interval as a duration string like "1m0s".
func (c ControllerConfig) MarshalYAML() (interface{}, error) {
	return controllerConfigYaml{
		Interval:              c.Interval.String(),
		TemperatureWindowSize: c.TemperatureWindowSize,
	}, nil
}
