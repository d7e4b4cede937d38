package configuration

import "fmt"

// ConfigError describes an invalid static configuration. It is detected before
// anything is started and is always fatal.
type ConfigError struct {
	Section string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Section, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func newConfigError(section string, format string, a ...interface{}) *ConfigError {
	return &ConfigError{
		Section: section,
		Message: fmt.Sprintf(format, a...),
	}
}
