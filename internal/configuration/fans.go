package configuration

import "fmt"

const (
	DefaultI2cBus      = 1
	DefaultI2cAddress  = I2cAddress(0x04)
	DefaultI2cRegister = 101
)

type FanConfig struct {
	ID   string         `json:"id" yaml:"id"`
	I2c  *I2cFanConfig  `json:"i2c,omitempty" yaml:"i2c,omitempty"`
	File *FileFanConfig `json:"file,omitempty" yaml:"file,omitempty"`
	Cmd  *CmdFanConfig  `json:"cmd,omitempty" yaml:"cmd,omitempty"`
}

// I2cAddress is a 7-bit device address, decodable from "0x04" style strings.
type I2cAddress uint16

// MarshalYAML writes the address in hex notation.
func (a I2cAddress) MarshalYAML() (interface{}, error) {
	return fmt.Sprintf("0x%02x", uint16(a)), nil
}

type I2cFanConfig struct {
	Bus      int        `json:"bus" yaml:"bus"`
	Address  I2cAddress `json:"address" yaml:"address"`
	Register int        `json:"register" yaml:"register"`
}

type FileFanConfig struct {
	Path string `json:"path" yaml:"path"`
}

type CmdFanConfig struct {
	// SetPwm is executed with every occurrence of %pwm% in its args replaced.
	SetPwm *ExecConfig `json:"setPwm,omitempty" yaml:"setPwm,omitempty"`
}

type ExecConfig struct {
	Exec string   `json:"exec" yaml:"exec"`
	Args []string `json:"args" yaml:"args"`
}
