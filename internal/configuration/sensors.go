package configuration

const (
	DefaultThermalZonePath = "/sys/class/thermal/thermal_zone0/temp"
)

type SensorConfig struct {
	ID    string             `json:"id" yaml:"id"`
	HwMon *HwMonSensorConfig `json:"hwMon,omitempty" yaml:"hwMon,omitempty"`
	File  *FileSensorConfig  `json:"file,omitempty" yaml:"file,omitempty"`
	Cmd   *CmdSensorConfig   `json:"cmd,omitempty" yaml:"cmd,omitempty"`
}

type HwMonSensorConfig struct {
	Platform  string `json:"platform" yaml:"platform"`
	Index     int    `json:"index" yaml:"index"`
	TempInput string `json:"tempInput,omitempty" yaml:"-"`
}

type FileSensorConfig struct {
	Path string `json:"path" yaml:"path"`
}

type CmdSensorConfig struct {
	Exec string   `json:"exec" yaml:"exec"`
	Args []string `json:"args" yaml:"args"`
}
