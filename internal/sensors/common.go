package sensors

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/openvoiceos/mk2fan/internal/configuration"
	cmap "github.com/orcaman/concurrent-map/v2"
)

// MilliDegreesPerDegree is the scale of the kernel thermal interfaces,
// which report temperatures as integer millidegrees Celsius.
const MilliDegreesPerDegree = 1000.0

var (
	SensorMap = cmap.New[Sensor]()
)

type Sensor interface {
	GetId() string

	GetConfig() configuration.SensorConfig

	// GetValue returns the current temperature in degrees Celsius.
	// Failures are returned as *SensorError.
	GetValue() (float64, error)
}

func NewSensor(config configuration.SensorConfig) (Sensor, error) {
	if config.HwMon != nil {
		if len(config.HwMon.TempInput) <= 0 {
			return nil, fmt.Errorf("sensor %s: hwmon temp input has not been resolved", config.ID)
		}
		return &HwmonSensor{
			Config: config,
		}, nil
	}

	if config.File != nil {
		return &FileSensor{
			Config: config,
		}, nil
	}

	if config.Cmd != nil {
		return &CmdSensor{
			Config: config,
		}, nil
	}

	return nil, fmt.Errorf("no matching sensor type for sensor: %s", config.ID)
}

// SensorError is returned when a sensor could not be read or its content could not be parsed.
type SensorError struct {
	SensorId string
	Err      error
}

func (e *SensorError) Error() string {
	return fmt.Sprintf("sensor %s: %v", e.SensorId, e.Err)
}

func (e *SensorError) Unwrap() error {
	return e.Err
}

// ParseMilliDegrees parses a text value of millidegrees Celsius and returns degrees Celsius.
func ParseMilliDegrees(text string) (float64, error) {
	text = strings.TrimSpace(text)
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("unable to parse temperature '%s': %w", text, err)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("temperature is not a finite number: '%s'", text)
	}
	return value / MilliDegreesPerDegree, nil
}
