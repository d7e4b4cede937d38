package hwmon

import (
	"testing"

	"github.com/openvoiceos/mk2fan/internal/configuration"
	"github.com/stretchr/testify/assert"
)

var testControllers = []*HwMonController{
	{
		Name:     "cpu_thermal-virtual-0",
		Platform: "cpu_thermal-virtual-0",
		Path:     "/sys/class/hwmon/hwmon0",
		Sensors: []*TempInput{
			{Label: "temp1", Index: 1, Input: "/sys/class/hwmon/hwmon0/temp1_input"},
		},
	},
	{
		Name:     "k10temp-pci-00c3",
		Platform: "k10temp-pci-00c3",
		Path:     "/sys/class/hwmon/hwmon1",
		Sensors: []*TempInput{
			{Label: "Tctl", Index: 1, Input: "/sys/class/hwmon/hwmon1/temp1_input"},
			{Label: "Tccd1", Index: 2, Input: "/sys/class/hwmon/hwmon1/temp3_input"},
		},
	},
}

func TestResolveSensorInput(t *testing.T) {
	// GIVEN
	config := &configuration.HwMonSensorConfig{Platform: "K10TEMP", Index: 2}

	// WHEN
	err := ResolveSensorInput(config, testControllers)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, "/sys/class/hwmon/hwmon1/temp3_input", config.TempInput)
}

func TestResolveSensorInput_IndexMissing(t *testing.T) {
	// GIVEN
	config := &configuration.HwMonSensorConfig{Platform: "cpu_thermal", Index: 3}

	// WHEN
	err := ResolveSensorInput(config, testControllers)

	// THEN
	assert.EqualError(t, err, "hwmon device 'cpu_thermal-virtual-0' has no temperature input with index 3")
	assert.Empty(t, config.TempInput)
}

func TestResolveSensorInput_PlatformMissing(t *testing.T) {
	// GIVEN
	config := &configuration.HwMonSensorConfig{Platform: "coretemp", Index: 1}

	// WHEN
	err := ResolveSensorInput(config, testControllers)

	// THEN
	assert.EqualError(t, err, "couldn't find hwmon device with platform 'coretemp'")
}

func TestResolveSensorInput_InvalidRegex(t *testing.T) {
	// GIVEN
	config := &configuration.HwMonSensorConfig{Platform: "(", Index: 1}

	// WHEN
	err := ResolveSensorInput(config, testControllers)

	// THEN
	assert.Error(t, err)
}
