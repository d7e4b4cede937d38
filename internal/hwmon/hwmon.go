package hwmon

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/md14454/gosensors"
	"github.com/openvoiceos/mk2fan/internal/configuration"
)

const (
	BusTypeIsa      = 1
	BusTypePci      = 2
	BusTypeI2c      = 4
	BusTypeAcpi     = 5
	BusTypePlatform = 7
)

// HwMonController is an lm-sensors chip exposing at least one temperature input.
type HwMonController struct {
	Name     string
	Platform string
	Path     string

	Sensors []*TempInput
}

// TempInput is a single temperature input of a chip.
type TempInput struct {
	Label string
	// Index is 1-based, in the order lm-sensors reports the inputs
	Index int
	// Input is the path of the temp*_input file
	Input string
	Value float64
}

func GetChips() []*HwMonController {
	gosensors.Init()
	defer gosensors.Cleanup()
	chips := gosensors.GetDetectedChips()

	var list []*HwMonController
	for i := 0; i < len(chips); i++ {
		chip := chips[i]

		sensorList := getTempInputs(chip)
		if len(sensorList) <= 0 {
			continue
		}

		identifier := computeIdentifier(chip)
		list = append(list, &HwMonController{
			Name:     identifier,
			Platform: identifier,
			Path:     chip.Path,
			Sensors:  sensorList,
		})
	}

	return list
}

func getTempInputs(chip gosensors.Chip) []*TempInput {
	var sensorList []*TempInput

	features := chip.GetFeatures()
	for j := 0; j < len(features); j++ {
		feature := features[j]
		if feature.Type != gosensors.FeatureTypeTemp {
			continue
		}

		for _, subFeature := range feature.GetSubFeatures() {
			if subFeature.Type != gosensors.SubFeatureTypeTempInput {
				continue
			}
			sensorList = append(sensorList, &TempInput{
				Label: getLabel(chip.Path, subFeature.Name),
				Index: len(sensorList) + 1,
				Input: filepath.Join(chip.Path, subFeature.Name),
				Value: subFeature.GetValue(),
			})
			break
		}
	}

	return sensorList
}

// ResolveSensorInput finds the temp input matching the platform regex and index of
// the given config and stores its path in config.TempInput.
func ResolveSensorInput(config *configuration.HwMonSensorConfig, controllers []*HwMonController) error {
	expr, err := regexp.Compile("(?i)" + config.Platform)
	if err != nil {
		return fmt.Errorf("invalid platform regex '%s': %w", config.Platform, err)
	}

	for _, c := range controllers {
		if !expr.MatchString(c.Platform) {
			continue
		}
		for _, s := range c.Sensors {
			if s.Index == config.Index {
				config.TempInput = s.Input
				return nil
			}
		}
		return fmt.Errorf("hwmon device '%s' has no temperature input with index %d", c.Platform, config.Index)
	}

	return fmt.Errorf("couldn't find hwmon device with platform '%s'", config.Platform)
}

// getLabel read the label of a in/output of a device
func getLabel(devicePath string, input string) string {
	labelPath := filepath.Join(devicePath, strings.TrimSuffix(input, "input")+"label")

	content, _ := os.ReadFile(labelPath)
	label := strings.TrimSpace(string(content))
	if len(label) <= 0 {
		_, label = filepath.Split(devicePath)
	}
	return label
}

func computeIdentifier(chip gosensors.Chip) (name string) {
	name = chip.Prefix

	if len(name) <= 0 {
		content, _ := os.ReadFile(filepath.Join(chip.Path, "name"))
		name = strings.TrimSpace(string(content))
	}
	if len(name) <= 0 {
		_, name = filepath.Split(chip.Path)
	}

	switch chip.Bus.Type {
	case BusTypeIsa:
		return fmt.Sprintf("%s-isa-%d", name, chip.Bus.Nr)
	case BusTypePci:
		return fmt.Sprintf("%s-pci-%d", name, chip.Bus.Nr)
	case BusTypeI2c:
		return fmt.Sprintf("%s-i2c-%d", name, chip.Bus.Nr)
	case BusTypeAcpi:
		return fmt.Sprintf("%s-acpi-%d", name, chip.Bus.Nr)
	case BusTypePlatform:
		return fmt.Sprintf("%s-virtual-%d", name, chip.Bus.Nr)
	}
	return name
}
