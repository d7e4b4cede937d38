package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/mgutz/ansi"
	"github.com/openvoiceos/mk2fan/cmd/global"
	"github.com/openvoiceos/mk2fan/internal/hwmon"
	"github.com/openvoiceos/mk2fan/internal/sensors"
	"github.com/openvoiceos/mk2fan/internal/ui"
	"github.com/openvoiceos/mk2fan/internal/util"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

const (
	thermalClassPath = "/sys/class/thermal"
	i2cDevClassPath  = "/sys/class/i2c-dev"
)

var (
	thermalZonePattern = regexp.MustCompile(`^thermal_zone\d+$`)
	i2cDevPattern      = regexp.MustCompile(`^i2c-\d+$`)
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect devices",
	Long:  `Detects thermal zones, hwmon temperature inputs and i2c buses and prints them as a list`,
	Run: func(cmd *cobra.Command, args []string) {
		setupUi()

		tableConfig := &table.Config{
			ShowIndex:       false,
			Color:           !global.NoColor,
			AlternateColors: true,
			TitleColorCode:  ansi.ColorCode("white+buf"),
			AltColorCodes: []string{
				ansi.ColorCode("white"),
				ansi.ColorCode("white:236"),
			},
		}

		ui.Printfln("> Thermal zones")
		printTable(table.Table{
			Headers: []string{"Zone", "Type", "Value", "Path"},
			Rows:    detectThermalZones(),
		}, tableConfig)

		for _, controller := range hwmon.GetChips() {
			if len(controller.Name) <= 0 || len(controller.Sensors) <= 0 {
				continue
			}

			ui.Printfln("> %s", controller.Name)

			var rows [][]string
			for _, sensor := range controller.Sensors {
				_, file := filepath.Split(sensor.Input)
				rows = append(rows, []string{
					"", strconv.Itoa(sensor.Index), fmt.Sprintf("%s (%s)", sensor.Label, file), formatTemperature(sensor.Value, nil),
				})
			}
			printTable(table.Table{
				Headers: []string{"Sensors", "Index", "Label", "Value"},
				Rows:    rows,
			}, tableConfig)
		}

		ui.Printfln("> I2C buses")
		printTable(table.Table{
			Headers: []string{"Bus", "Device", "Name"},
			Rows:    detectI2cBuses(),
		}, tableConfig)
	},
}

func detectThermalZones() [][]string {
	zones, err := util.FindFilesMatching(thermalClassPath, thermalZonePattern)
	if err != nil {
		ui.Warning("Unable to list thermal zones: %v", err)
		return nil
	}

	var rows [][]string
	for _, zone := range zones {
		zoneType, err := util.ReadTextFromFile(filepath.Join(zone, "type"))
		if err != nil {
			zoneType = "N/A"
		}
		tempPath := filepath.Join(zone, "temp")
		value, err := util.ReadTextFromFile(tempPath)
		var temperature float64
		if err == nil {
			temperature, err = sensors.ParseMilliDegrees(value)
		}
		rows = append(rows, []string{
			filepath.Base(zone), zoneType, formatTemperature(temperature, err), tempPath,
		})
	}
	return rows
}

func detectI2cBuses() [][]string {
	buses, err := util.FindFilesMatching(i2cDevClassPath, i2cDevPattern)
	if err != nil {
		ui.Warning("Unable to list i2c buses: %v", err)
		return nil
	}

	var rows [][]string
	for _, bus := range buses {
		name := filepath.Base(bus)
		adapterName, err := util.ReadTextFromFile(filepath.Join(bus, "name"))
		if err != nil {
			adapterName = "N/A"
		}
		rows = append(rows, []string{
			name[len("i2c-"):], filepath.Join("/dev", name), adapterName,
		})
	}
	return rows
}

func formatTemperature(value float64, err error) string {
	if err != nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f°C", value)
}

func printTable(t table.Table, config *table.Config) {
	if t.Rows == nil {
		ui.Printfln("  none found")
		return
	}
	var buf bytes.Buffer
	tableErr := t.WriteTable(&buf, config)
	if tableErr != nil {
		ui.Fatal("Error printing table: %v", tableErr)
	}
	printText(buf.String())
}

// printText prints pre-rendered output verbatim, it may contain '%'
func printText(text string) {
	ui.Printfln("%s", text)
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
