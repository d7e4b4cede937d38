package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/guptarohit/asciigraph"
	"github.com/mgutz/ansi"
	"github.com/openvoiceos/mk2fan/cmd/global"
	"github.com/openvoiceos/mk2fan/internal/bands"
	"github.com/openvoiceos/mk2fan/internal/configuration"
	"github.com/openvoiceos/mk2fan/internal/ui"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

const (
	plotMinTemperature = 20.0
	plotMaxTemperature = 90.0
	plotStep           = 0.5
)

var bandCmd = &cobra.Command{
	Use:   "band",
	Short: "Print the band table",
	Long:  `Prints the configured temperature bands and a plot of the resulting fan speed`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		setupUi()

		configPath, err := configuration.DetectAndReadConfigFile()
		if len(configPath) > 0 {
			ui.Info("Using configuration file at: %s", configPath)
		}
		if err != nil {
			ui.Error("%v", err)
			os.Exit(1)
		}

		bandTable, err := bands.NewTable(configuration.CurrentConfig.Bands)
		if err != nil {
			ui.Error("%v", err)
			os.Exit(1)
		}

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

		var rows [][]string
		for i, band := range bandTable.Bands() {
			rows = append(rows, []string{
				strconv.Itoa(i + 1), bandTable.Describe(i), fmt.Sprintf("%d%%", band.Speed),
			})
		}
		bandsTable := table.Table{
			Headers: []string{"Band", "Temperature (°C)", "Speed"},
			Rows:    rows,
		}
		var buf bytes.Buffer
		tableErr := bandsTable.WriteTable(&buf, tableConfig)
		if tableErr != nil {
			ui.Fatal("Error printing table: %v", tableErr)
		}
		printText(buf.String())

		var values []float64
		for t := plotMinTemperature; t <= plotMaxTemperature; t += plotStep {
			values = append(values, float64(bandTable.Evaluate(t)))
		}
		caption := fmt.Sprintf("Speed (%%) / Temperature (%.0f..%.0f°C)", plotMinTemperature, plotMaxTemperature)
		graph := asciigraph.Plot(values, asciigraph.Height(10), asciigraph.Width(100), asciigraph.Caption(caption))
		printText(graph)
	},
}

func init() {
	rootCmd.AddCommand(bandCmd)
}
