package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/openvoiceos/mk2fan/cmd/config"
	"github.com/openvoiceos/mk2fan/cmd/fan"
	"github.com/openvoiceos/mk2fan/cmd/global"
	"github.com/openvoiceos/mk2fan/cmd/sensor"
	"github.com/openvoiceos/mk2fan/internal"
	"github.com/openvoiceos/mk2fan/internal/configuration"
	"github.com/openvoiceos/mk2fan/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mk2fan",
	Short: "A daemon to control the fan of a Mark II.",
	Long: `mk2fan periodically samples the CPU temperature and
drives the fan of an SJ201 board according to a band table.`,
	// this is the default command to run when no subcommand is specified
	Run: func(cmd *cobra.Command, args []string) {
		setupUi()
		printHeader()

		configPath, err := configuration.DetectAndReadConfigFile()
		ui.SetNotificationsEnabled(configuration.CurrentConfig.Notifications)
		if len(configPath) > 0 {
			ui.Info("Using configuration file at: %s", configPath)
		} else {
			ui.Info("No configuration file found, using defaults")
		}
		if err != nil {
			var configErr *configuration.ConfigError
			if errors.As(err, &configErr) {
				ui.ErrorAndNotify("Config Validation Error", "%v", err)
			} else {
				ui.Error("%v", err)
			}
			os.Exit(1)
		}

		internal.RunDaemon()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&global.CfgFile, "config", "c", "", "config file (default is $HOME/mk2fan.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&global.NoColor, "no-color", "", false, "Disable all terminal output coloration")
	rootCmd.PersistentFlags().BoolVarP(&global.NoStyle, "no-style", "", false, "Disable all terminal output styling")
	rootCmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "More verbose output")

	rootCmd.AddCommand(config.Command)
	rootCmd.AddCommand(fan.Command)
	rootCmd.AddCommand(sensor.Command)
}

func setupUi() {
	ui.SetDebugEnabled(global.Verbose)

	if global.NoColor {
		pterm.DisableColor()
	}
	if global.NoStyle {
		pterm.DisableStyling()
	}
}

// Print a large text with the LetterStyle from the standard theme.
func printHeader() {
	err := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("mk2", pterm.NewStyle(pterm.FgLightBlue)),
		pterm.NewLettersFromStringWithStyle("fan", pterm.NewStyle(pterm.FgWhite)),
	).Render()
	if err != nil {
		fmt.Println("mk2fan")
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(func() {
		configuration.InitConfig(global.CfgFile)
	})

	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
