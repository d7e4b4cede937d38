package fan

import (
	"github.com/openvoiceos/mk2fan/internal/configuration"
	"github.com/openvoiceos/mk2fan/internal/ui"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:              "fan",
	Short:            "Fan related commands",
	Long:             ``,
	TraverseChildren: true,
}

func loadConfig() error {
	configPath, err := configuration.DetectAndReadConfigFile()
	if len(configPath) > 0 {
		ui.Info("Using configuration file at: %s", configPath)
	}
	return err
}
