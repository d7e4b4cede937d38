package config

import (
	"fmt"
	"os"

	"github.com/openvoiceos/mk2fan/internal/configuration"
	"github.com/openvoiceos/mk2fan/internal/ui"
	"github.com/openvoiceos/mk2fan/internal/util"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "/etc/mk2fan/mk2fan.yaml"

var force bool

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Writes the default configuration to a file",
	Long:  `Writes the default configuration (SJ201 fan, thermal_zone0 sensor, default bands) to the given path, ` + defaultConfigPath + ` by default.`,
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultConfigPath
		if len(args) > 0 {
			path = args[0]
		}
		path, err := util.ExpandHomeDir(path)
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists, use --force to overwrite it", path)
		}

		data, err := MarshalDefaultConfiguration()
		if err != nil {
			return err
		}
		if err := util.WriteFileAtomic(path, data); err != nil {
			return err
		}

		ui.Success("Default configuration written to %s", path)
		return nil
	},
}

// MarshalDefaultConfiguration returns the default configuration as yaml.
func MarshalDefaultConfiguration() ([]byte, error) {
	return yaml.Marshal(configuration.DefaultConfiguration())
}

func init() {
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	Command.AddCommand(initCmd)
}
