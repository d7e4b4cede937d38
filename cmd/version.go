package cmd

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mk2fan",
	Run: func(cmd *cobra.Command, args []string) {
		printText(Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
