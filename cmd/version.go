package cmd

import (
	"github.com/markusressel/radiator/internal/ui"
	"github.com/spf13/cobra"
)

// Version is overridden at build time using -ldflags "-X github.com/markusressel/radiator/cmd.Version=..."
var Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of radiator",
	Long:  `All software has versions. This is radiator's`,
	Run: func(cmd *cobra.Command, args []string) {
		ui.Printfln(Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
