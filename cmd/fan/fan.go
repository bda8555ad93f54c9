package fan

import (
	"github.com/markusressel/radiator/internal/configuration"
	"github.com/markusressel/radiator/internal/fans"
	"github.com/markusressel/radiator/internal/ui"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:              "fan",
	Short:            "Fan related commands",
	Long:             ``,
	TraverseChildren: true,
}

func getFan() (fans.Fan, error) {
	configPath := configuration.DetectConfigFile()
	if configPath != "" {
		ui.Info("Using configuration file at: %s", configPath)
	}
	configuration.LoadConfig()
	err := configuration.Validate()
	if err != nil {
		ui.Fatal("%v", err)
	}

	return fans.NewFan(configuration.CurrentConfig.Fan)
}
