package sensor

import (
	"fmt"

	"github.com/markusressel/radiator/internal/configuration"
	"github.com/markusressel/radiator/internal/curves"
	"github.com/markusressel/radiator/internal/sensors"
	"github.com/markusressel/radiator/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var showDuty bool

var Command = &cobra.Command{
	Use:   "sensor",
	Short: "Print the current temperature of the configured sensor",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		sensor, err := getSensor()
		if err != nil {
			return err
		}

		value, err := sensor.GetValue()
		if err != nil {
			return err
		}

		if showDuty {
			fmt.Printf("%.1f %d\n", value, curves.Evaluate(value))
		} else {
			fmt.Printf("%.1f\n", value)
		}
		return nil
	},
}

func init() {
	Command.Flags().BoolVarP(
		&showDuty,
		"duty", "d",
		false,
		"Also print the duty cycle the temperature maps to",
	)
}

func getSensor() (sensors.Sensor, error) {
	configPath := configuration.DetectConfigFile()
	if configPath != "" {
		ui.Info("Using configuration file at: %s", configPath)
	}
	configuration.LoadConfig()
	err := configuration.Validate()
	if err != nil {
		ui.Fatal("%v", err)
	}

	return sensors.NewSensor(configuration.CurrentConfig.Sensor)
}
