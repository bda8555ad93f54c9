package config

import (
	"fmt"
	"os"

	"github.com/markusressel/radiator/internal/configuration"
	"github.com/markusressel/radiator/internal/ui"
	"github.com/markusressel/radiator/internal/util"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "radiator.yaml"

var force bool

type fileSensor struct {
	Path string `yaml:"path"`
}

type pwmFan struct {
	Pin       int `yaml:"pin"`
	Frequency int `yaml:"frequency"`
}

type defaultConfig struct {
	PollDelay string `yaml:"pollDelay"`
	Sensor    struct {
		File fileSensor `yaml:"file"`
	} `yaml:"sensor"`
	Fan struct {
		Pwm pwmFan `yaml:"pwm"`
	} `yaml:"fan"`
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Writes a default configuration file",
	Long:  `Writes a configuration using the thermal zone sensor and a PWM fan on GPIO18 to the given path (default: ./radiator.yaml)`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultConfigPath
		if len(args) > 0 {
			path = args[0]
		}

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists, use --force to overwrite it", path)
		}

		data, err := renderDefaultConfig()
		if err != nil {
			return err
		}

		if err = util.WriteFileAtomic(path, data); err != nil {
			return err
		}

		ui.Success("Default configuration written to %s", path)
		return nil
	},
}

func renderDefaultConfig() ([]byte, error) {
	config := defaultConfig{
		PollDelay: configuration.DefaultPollDelay.String(),
	}
	config.Sensor.File.Path = configuration.DefaultThermalZonePath
	config.Fan.Pwm = pwmFan{
		Pin:       18,
		Frequency: configuration.DefaultPwmFrequency,
	}
	return yaml.Marshal(&config)
}

func init() {
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	Command.AddCommand(initCmd)
}
