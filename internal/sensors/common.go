package sensors

import (
	"fmt"

	"github.com/markusressel/radiator/internal/configuration"
)

// Sensor is a source of the current SoC temperature
type Sensor interface {
	GetId() string

	// GetValue returns the current temperature in degrees Celsius
	GetValue() (float64, error)
}

func NewSensor(config configuration.SensorConfig) (Sensor, error) {
	if config.File != nil {
		return &FileSensor{
			Path: config.File.Path,
		}, nil
	}

	if config.Cmd != nil {
		timeout := config.Cmd.Timeout
		if timeout <= 0 {
			timeout = configuration.DefaultCmdTimeout
		}
		return &CmdSensor{
			Exec:    config.Cmd.Exec,
			Args:    config.Cmd.Args,
			Timeout: timeout,
		}, nil
	}

	return nil, fmt.Errorf("no matching sensor type for sensor: %s", config.Type())
}
