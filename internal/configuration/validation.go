package configuration

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"golang.org/x/exp/slices"
)

const (
	MinPin = 0
	MaxPin = 53
)

var (
	supportedSensorTypes = []string{SensorTypeFile, SensorTypeCmd}
	supportedFanTypes    = []string{FanTypePwm, FanTypeUdp}
)

func Validate() error {
	return validateConfig(&CurrentConfig)
}

func validateConfig(config *Configuration) error {
	if config.PollDelay <= 0 {
		return fmt.Errorf("pollDelay must be > 0, was: %v", config.PollDelay)
	}

	err := validateSensor(&config.Sensor)
	if err != nil {
		return err
	}

	return validateFan(&config.Fan)
}

func validateSensor(config *SensorConfig) error {
	subConfigs := 0
	if config.File != nil {
		subConfigs++
	}
	if config.Cmd != nil {
		subConfigs++
	}
	if subConfigs > 1 {
		return errors.New("sensor: only one sensor type can be used")
	}
	if subConfigs <= 0 || !slices.Contains(supportedSensorTypes, config.Type()) {
		return fmt.Errorf("sensor: sub-configuration for sensor is missing, use one of: %s", strings.Join(supportedSensorTypes, " | "))
	}

	if config.File != nil {
		if len(config.File.Path) <= 0 {
			return errors.New("sensor: no file path provided")
		}
	}

	if config.Cmd != nil {
		if len(config.Cmd.Exec) <= 0 {
			return errors.New("sensor: executable is missing")
		}
		if config.Cmd.Timeout <= 0 {
			return fmt.Errorf("sensor: timeout must be > 0, was: %v", config.Cmd.Timeout)
		}
	}

	return nil
}

func validateFan(config *FanConfig) error {
	subConfigs := 0
	if config.Pwm != nil {
		subConfigs++
	}
	if config.Udp != nil {
		subConfigs++
	}
	if subConfigs > 1 {
		return errors.New("fan: only one fan type can be used")
	}
	if subConfigs <= 0 || !slices.Contains(supportedFanTypes, config.Type()) {
		return fmt.Errorf("fan: sub-configuration for fan is missing, use one of: %s", strings.Join(supportedFanTypes, " | "))
	}

	if config.Pwm != nil {
		pin := config.Pwm.Pin
		if pin < MinPin || pin > MaxPin {
			return fmt.Errorf("fan: invalid pin %d, must be in [%d..%d]", pin, MinPin, MaxPin)
		}
		if config.Pwm.Frequency <= 0 {
			return fmt.Errorf("fan: invalid frequency %d, must be > 0", config.Pwm.Frequency)
		}
	}

	if config.Udp != nil {
		if len(config.Udp.Address) <= 0 {
			return errors.New("fan: no udp address provided")
		}
		_, port, err := net.SplitHostPort(config.Udp.Address)
		if err != nil {
			return fmt.Errorf("fan: invalid udp address '%s': %v", config.Udp.Address, err)
		}
		if len(port) <= 0 {
			return fmt.Errorf("fan: invalid udp address '%s': missing port", config.Udp.Address)
		}
	}

	return nil
}
