package configuration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func createValidConfig() Configuration {
	return Configuration{
		PollDelay: 1 * time.Second,
		Sensor: SensorConfig{
			File: &FileSensorConfig{
				Path: DefaultThermalZonePath,
			},
		},
		Fan: FanConfig{
			Pwm: &PwmFanConfig{
				Pin:       12,
				Frequency: DefaultPwmFrequency,
			},
		},
	}
}

func TestValidateValidConfig(t *testing.T) {
	// GIVEN
	config := createValidConfig()

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.NoError(t, err)
}

func TestValidatePollDelayIsZero(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.PollDelay = 0

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.EqualError(t, err, "pollDelay must be > 0, was: 0s")
}

func TestValidateSensorSubConfigIsMissing(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Sensor = SensorConfig{}

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.EqualError(t, err, "sensor: sub-configuration for sensor is missing, use one of: file | cmd")
}

func TestValidateSensorMultipleSubConfigs(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Sensor.Cmd = &CmdSensorConfig{
		Exec:    DefaultCmdExec,
		Timeout: DefaultCmdTimeout,
	}

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.EqualError(t, err, "sensor: only one sensor type can be used")
}

func TestValidateCmdSensorWithoutTimeout(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Sensor = SensorConfig{
		Cmd: &CmdSensorConfig{
			Exec: DefaultCmdExec,
			Args: []string{DefaultCmdArg},
		},
	}

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.EqualError(t, err, "sensor: timeout must be > 0, was: 0s")
}

func TestValidateFanSubConfigIsMissing(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Fan = FanConfig{}

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.EqualError(t, err, "fan: sub-configuration for fan is missing, use one of: pwm | udp")
}

func TestValidateFanMultipleSubConfigs(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Fan.Udp = &UdpFanConfig{Address: "192.168.3.6:8088"}

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.EqualError(t, err, "fan: only one fan type can be used")
}

func TestValidatePwmFanPinOutOfRange(t *testing.T) {
	for _, pin := range []int{-1, 54, 255} {
		// GIVEN
		config := createValidConfig()
		config.Fan.Pwm.Pin = pin

		// WHEN
		err := validateConfig(&config)

		// THEN
		assert.Error(t, err, "pin %d", pin)
	}
}

func TestValidatePwmFanPinBoundaries(t *testing.T) {
	for _, pin := range []int{MinPin, MaxPin} {
		// GIVEN
		config := createValidConfig()
		config.Fan.Pwm.Pin = pin

		// WHEN
		err := validateConfig(&config)

		// THEN
		assert.NoError(t, err, "pin %d", pin)
	}
}

func TestValidateUdpFanAddressWithoutPort(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Fan = FanConfig{
		Udp: &UdpFanConfig{Address: "192.168.3.6"},
	}

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.ErrorContains(t, err, "fan: invalid udp address '192.168.3.6'")
}

func TestValidateUdpFanValidAddress(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Fan = FanConfig{
		Udp: &UdpFanConfig{Address: "192.168.3.6:8088"},
	}

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.NoError(t, err)
}
