package configuration

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFromEnv(t *testing.T) Configuration {
	viper.Reset()
	t.Cleanup(viper.Reset)

	InitConfig("")
	LoadConfig()
	return CurrentConfig
}

func TestEnvPinAndDelay(t *testing.T) {
	// GIVEN
	t.Setenv("RADIATOR_PIN", "12")
	t.Setenv("RADIATOR_DELAY", "5")

	// WHEN
	config := loadFromEnv(t)

	// THEN
	assert.Equal(t, 5*time.Second, config.PollDelay)
	require.NotNil(t, config.Fan.Pwm)
	assert.Equal(t, 12, config.Fan.Pwm.Pin)
	assert.Equal(t, DefaultPwmFrequency, config.Fan.Pwm.Frequency)
	assert.Nil(t, config.Fan.Udp)
	require.NotNil(t, config.Sensor.File)
	assert.Equal(t, DefaultThermalZonePath, config.Sensor.File.Path)
	assert.NoError(t, validateConfig(&config))
}

func TestEnvAddr(t *testing.T) {
	// GIVEN
	t.Setenv("RADIATOR_ADDR", "192.168.1.50:8088")

	// WHEN
	config := loadFromEnv(t)

	// THEN
	assert.Equal(t, DefaultPollDelay, config.PollDelay)
	require.NotNil(t, config.Fan.Udp)
	assert.Equal(t, "192.168.1.50:8088", config.Fan.Udp.Address)
	assert.Nil(t, config.Fan.Pwm)
	assert.NoError(t, validateConfig(&config))
}
