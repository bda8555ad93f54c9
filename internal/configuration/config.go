package configuration

import (
	"github.com/markusressel/radiator/internal/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"os"
	"strings"
	"time"
)

const (
	DefaultThermalZonePath = "/sys/class/thermal/thermal_zone0/temp"
	DefaultCmdExec         = "vcgencmd"
	DefaultCmdArg          = "measure_temp"
	DefaultCmdTimeout      = 2 * time.Second
	DefaultPollDelay       = 1 * time.Second
	DefaultPwmFrequency    = 25000
)

// Configuration is the MonitorConfig of a single radiator process.
// It is loaded once at startup and never changes afterwards.
type Configuration struct {
	PollDelay time.Duration `json:"pollDelay"`

	Sensor SensorConfig `json:"sensor"`
	Fan    FanConfig    `json:"fan"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("radiator")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/radiator/")
	}

	viper.SetEnvPrefix("radiator")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match
	bindLegacyEnv()

	setDefaultValues()
}

// the variables the service was originally deployed with
func bindLegacyEnv() {
	_ = viper.BindEnv("fan.pwm.pin", "RADIATOR_PIN")
	_ = viper.BindEnv("fan.udp.address", "RADIATOR_ADDR")
	_ = viper.BindEnv("pollDelay", "RADIATOR_DELAY")
}

func setDefaultValues() {
	viper.SetDefault("pollDelay", DefaultPollDelay)
}

// DetectConfigFile reads the config file, if there is one, and returns its path.
// A missing config file is not an error, defaults and environment are used instead.
func DetectConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			ui.Warning("No configuration file found, using defaults and environment")
			return ""
		}
		ui.Fatal("Error reading config file, %s", err)
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed()
}

func LoadConfig() {
	err := viper.Unmarshal(&CurrentConfig, viper.DecodeHook(DecodeHook()))
	if err != nil {
		ui.Fatal("unable to decode into struct, %v", err)
	}
	applyDefaults(&CurrentConfig)
}

// DecodeHook returns the hooks used to decode the configuration
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		secondsToDurationHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// fills in sub-configuration values that cannot be expressed as viper defaults,
// because their parent block is optional
func applyDefaults(config *Configuration) {
	if config.Sensor.File == nil && config.Sensor.Cmd == nil {
		config.Sensor.File = &FileSensorConfig{}
	}
	if config.Sensor.File != nil && len(config.Sensor.File.Path) <= 0 {
		config.Sensor.File.Path = DefaultThermalZonePath
	}
	if config.Sensor.Cmd != nil {
		if len(config.Sensor.Cmd.Exec) <= 0 {
			config.Sensor.Cmd.Exec = DefaultCmdExec
			if len(config.Sensor.Cmd.Args) <= 0 {
				config.Sensor.Cmd.Args = []string{DefaultCmdArg}
			}
		}
		if config.Sensor.Cmd.Timeout == 0 {
			config.Sensor.Cmd.Timeout = DefaultCmdTimeout
		}
	}
	if config.Fan.Pwm != nil && config.Fan.Pwm.Frequency == 0 {
		config.Fan.Pwm.Frequency = DefaultPwmFrequency
	}
}
