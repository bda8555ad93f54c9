package configuration

import "time"

const (
	SensorTypeFile = "file"
	SensorTypeCmd  = "cmd"
)

type SensorConfig struct {
	File *FileSensorConfig `json:"file,omitempty"`
	Cmd  *CmdSensorConfig  `json:"cmd,omitempty"`
}

type FileSensorConfig struct {
	// Path of a pseudo-file containing the temperature in millidegrees
	Path string `json:"path"`
}

type CmdSensorConfig struct {
	Exec    string        `json:"exec"`
	Args    []string      `json:"args"`
	Timeout time.Duration `json:"timeout"`
}

// Type returns the name of the configured sensor sub-configuration
func (c SensorConfig) Type() string {
	switch {
	case c.File != nil:
		return SensorTypeFile
	case c.Cmd != nil:
		return SensorTypeCmd
	}
	return ""
}
