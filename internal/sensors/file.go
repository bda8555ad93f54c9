package sensors

import (
	"os"
	"strconv"
	"strings"

	"github.com/markusressel/radiator/internal/errors"
	"github.com/mitchellh/go-homedir"
)

// FileSensor reads a pseudo-file containing an integer count of millidegrees,
// like /sys/class/thermal/thermal_zone0/temp.
// Any read or parse failure is returned to the caller.
type FileSensor struct {
	Path string `json:"path"`
}

func (sensor FileSensor) GetId() string {
	return SensorTypeFile + ":" + sensor.Path
}

func (sensor FileSensor) GetValue() (float64, error) {
	filePath, err := homedir.Expand(sensor.Path)
	if err != nil {
		return 0, errors.Wrap(errors.KindRead, err, "resolve %s", sensor.Path)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return 0, errors.Wrap(errors.KindRead, err, "read %s", filePath)
	}

	return parseMilliDegrees(string(data))
}

// parseMilliDegrees converts a millidegree value to whole degrees,
// dropping the fractional part
func parseMilliDegrees(text string) (float64, error) {
	text = strings.TrimSpace(text)
	milliDegrees, err := strconv.Atoi(text)
	if err != nil {
		return 0, errors.Wrap(errors.KindParse, err, "millidegrees %q", text)
	}
	return float64(milliDegrees / 1000), nil
}
