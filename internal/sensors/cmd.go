package sensors

import (
	"strconv"
	"strings"
	"time"

	"github.com/markusressel/radiator/internal/errors"
	"github.com/markusressel/radiator/internal/ui"
	"github.com/markusressel/radiator/internal/util"
)

const (
	SensorTypeFile = "file"
	SensorTypeCmd  = "cmd"

	// DefaultTemperature is reported when the command output cannot be parsed
	DefaultTemperature = 0.0
)

// CmdSensor runs an external helper (vcgencmd measure_temp) and extracts
// the temperature from output shaped like "temp=53.2'C".
//
// Unlike FileSensor, malformed output does not fail: it yields DefaultTemperature.
// Failing to run the command at all, including hitting Timeout, is an error.
type CmdSensor struct {
	Exec    string        `json:"exec"`
	Args    []string      `json:"args"`
	Timeout time.Duration `json:"timeout"`

	// run executes the command, defaults to util.SafeCmdExecution
	run func(executable string, args []string, timeout time.Duration) (string, error)
}

func (sensor CmdSensor) GetId() string {
	return SensorTypeCmd + ":" + strings.Join(append([]string{sensor.Exec}, sensor.Args...), " ")
}

func (sensor CmdSensor) GetValue() (float64, error) {
	run := sensor.run
	if run == nil {
		run = util.SafeCmdExecution
	}

	output, err := run(sensor.Exec, sensor.Args, sensor.Timeout)
	if err != nil {
		return 0, errors.Wrap(errors.KindRead, err, "exec %s", sensor.Exec)
	}

	temp, err := parseMeasureTemp(output)
	if err != nil {
		ui.Warning("Unable to parse temperature from output of %s, using %.1f: %v", sensor.Exec, DefaultTemperature, err)
		return DefaultTemperature, nil
	}

	return temp, nil
}

// parseMeasureTemp extracts the number between '=' and the following '\''
func parseMeasureTemp(output string) (float64, error) {
	start := strings.IndexByte(output, '=')
	if start < 0 {
		return 0, errors.New(errors.KindParse, "no '=' in %q", output)
	}
	rest := output[start+1:]
	end := strings.IndexByte(rest, '\'')
	if end < 0 {
		return 0, errors.New(errors.KindParse, "no unit quote in %q", output)
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(rest[:end]), 64)
	if err != nil {
		return 0, errors.Wrap(errors.KindParse, err, "temperature %q", rest[:end])
	}
	return value, nil
}
