package sensors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/markusressel/radiator/internal/configuration"
	"github.com/markusressel/radiator/internal/errors"
	"github.com/stretchr/testify/assert"
)

func createTempFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "temp")
	err := os.WriteFile(path, []byte(content), 0o644)
	assert.NoError(t, err)
	return path
}

func TestFileSensor_GetValue(t *testing.T) {
	// GIVEN
	path := createTempFile(t, "55000\n")
	s, err := NewSensor(configuration.SensorConfig{
		File: &configuration.FileSensorConfig{Path: path},
	})
	assert.NoError(t, err)

	// WHEN
	result, err := s.GetValue()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 55.0, result)
}

func TestFileSensor_GetValue_TruncatesToWholeDegrees(t *testing.T) {
	// GIVEN
	s := FileSensor{Path: createTempFile(t, "  52999 ")}

	// WHEN
	result, err := s.GetValue()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 52.0, result)
}

func TestFileSensor_GetValue_Malformed(t *testing.T) {
	// GIVEN
	s := FileSensor{Path: createTempFile(t, "hot\n")}

	// WHEN
	_, err := s.GetValue()

	// THEN
	assert.ErrorIs(t, err, errors.ErrParse)
}

func TestFileSensor_GetValue_Empty(t *testing.T) {
	// GIVEN
	s := FileSensor{Path: createTempFile(t, "\n")}

	// WHEN
	_, err := s.GetValue()

	// THEN
	assert.ErrorIs(t, err, errors.ErrParse)
}

func TestFileSensor_GetValue_Missing(t *testing.T) {
	// GIVEN
	s := FileSensor{Path: filepath.Join(t.TempDir(), "missing")}

	// WHEN
	_, err := s.GetValue()

	// THEN
	assert.ErrorIs(t, err, errors.ErrRead)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileSensor_GetId(t *testing.T) {
	s := FileSensor{Path: configuration.DefaultThermalZonePath}
	assert.Equal(t, "file:/sys/class/thermal/thermal_zone0/temp", s.GetId())
}
