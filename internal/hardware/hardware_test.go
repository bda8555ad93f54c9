package hardware_test

import (
	"sync"
	"testing"

	"github.com/markusressel/radiator/internal/errors"
	"github.com/markusressel/radiator/internal/hardware"
	"github.com/markusressel/radiator/internal/testingutils"
	"github.com/stretchr/testify/assert"
)

func TestInterface_InitRunsOnce(t *testing.T) {
	// GIVEN
	driver := testingutils.NewMockDriver()
	h := hardware.NewInterface(driver)

	// WHEN
	err1 := h.Init()
	err2 := h.Init()

	// THEN
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, 1, driver.InitCalls())
}

func TestInterface_InitRunsOnceConcurrently(t *testing.T) {
	// GIVEN
	driver := testingutils.NewMockDriver()
	h := hardware.NewInterface(driver)

	// WHEN
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, h.Init())
		}()
	}
	wg.Wait()

	// THEN
	assert.Equal(t, 1, driver.InitCalls())
}

func TestInterface_InitFailureIsRemembered(t *testing.T) {
	// GIVEN
	driver := testingutils.NewMockDriver()
	driver.InitStatus = hardware.StatusInitFailed
	h := hardware.NewInterface(driver)

	// WHEN
	err1 := h.Init()
	err2 := h.Init()

	// THEN
	assert.ErrorIs(t, err1, errors.ErrConfig)
	assert.ErrorIs(t, err2, errors.ErrConfig)
	assert.Equal(t, 1, driver.InitCalls())
}

func TestInterface_InitAcceptsPositiveStatus(t *testing.T) {
	// GIVEN
	// pigpio returns its version number on success
	driver := testingutils.NewMockDriver()
	driver.InitStatus = 79
	h := hardware.NewInterface(driver)

	// WHEN
	err := h.Init()

	// THEN
	assert.NoError(t, err)
}

func TestInterface_SetMode(t *testing.T) {
	// GIVEN
	driver := testingutils.NewMockDriver()
	h := hardware.NewInterface(driver)

	// WHEN
	err := h.SetMode(12, hardware.ModePwm)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 1, driver.InitCalls())
	mode, ok := driver.Mode(12)
	assert.True(t, ok)
	assert.Equal(t, hardware.ModePwm, mode)
}

func TestInterface_SetModeRejectedByDriver(t *testing.T) {
	// GIVEN
	driver := testingutils.NewMockDriver()
	driver.SetModeStatus = hardware.StatusBadMode
	h := hardware.NewInterface(driver)

	// WHEN
	err := h.SetMode(17, hardware.ModePwm)

	// THEN
	assert.ErrorIs(t, err, errors.ErrConfig)
	assert.ErrorContains(t, err, "bad mode")
}

func TestInterface_SetModePinOutOfRange(t *testing.T) {
	// GIVEN
	driver := testingutils.NewMockDriver()
	h := hardware.NewInterface(driver)

	// WHEN
	err := h.SetMode(54, hardware.ModePwm)

	// THEN
	assert.ErrorIs(t, err, errors.ErrConfig)
	_, ok := driver.Mode(54)
	assert.False(t, ok)
}

func TestInterface_SetPwm(t *testing.T) {
	// GIVEN
	driver := testingutils.NewMockDriver()
	h := hardware.NewInterface(driver)

	// WHEN
	err := h.SetPwm(18, 128)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, []uint{128}, driver.PwmValues(18))
}

func TestInterface_SetPwmRejectedByDriver(t *testing.T) {
	// GIVEN
	driver := testingutils.NewMockDriver()
	driver.SetPwmStatus = hardware.StatusBadDutyCycle
	h := hardware.NewInterface(driver)

	// WHEN
	err := h.SetPwm(18, 128)

	// THEN
	assert.ErrorIs(t, err, errors.ErrActuation)
	assert.ErrorContains(t, err, "status -8")
}

func TestInterface_SetPwmOutOfRange(t *testing.T) {
	// GIVEN
	driver := testingutils.NewMockDriver()
	h := hardware.NewInterface(driver)

	// WHEN
	err := h.SetPwm(18, 256)

	// THEN
	assert.ErrorIs(t, err, errors.ErrActuation)
	assert.Empty(t, driver.PwmValues(18))
}

func TestInterface_SetPwmFrequency(t *testing.T) {
	// GIVEN
	driver := testingutils.NewMockDriver()
	h := hardware.NewInterface(driver)

	// WHEN
	err := h.SetPwmFrequency(18, 25000)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, uint(25000), driver.Frequency(18))
}

func TestInterface_TerminateOnlyAfterInit(t *testing.T) {
	// GIVEN
	driver := testingutils.NewMockDriver()
	h := hardware.NewInterface(driver)

	// WHEN
	h.Terminate()

	// THEN
	assert.False(t, driver.Terminated())

	// WHEN
	assert.NoError(t, h.Init())
	h.Terminate()

	// THEN
	assert.True(t, driver.Terminated())
}
