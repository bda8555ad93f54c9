package hardware

import (
	"fmt"
	"sync"

	"github.com/markusressel/radiator/internal/errors"
	"github.com/markusressel/radiator/internal/ui"
)

const (
	MinPin = 0
	MaxPin = 53

	// PwmRange is the highest duty cycle accepted by SetPwm
	PwmRange = 255
)

// Interface guards access to a Driver, making sure it is initialized
// exactly once, no matter how many fans are created.
type Interface struct {
	driver Driver

	initOnce    sync.Once
	initErr     error
	initialized bool
}

var (
	global     *Interface
	globalOnce sync.Once
)

// Global returns the process-wide hardware interface backed by the native driver
func Global() *Interface {
	globalOnce.Do(func() {
		global = NewInterface(NewDriver())
	})
	return global
}

// CleanupAtExit releases the native driver, if it was initialized.
// To be called at the end of main().
func CleanupAtExit() {
	if global != nil {
		global.Terminate()
	}
}

func NewInterface(driver Driver) *Interface {
	return &Interface{
		driver: driver,
	}
}

// Init initializes the driver. Only the first call reaches the driver,
// concurrent callers wait for it to finish and every caller gets its result.
func (h *Interface) Init() error {
	h.initOnce.Do(func() {
		status := h.driver.Initialise()
		if status < StatusOK {
			h.initErr = errors.Wrap(errors.KindConfig, statusError(status), "initialise hardware")
			return
		}
		ui.Debug("Hardware initialized (status %d)", status)
		h.initialized = true
	})
	return h.initErr
}

// SetMode sets the mode of the given pin, the interface must have been initialized
func (h *Interface) SetMode(pin int, mode Mode) error {
	if err := h.Init(); err != nil {
		return err
	}
	if pin < MinPin || pin > MaxPin {
		return errors.New(errors.KindConfig, "pin %d is out of range [%d..%d]", pin, MinPin, MaxPin)
	}

	status := h.driver.SetMode(uint(pin), mode)
	if status != StatusOK {
		return errors.Wrap(errors.KindConfig, statusError(status), "set mode %s on pin %d", mode, pin)
	}
	return nil
}

// SetPwmFrequency sets the PWM frequency of the given pin in Hz
func (h *Interface) SetPwmFrequency(pin int, frequency int) error {
	if frequency <= 0 {
		return errors.New(errors.KindConfig, "invalid pwm frequency %d on pin %d", frequency, pin)
	}
	status := h.driver.SetPwmFrequency(uint(pin), uint(frequency))
	if status < StatusOK {
		return errors.Wrap(errors.KindConfig, statusError(status), "set pwm frequency %d on pin %d", frequency, pin)
	}
	return nil
}

// SetPwm sets the duty cycle [0..PwmRange] of the given pin
func (h *Interface) SetPwm(pin int, duty int) error {
	if duty < 0 || duty > PwmRange {
		return errors.New(errors.KindActuation, "duty cycle %d on pin %d is out of range [0..%d]", duty, pin, PwmRange)
	}

	status := h.driver.SetPwm(uint(pin), uint(duty))
	if status != StatusOK {
		return errors.Wrap(errors.KindActuation, statusError(status), "set pwm %d on pin %d", duty, pin)
	}
	return nil
}

// Terminate releases the driver if it was initialized successfully
func (h *Interface) Terminate() {
	if !h.initialized {
		return
	}
	if t, ok := h.driver.(Terminator); ok {
		t.Terminate()
	}
}

func statusError(status int) error {
	switch status {
	case StatusInitFailed:
		return fmt.Errorf("status %d: initialisation failed", status)
	case StatusBadUserGpio, StatusBadGpio:
		return fmt.Errorf("status %d: bad gpio", status)
	case StatusBadMode:
		return fmt.Errorf("status %d: bad mode", status)
	case StatusBadDutyCycle:
		return fmt.Errorf("status %d: bad duty cycle", status)
	}
	return fmt.Errorf("status %d", status)
}
