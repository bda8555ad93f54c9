package testingutils

import (
	"sync"
	"sync/atomic"

	"github.com/markusressel/radiator/internal/hardware"
)

// MockDriver is a hardware.Driver that records calls
// and returns the configured status codes
type MockDriver struct {
	InitStatus      int
	SetModeStatus   int
	FrequencyStatus int
	SetPwmStatus    int

	initCalls   atomic.Int32
	mu          sync.Mutex
	modes       map[uint]hardware.Mode
	frequencies map[uint]uint
	pwm         map[uint][]uint
	terminated  bool
}

func NewMockDriver() *MockDriver {
	return &MockDriver{
		modes:       map[uint]hardware.Mode{},
		frequencies: map[uint]uint{},
		pwm:         map[uint][]uint{},
	}
}

func (d *MockDriver) Initialise() int {
	d.initCalls.Add(1)
	return d.InitStatus
}

func (d *MockDriver) SetMode(pin uint, mode hardware.Mode) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.SetModeStatus == hardware.StatusOK {
		d.modes[pin] = mode
	}
	return d.SetModeStatus
}

func (d *MockDriver) SetPwmFrequency(pin uint, frequency uint) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.FrequencyStatus < hardware.StatusOK {
		return d.FrequencyStatus
	}
	d.frequencies[pin] = frequency
	return int(frequency)
}

func (d *MockDriver) SetPwm(pin uint, duty uint) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.SetPwmStatus == hardware.StatusOK {
		d.pwm[pin] = append(d.pwm[pin], duty)
	}
	return d.SetPwmStatus
}

func (d *MockDriver) Terminate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.terminated = true
}

// InitCalls returns how often Initialise has been called
func (d *MockDriver) InitCalls() int {
	return int(d.initCalls.Load())
}

func (d *MockDriver) Mode(pin uint) (hardware.Mode, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	mode, ok := d.modes[pin]
	return mode, ok
}

func (d *MockDriver) Frequency(pin uint) uint {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frequencies[pin]
}

// PwmValues returns all duty cycles successfully set on the given pin
func (d *MockDriver) PwmValues(pin uint) []uint {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]uint(nil), d.pwm[pin]...)
}

func (d *MockDriver) Terminated() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.terminated
}
