//go:build !pigpio

package hardware

import (
	"github.com/stianeikeland/go-rpio/v4"
)

// pins that are wired to one of the two BCM2835 PWM channels
var hardwarePwmPins = map[uint]bool{
	12: true, 13: true, 18: true, 19: true, 40: true, 41: true, 45: true,
}

// rpioDriver drives the BCM2835 PWM peripheral through /dev/mem.
// The PWM and clock registers are not mapped by /dev/gpiomem, so this needs root.
type rpioDriver struct{}

// NewDriver returns the native driver this binary was built with.
// Build with "-tags pigpio" to use libpigpio instead of go-rpio.
func NewDriver() Driver {
	return &rpioDriver{}
}

func (d *rpioDriver) Initialise() int {
	if err := rpio.Open(); err != nil {
		return StatusInitFailed
	}
	return StatusOK
}

func (d *rpioDriver) SetMode(pin uint, mode Mode) int {
	if pin > MaxPin {
		return StatusBadGpio
	}

	p := rpio.Pin(pin)
	switch mode {
	case ModeInput:
		p.Input()
	case ModeOutput:
		p.Output()
	case ModePwm:
		if !hardwarePwmPins[pin] {
			return StatusBadMode
		}
		p.Mode(rpio.Pwm)
	default:
		return StatusBadMode
	}
	return StatusOK
}

func (d *rpioDriver) SetPwmFrequency(pin uint, frequency uint) int {
	if !hardwarePwmPins[pin] {
		return StatusBadUserGpio
	}
	// the clock has to tick PwmRange+1 times per PWM period
	rpio.Pin(pin).Freq(int(frequency) * (PwmRange + 1))
	return int(frequency)
}

func (d *rpioDriver) SetPwm(pin uint, duty uint) int {
	if !hardwarePwmPins[pin] {
		return StatusBadUserGpio
	}
	if duty > PwmRange {
		return StatusBadDutyCycle
	}
	rpio.Pin(pin).DutyCycle(uint32(duty), PwmRange)
	return StatusOK
}

func (d *rpioDriver) Terminate() {
	_ = rpio.Close()
}
