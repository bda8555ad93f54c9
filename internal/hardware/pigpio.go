//go:build pigpio

package hardware

/*
#cgo LDFLAGS: -lpigpio -lrt -lpthread
#include <pigpio.h>
*/
import "C"

// pigpioDriver binds libpigpio, which needs to run as root
type pigpioDriver struct{}

// NewDriver returns the native driver this binary was built with.
func NewDriver() Driver {
	return &pigpioDriver{}
}

func (d *pigpioDriver) Initialise() int {
	// returns the library version on success
	if version := int(C.gpioInitialise()); version < 0 {
		return StatusInitFailed
	}
	return StatusOK
}

func (d *pigpioDriver) SetMode(pin uint, mode Mode) int {
	var m C.uint
	switch mode {
	case ModeInput:
		m = C.PI_INPUT
	case ModeOutput, ModePwm:
		// pigpio generates PWM on any output pin
		m = C.PI_OUTPUT
	default:
		return StatusBadMode
	}
	return int(C.gpioSetMode(C.uint(pin), m))
}

func (d *pigpioDriver) SetPwmFrequency(pin uint, frequency uint) int {
	return int(C.gpioSetPWMfrequency(C.uint(pin), C.uint(frequency)))
}

func (d *pigpioDriver) SetPwm(pin uint, duty uint) int {
	return int(C.gpioPWM(C.uint(pin), C.uint(duty)))
}

func (d *pigpioDriver) Terminate() {
	C.gpioTerminate()
}
