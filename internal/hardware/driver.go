package hardware

// Mode of a GPIO pin
type Mode uint

const (
	ModeInput  Mode = 0
	ModeOutput Mode = 1
	ModePwm    Mode = 2
)

func (m Mode) String() string {
	switch m {
	case ModeInput:
		return "input"
	case ModeOutput:
		return "output"
	case ModePwm:
		return "pwm"
	}
	return "unknown"
}

// Status codes returned by a Driver, negative values are failures
const (
	StatusOK           = 0
	StatusInitFailed   = -1
	StatusBadUserGpio  = -2
	StatusBadGpio      = -3
	StatusBadMode      = -4
	StatusBadDutyCycle = -8
)

// Driver is the contract of a native GPIO library.
// Every call returns a status code, StatusOK on success.
type Driver interface {
	// Initialise prepares the library, it must only be called once per process
	Initialise() int
	// SetMode sets the mode of the given pin
	SetMode(pin uint, mode Mode) int
	// SetPwmFrequency sets the PWM frequency of the given pin in Hz
	SetPwmFrequency(pin uint, frequency uint) int
	// SetPwm starts PWM on the given pin with a duty cycle in [0..PwmRange]
	SetPwm(pin uint, duty uint) int
}

// Terminator is implemented by drivers that need to release the hardware on exit
type Terminator interface {
	Terminate()
}
