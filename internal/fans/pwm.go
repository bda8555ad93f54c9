package fans

import (
	"fmt"

	"github.com/markusressel/radiator/internal/curves"
	"github.com/markusressel/radiator/internal/hardware"
	"github.com/markusressel/radiator/internal/ui"
)

// PwmFan is a fan attached to a hardware PWM pin.
// Hardware PWM is available on GPIO12, GPIO13, GPIO18 and GPIO19.
type PwmFan struct {
	Pin       int `json:"pin"`
	Frequency int `json:"frequency"`
	Pwm       int `json:"pwm"`

	hw *hardware.Interface
}

// NewPwmFan initializes the hardware interface, if that did not happen yet,
// and configures the given pin as a PWM output
func NewPwmFan(hw *hardware.Interface, pin int, frequency int) (*PwmFan, error) {
	if err := hw.Init(); err != nil {
		return nil, err
	}
	if err := hw.SetMode(pin, hardware.ModePwm); err != nil {
		return nil, err
	}
	if err := hw.SetPwmFrequency(pin, frequency); err != nil {
		return nil, err
	}

	ui.Debug("Configured pin %d as PWM output with %d Hz", pin, frequency)

	return &PwmFan{
		Pin:       pin,
		Frequency: frequency,
		hw:        hw,
	}, nil
}

func (fan *PwmFan) GetId() string {
	return fmt.Sprintf("pwm:%d", fan.Pin)
}

// SetPwm scales the logical duty cycle onto the hardware range [0..255]
func (fan *PwmFan) SetPwm(duty int) (err error) {
	pwm := curves.ToPwm(duty)
	err = fan.hw.SetPwm(fan.Pin, pwm)
	if err != nil {
		return err
	}
	fan.Pwm = duty
	return nil
}

func (fan *PwmFan) GetPwm() int {
	return fan.Pwm
}

// Close leaves the pin as it is, the fan keeps running at its last speed
func (fan *PwmFan) Close() error {
	return nil
}
