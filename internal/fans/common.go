package fans

import (
	"fmt"

	"github.com/markusressel/radiator/internal/configuration"
	"github.com/markusressel/radiator/internal/hardware"
)

// Fan is an actuator consuming a logical duty cycle in [curves.MinDuty..curves.MaxDuty]
type Fan interface {
	GetId() string

	// SetPwm applies the given duty cycle
	SetPwm(duty int) (err error)

	// GetPwm returns the last duty cycle that was applied successfully
	GetPwm() int

	Close() error
}

func NewFan(config configuration.FanConfig) (Fan, error) {
	if config.Pwm != nil {
		return NewPwmFan(hardware.Global(), config.Pwm.Pin, config.Pwm.Frequency)
	}

	if config.Udp != nil {
		return NewUdpFan(config.Udp.Address)
	}

	return nil, fmt.Errorf("no matching fan type for fan: %s", config.Type())
}
