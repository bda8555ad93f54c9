package configuration

const (
	FanTypePwm = "pwm"
	FanTypeUdp = "udp"
)

type FanConfig struct {
	Pwm *PwmFanConfig `json:"pwm,omitempty"`
	Udp *UdpFanConfig `json:"udp,omitempty"`
}

type PwmFanConfig struct {
	// Pin is the BCM GPIO number of the hardware PWM pin
	Pin int `json:"pin"`
	// Frequency of the PWM signal in Hz
	Frequency int `json:"frequency"`
}

type UdpFanConfig struct {
	// Address of the remote microcontroller as host:port
	Address string `json:"address"`
}

// Type returns the name of the configured fan sub-configuration
func (c FanConfig) Type() string {
	switch {
	case c.Pwm != nil:
		return FanTypePwm
	case c.Udp != nil:
		return FanTypeUdp
	}
	return ""
}
