package curves

import (
	"math"
)

const (
	// MinTemp is the temperature at and below which the fan is off
	MinTemp = 40.0
	// MaxTemp is the temperature at and above which the fan runs at full speed
	MaxTemp = 70.0

	MinDuty = 0
	// MaxDuty is the top of the logical duty cycle scale
	MaxDuty = 1024

	MinPwmValue = 0
	MaxPwmValue = 255
)

// SpeedCurve maps a temperature to a duty cycle
type SpeedCurve interface {
	GetId() string
	// Evaluate returns the duty cycle for the given temperature in degrees Celsius,
	// the result is never lower for a higher temperature
	Evaluate(temp float64) int
}

// LinearSpeedCurve is off up to Min, linear in between and full at Max.
// Intermediate values are rounded up, so the fan is never under-driven.
type LinearSpeedCurve struct {
	ID      string  `json:"id"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	MaxDuty int     `json:"maxDuty"`
}

// Default is the fixed policy of radiator: 40°C -> 0, 70°C -> 1024
var Default SpeedCurve = &LinearSpeedCurve{
	ID:      "default",
	Min:     MinTemp,
	Max:     MaxTemp,
	MaxDuty: MaxDuty,
}

func (c *LinearSpeedCurve) GetId() string {
	return c.ID
}

func (c *LinearSpeedCurve) Evaluate(temp float64) int {
	if math.IsNaN(temp) || temp <= c.Min {
		return MinDuty
	}
	if temp >= c.Max {
		return c.MaxDuty
	}

	value := int(math.Ceil((temp - c.Min) * float64(c.MaxDuty) / (c.Max - c.Min)))
	if value > c.MaxDuty {
		value = c.MaxDuty
	}
	return value
}

// Slope returns the duty cycle increase per degree between Min and Max
func (c *LinearSpeedCurve) Slope() float64 {
	return float64(c.MaxDuty) / (c.Max - c.Min)
}

// Evaluate maps temp using the Default curve
func Evaluate(temp float64) int {
	return Default.Evaluate(temp)
}

// ToPwm maps a logical duty cycle [MinDuty..MaxDuty] onto the hardware PWM range [0..255],
// rounding up. Values outside of the logical range are clamped.
func ToPwm(duty int) int {
	if duty <= MinDuty {
		return MinPwmValue
	}
	if duty >= MaxDuty {
		return MaxPwmValue
	}
	return (duty*MaxPwmValue + MaxDuty - 1) / MaxDuty
}
