package controller

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/asecurityteam/rolling"
	"github.com/markusressel/radiator/internal/curves"
	"github.com/markusressel/radiator/internal/fans"
	"github.com/markusressel/radiator/internal/sensors"
	"github.com/markusressel/radiator/internal/ui"
	"github.com/markusressel/radiator/internal/util"
)

// State of a Monitor
type State int32

const (
	Idle State = iota
	Sampling
	Mapping
	Actuating
	Sleeping
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Sampling:
		return "sampling"
	case Mapping:
		return "mapping"
	case Actuating:
		return "actuating"
	case Sleeping:
		return "sleeping"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int32(s))
}

// number of cycles the latency average is computed over
const latencyWindowSize = 10

// Monitor periodically samples a sensor, maps the temperature to a duty cycle
// and applies it to a fan. The first error of any stage stops it for good.
type Monitor struct {
	sensor sensors.Sensor
	curve  curves.SpeedCurve
	fan    fans.Fan
	delay  time.Duration

	state   atomic.Int32
	cycles  int
	latency *rolling.PointPolicy

	after func(d time.Duration) <-chan time.Time
}

func NewMonitor(sensor sensors.Sensor, curve curves.SpeedCurve, fan fans.Fan, delay time.Duration) *Monitor {
	return &Monitor{
		sensor:  sensor,
		curve:   curve,
		fan:     fan,
		delay:   delay,
		latency: util.CreateRollingWindow(latencyWindowSize),
		after:   time.After,
	}
}

func (m *Monitor) State() State {
	return State(m.state.Load())
}

// Cycles returns the number of completed sample-map-actuate cycles
func (m *Monitor) Cycles() int {
	return m.cycles
}

// Latency returns the average time spent sampling and actuating over the last cycles
func (m *Monitor) Latency() time.Duration {
	if m.cycles == 0 {
		return 0
	}
	return time.Duration(util.GetWindowAvg(m.latency))
}

// MaxLatency returns the longest time spent sampling and actuating over the last cycles
func (m *Monitor) MaxLatency() time.Duration {
	if m.cycles == 0 {
		return 0
	}
	return time.Duration(util.GetWindowMax(m.latency))
}

func (m *Monitor) setState(state State) {
	m.state.Store(int32(state))
}

// Run blocks until a stage fails or ctx is cancelled.
// Sensor and fan are only ever accessed from the OS thread Run is locked to.
func (m *Monitor) Run(ctx context.Context) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	ui.Info("Starting monitor: %s -> %s -> %s every %s", m.sensor.GetId(), m.curve.GetId(), m.fan.GetId(), m.delay)

	for {
		err := m.cycle()
		if err != nil {
			m.setState(Failed)
			ui.Error("Monitor stopped after %d cycles: %v", m.cycles, err)
			return err
		}

		m.setState(Sleeping)
		select {
		case <-ctx.Done():
			m.setState(Idle)
			ui.Info("Monitor stopped after %d cycles", m.cycles)
			return nil
		case <-m.after(m.delay):
		}
	}
}

func (m *Monitor) cycle() error {
	start := time.Now()

	m.setState(Sampling)
	temp, err := m.sensor.GetValue()
	if err != nil {
		return fmt.Errorf("sample %s: %w", m.sensor.GetId(), err)
	}

	m.setState(Mapping)
	duty := m.curve.Evaluate(temp)

	m.setState(Actuating)
	err = m.fan.SetPwm(duty)
	if err != nil {
		return fmt.Errorf("apply duty %d to %s: %w", duty, m.fan.GetId(), err)
	}

	m.cycles++
	m.latency.Append(float64(time.Since(start)))
	ui.Debug("%.1f°C -> duty %d (latency avg %s, max %s)", temp, duty, m.Latency(), m.MaxLatency())

	return nil
}
