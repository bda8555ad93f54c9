package internal

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/markusressel/radiator/internal/configuration"
	"github.com/markusressel/radiator/internal/controller"
	"github.com/markusressel/radiator/internal/curves"
	"github.com/markusressel/radiator/internal/errors"
	"github.com/markusressel/radiator/internal/fans"
	"github.com/markusressel/radiator/internal/hardware"
	"github.com/markusressel/radiator/internal/sensors"
	"github.com/markusressel/radiator/internal/ui"
	"github.com/oklog/run"
)

// replaced in tests
var (
	exit    = os.Exit
	cleanup = hardware.CleanupAtExit
)

// shutdown releases the hardware before exiting, deferred calls in main do not run on exit
func shutdown(code int) {
	cleanup()
	exit(code)
}

// RunDaemon runs the monitor until it fails or the process is signalled.
// A failed monitor exits the process with a non-zero code, restarting it is up to the supervisor.
func RunDaemon() {
	mon, fan, err := InitializeObjects(configuration.CurrentConfig)
	if err != nil {
		ui.Error("Unable to start: %v", err)
		shutdown(1)
		return
	}
	defer func() {
		_ = fan.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())

	var g run.Group
	{
		// === monitor
		g.Add(func() error {
			return mon.Run(ctx)
		}, func(err error) {
			cancel()
		})
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			select {
			case s := <-sig:
				ui.Info("Received %s signal, exiting...", s)
			case <-ctx.Done():
			}
			return nil
		}, func(err error) {
			signal.Stop(sig)
			cancel()
		})
	}

	if err := g.Run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s: %v\n", errors.KindOf(err), err)
		_ = fan.Close()
		shutdown(1)
		return
	}
	ui.Info("Done.")
}

// InitializeObjects creates the sensor, fan and monitor described by config.
// Construction errors are returned before anything is started.
func InitializeObjects(config configuration.Configuration) (*controller.Monitor, fans.Fan, error) {
	sensor, err := sensors.NewSensor(config.Sensor)
	if err != nil {
		return nil, nil, err
	}

	fan, err := fans.NewFan(config.Fan)
	if err != nil {
		return nil, nil, err
	}

	mon := controller.NewMonitor(sensor, curves.Default, fan, config.PollDelay)
	return mon, fan, nil
}
