package util

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/markusressel/radiator/internal/ui"
)

// grace period for the pipes to close after the process group has been killed
const cmdWaitDelay = 500 * time.Millisecond

// SafeCmdExecution runs the given executable, which has to pass CheckFilePermissionsForExecution,
// and returns its trimmed stdout. The process and everything it spawned
// are killed when timeout is reached.
func SafeCmdExecution(executable string, args []string, timeout time.Duration) (string, error) {
	path, err := exec.LookPath(executable)
	if err != nil {
		return "", fmt.Errorf("cannot find %s: %w", executable, err)
	}
	if _, err := CheckFilePermissionsForExecution(path); err != nil {
		return "", fmt.Errorf("cannot execute %s: %w", path, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
	cmd.WaitDelay = cmdWaitDelay
	out, err := cmd.Output()

	if ctx.Err() == context.DeadlineExceeded {
		ui.Warning("Command timed out: %s", executable)
		return "", fmt.Errorf("command %s timed out after %v: %w", executable, timeout, ctx.Err())
	}

	if err != nil {
		ui.Warning("Command failed to execute: %s", executable)
		return "", err
	}

	strout := string(out)
	strout = strings.Trim(strout, "\n")

	return strout, nil
}
