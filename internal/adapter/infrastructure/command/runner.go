// Package command provides the process execution adapter implementation.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"time"

	"golang-nmgateway/internal/pkg/logging"
	"golang-nmgateway/internal/pkg/metrics"
	"golang-nmgateway/internal/port"
	"golang-nmgateway/internal/types"

	"golang.org/x/sys/unix"
)

const (
	// DefaultTimeout applies when the caller passes a non-positive timeout.
	DefaultTimeout = 10 * time.Second

	// waitDelay bounds how long Wait blocks on output pipes after the process group is killed.
	waitDelay = 2 * time.Second
)

// RunnerAdapter is an adapter that implements the CommandRunner port using os/exec.
// Each command runs in its own process group so a timeout kills any children as well.
type RunnerAdapter struct {
	env []string
}

// Ensure RunnerAdapter implements the CommandRunner port
var _ port.CommandRunner = (*RunnerAdapter)(nil)

// NewRunnerAdapter creates a new command runner adapter.
// Commands inherit the process environment with the C locale forced, so tool output is not translated.
func NewRunnerAdapter() *RunnerAdapter {
	return &RunnerAdapter{env: append(os.Environ(), "LC_ALL=C", "LANG=C")}
}

// Run executes the command and waits for it to exit or for the timeout to expire.
func (r *RunnerAdapter) Run(ctx context.Context, command types.Command, timeout time.Duration) (types.CommandResult, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	logger := logging.WithComponent("runner").WithField("command", command.String())

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(runCtx, command.Name, command.Args...)
	cmd.Env = r.env
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return unix.Kill(-cmd.Process.Pid, unix.SIGKILL)
	}
	cmd.WaitDelay = waitDelay

	program := filepath.Base(command.Name)
	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	result := types.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil && ctx.Err() != nil {
		metrics.ObserveCommand(program, command.Label(), metrics.OutcomeError, elapsed)
		return result, fmt.Errorf("command %s cancelled: %w", command.String(), ctx.Err())
	}
	if err != nil && errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		metrics.ObserveCommand(program, command.Label(), metrics.OutcomeTimeout, elapsed)
		logger.WithField("timeout", timeout).Warn("Command timed out, process group killed")
		return result, &types.TimeoutError{Command: command.String(), Timeout: timeout}
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		metrics.ObserveCommand(program, command.Label(), metrics.OutcomeSuccess, elapsed)
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
		metrics.ObserveCommand(program, command.Label(), metrics.OutcomeFailure, elapsed)
	default:
		metrics.ObserveCommand(program, command.Label(), metrics.OutcomeError, elapsed)
		return result, fmt.Errorf("failed to run %s: %w", command.Name, err)
	}

	logger.WithFields(map[string]interface{}{
		"exit_code": result.ExitCode,
		"elapsed":   elapsed.Round(time.Millisecond),
	}).Debug("Command finished")
	return result, nil
}
