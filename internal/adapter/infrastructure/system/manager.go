// Package system provides the systemd adapter implementation.
package system

import (
	"context"
	"fmt"

	"golang-nmgateway/internal/pkg/logging"
	"golang-nmgateway/internal/port"

	"github.com/coreos/go-systemd/v22/dbus"
)

const (
	rebootTarget   = "reboot.target"
	poweroffTarget = "poweroff.target"
)

// unitConn is the part of the systemd D-Bus connection the adapter uses.
type unitConn interface {
	RestartUnitContext(ctx context.Context, name string, mode string, ch chan<- string) (int, error)
	StartUnitContext(ctx context.Context, name string, mode string, ch chan<- string) (int, error)
	Close()
}

// ManagerAdapter is an adapter that implements the SystemManager port over the systemd D-Bus API.
type ManagerAdapter struct {
	dial func(ctx context.Context) (unitConn, error)
}

// Ensure ManagerAdapter implements the SystemManager port
var _ port.SystemManager = (*ManagerAdapter)(nil)

// NewManagerAdapter creates a new systemd adapter.
func NewManagerAdapter() *ManagerAdapter {
	return &ManagerAdapter{dial: dialSystemd}
}

func dialSystemd(ctx context.Context) (unitConn, error) {
	return dbus.NewWithContext(ctx)
}

// RestartUnit restarts a unit and waits for systemd to report the job result.
func (m *ManagerAdapter) RestartUnit(ctx context.Context, unit string) error {
	conn, err := m.dial(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to systemd: %w", err)
	}
	defer conn.Close()

	done := make(chan string, 1)
	if _, err := conn.RestartUnitContext(ctx, unit, "replace", done); err != nil {
		return fmt.Errorf("failed to restart %s: %w", unit, err)
	}

	select {
	case result := <-done:
		if result != "done" {
			return fmt.Errorf("restart of %s finished with result %q", unit, result)
		}
	case <-ctx.Done():
		return fmt.Errorf("waiting for restart of %s: %w", unit, ctx.Err())
	}

	logging.WithComponent("system").WithField("unit", unit).Info("Unit restarted")
	return nil
}

// Reboot queues reboot.target. It returns once systemd has accepted the job.
func (m *ManagerAdapter) Reboot(ctx context.Context) error {
	return m.startTarget(ctx, rebootTarget)
}

// PowerOff queues poweroff.target. It returns once systemd has accepted the job.
func (m *ManagerAdapter) PowerOff(ctx context.Context) error {
	return m.startTarget(ctx, poweroffTarget)
}

func (m *ManagerAdapter) startTarget(ctx context.Context, target string) error {
	conn, err := m.dial(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to systemd: %w", err)
	}
	defer conn.Close()

	if _, err := conn.StartUnitContext(ctx, target, "replace-irreversibly", nil); err != nil {
		return fmt.Errorf("failed to start %s: %w", target, err)
	}
	logging.WithComponent("system").WithField("target", target).Warn("System power action queued")
	return nil
}
