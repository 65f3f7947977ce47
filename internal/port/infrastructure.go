// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

//go:generate mockgen -source=infrastructure.go -destination=../mock/mock_infrastructure.go -package=mock

import (
	"context"
	"time"

	"golang-nmgateway/internal/types"

	"github.com/vishvananda/netlink"
)

// CommandRunner is a port for running external programs.
type CommandRunner interface {
	// Run executes cmd and waits for it. A non-zero exit code is reported in the result, not as an error.
	// It returns *types.TimeoutError when the timeout expires; the process is killed in that case.
	Run(ctx context.Context, cmd types.Command, timeout time.Duration) (types.CommandResult, error)
}

// LinkInspector is a port for read-only netlink queries.
type LinkInspector interface {
	// GetLinkByName returns a network link by interface name
	GetLinkByName(interfaceName string) (netlink.Link, error)

	// ListAddresses returns IPv4 addresses configured on the link
	ListAddresses(link netlink.Link) ([]netlink.Addr, error)
}

// SystemManager is a port for systemd operations.
type SystemManager interface {
	// RestartUnit restarts a unit and waits for the job to finish
	RestartUnit(ctx context.Context, unit string) error

	// Reboot queues a system reboot
	Reboot(ctx context.Context) error

	// PowerOff queues a system power off
	PowerOff(ctx context.Context) error
}
