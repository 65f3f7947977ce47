// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

//go:generate mockgen -source=network.go -destination=../mock/mock_network.go -package=mock

import (
	"context"

	"golang-nmgateway/internal/types"
)

// NetworkGateway is the primary port for querying and changing network configuration.
// Every call either returns a typed result or exactly one error from the types package taxonomy.
// Mutating calls on the same profile are serialized by the implementation.
type NetworkGateway interface {
	// GetIPAndMask returns the IPv4 address currently held by a connection profile.
	GetIPAndMask(ctx context.Context, profile string) (types.IPConfig, error)

	// GetInterfaceAddress returns the first IPv4 address the kernel has on an interface.
	GetInterfaceAddress(ctx context.Context, iface string) (types.IPConfig, error)

	// ListRememberedConnections lists saved profiles, optionally restricted to one kind.
	ListRememberedConnections(ctx context.Context, kind types.ProfileKind) ([]types.ConnectionProfile, error)

	// ScanWifiNetworks lists visible access points in scan order.
	ScanWifiNetworks(ctx context.Context) ([]types.WifiNetwork, error)

	// GetActiveWifiNetwork returns the network in use, or nil when none is active.
	GetActiveWifiNetwork(ctx context.Context) (*types.WifiNetwork, error)

	ConnectToKnownConnection(ctx context.Context, name string) (types.OperationResult, error)
	ConnectToNewAccessPoint(ctx context.Context, ssid, password string) (types.OperationResult, error)
	DisconnectConnection(ctx context.Context, name string) (types.OperationResult, error)
	DeleteConnection(ctx context.Context, name string) (types.OperationResult, error)
	SetAutoConnect(ctx context.Context, name string, enabled bool) (types.OperationResult, error)

	// SetStaticIP assigns a manual address to a profile and re-activates it.
	SetStaticIP(ctx context.Context, profile string, config types.StaticIPConfig) (types.IPConfig, error)

	// EnableDHCP switches a profile back to automatic addressing and re-activates it.
	EnableDHCP(ctx context.Context, profile string) (types.OperationResult, error)
}
