// Package nmcli implements the NetworkGateway port by driving NetworkManager's command line client.
package nmcli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang-nmgateway/internal/pkg/logging"
	"golang-nmgateway/internal/port"
	"golang-nmgateway/internal/types"

	"github.com/vishvananda/netlink"
)

const (
	DefaultPath           = "nmcli"
	DefaultReadTimeout    = 5 * time.Second
	DefaultWriteTimeout   = 15 * time.Second
	DefaultConnectTimeout = 45 * time.Second
	DefaultScanTimeout    = 30 * time.Second
)

// Timeouts bounds each class of command.
type Timeouts struct {
	Read    time.Duration // queries: connection show, ip lookups
	Write   time.Duration // modify, delete, down
	Connect time.Duration // activation, which may involve radio negotiation and DHCP
	Scan    time.Duration // device wifi list
}

// Options configures a Gateway.
type Options struct {
	// Path is the nmcli executable.
	Path string

	// WirelessInterface pins scans and new connections to one device when set.
	WirelessInterface string

	// VendorPrefixes restricts scan results to BSSIDs starting with one of these OUIs.
	VendorPrefixes []string

	Timeouts Timeouts
}

func (o Options) withDefaults() Options {
	if o.Path == "" {
		o.Path = DefaultPath
	}
	if o.Timeouts.Read <= 0 {
		o.Timeouts.Read = DefaultReadTimeout
	}
	if o.Timeouts.Write <= 0 {
		o.Timeouts.Write = DefaultWriteTimeout
	}
	if o.Timeouts.Connect <= 0 {
		o.Timeouts.Connect = DefaultConnectTimeout
	}
	if o.Timeouts.Scan <= 0 {
		o.Timeouts.Scan = DefaultScanTimeout
	}
	return o
}

// Gateway is a stateless translator between gateway operations and nmcli invocations.
// The only state it keeps is the per-profile lock table that serializes mutations.
type Gateway struct {
	runner port.CommandRunner
	links  port.LinkInspector
	opts   Options
	locks  *profileLocks
}

// Ensure Gateway implements the NetworkGateway port
var _ port.NetworkGateway = (*Gateway)(nil)

// NewGateway creates a gateway that runs commands through runner and reads kernel addresses through links.
func NewGateway(runner port.CommandRunner, links port.LinkInspector, opts Options) *Gateway {
	return &Gateway{
		runner: runner,
		links:  links,
		opts:   opts.withDefaults(),
		locks:  newProfileLocks(),
	}
}

// execute runs cmd and returns stdout. A non-zero exit becomes *types.ExecutionError.
func (g *Gateway) execute(ctx context.Context, cmd types.Command, timeout time.Duration) (string, error) {
	logging.WithComponent("nmcli").WithField("command", cmd.String()).Debug("Running command")

	result, err := g.runner.Run(ctx, cmd, timeout)
	if err != nil {
		return "", err
	}
	if result.ExitCode != 0 {
		stderr := result.Stderr
		if strings.TrimSpace(stderr) == "" {
			stderr = result.Stdout
		}
		return "", &types.ExecutionError{
			Command:  cmd.String(),
			ExitCode: result.ExitCode,
			Stderr:   stderr,
		}
	}
	return result.Stdout, nil
}

// mutate runs commands in order while holding the profile lock, stopping at the first failure.
func (g *Gateway) mutate(ctx context.Context, profile string, timeouts []time.Duration, cmds ...types.Command) error {
	unlock, err := g.locks.lock(ctx, profile)
	if err != nil {
		return fmt.Errorf("waiting for lock on profile %s: %w", profile, err)
	}
	defer unlock()

	for i, cmd := range cmds {
		if _, err := g.execute(ctx, cmd, timeouts[i]); err != nil {
			return err
		}
	}
	return nil
}

func (g *Gateway) succeed(profile, message string) types.OperationResult {
	logging.WithComponentAndProfile("nmcli", profile).Info(message)
	return types.OperationResult{Succeeded: true, Message: message}
}

// GetIPAndMask returns the IPv4 address of an active profile.
// A profile without an address yields *types.NotFoundError; an unknown profile makes nmcli
// exit non-zero, which is reported as *types.ExecutionError.
func (g *Gateway) GetIPAndMask(ctx context.Context, profile string) (types.IPConfig, error) {
	if err := validateName("profile", profile); err != nil {
		return types.IPConfig{}, err
	}

	cmd := g.ipAddressCommand(profile)
	out, err := g.execute(ctx, cmd, g.opts.Timeouts.Read)
	if err != nil {
		return types.IPConfig{}, err
	}

	config, err := ParseIPConfig(out)
	if errors.Is(err, ErrNoAddress) {
		return types.IPConfig{}, &types.NotFoundError{
			Resource: fmt.Sprintf("IPv4 address for profile '%s'", profile),
			Command:  cmd.String(),
		}
	}
	if err != nil {
		return types.IPConfig{}, &types.ParseError{Command: cmd.String(), RawOutput: out, Reason: err.Error()}
	}
	return config, nil
}

// GetInterfaceAddress returns the first IPv4 address the kernel reports on iface.
func (g *Gateway) GetInterfaceAddress(ctx context.Context, iface string) (types.IPConfig, error) {
	if err := validateInterfaceName(iface); err != nil {
		return types.IPConfig{}, err
	}
	if err := ctx.Err(); err != nil {
		return types.IPConfig{}, err
	}

	link, err := g.links.GetLinkByName(iface)
	if err != nil {
		var notFound netlink.LinkNotFoundError
		if errors.As(err, &notFound) {
			return types.IPConfig{}, &types.NotFoundError{Resource: fmt.Sprintf("interface '%s'", iface)}
		}
		return types.IPConfig{}, err
	}

	addrs, err := g.links.ListAddresses(link)
	if err != nil {
		return types.IPConfig{}, err
	}
	for _, addr := range addrs {
		if addr.IPNet == nil {
			continue
		}
		ip := addr.IP.To4()
		if ip == nil {
			continue
		}
		ones, bits := addr.Mask.Size()
		if bits != 32 {
			continue
		}
		return types.IPConfig{Address: ip.String(), PrefixLength: ones}, nil
	}
	return types.IPConfig{}, &types.NotFoundError{Resource: fmt.Sprintf("IPv4 address on interface '%s'", iface)}
}

// ListRememberedConnections lists saved wired and wireless profiles in nmcli's order.
// An empty kind returns both. An empty store is an empty slice, not an error.
func (g *Gateway) ListRememberedConnections(ctx context.Context, kind types.ProfileKind) ([]types.ConnectionProfile, error) {
	switch kind {
	case "", types.ProfileKindWired, types.ProfileKindWireless:
	default:
		return nil, &types.ValidationError{Field: "kind", Reason: fmt.Sprintf("unknown profile kind %q", kind)}
	}

	out, err := g.execute(ctx, g.listConnectionsCommand(), g.opts.Timeouts.Read)
	if err != nil {
		return nil, err
	}

	profiles := ParseConnectionList(out)
	if kind == "" {
		return profiles, nil
	}
	filtered := make([]types.ConnectionProfile, 0, len(profiles))
	for _, p := range profiles {
		if p.Kind == kind {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// ScanWifiNetworks lists the networks from nmcli's scan cache in the order printed,
// restricted to the configured vendor prefixes.
func (g *Gateway) ScanWifiNetworks(ctx context.Context) ([]types.WifiNetwork, error) {
	out, err := g.execute(ctx, g.wifiListCommand(), g.opts.Timeouts.Scan)
	if err != nil {
		return nil, err
	}
	return ParseScanList(out, g.opts.VendorPrefixes), nil
}

// GetActiveWifiNetwork returns the network the radio is associated with, or nil when
// there is none. No active network is a normal state, not an error.
func (g *Gateway) GetActiveWifiNetwork(ctx context.Context) (*types.WifiNetwork, error) {
	out, err := g.execute(ctx, g.wifiListCommand(), g.opts.Timeouts.Scan)
	if err != nil {
		return nil, err
	}
	return ParseActiveNetwork(out), nil
}

func (g *Gateway) ConnectToKnownConnection(ctx context.Context, name string) (types.OperationResult, error) {
	if err := validateName("connection name", name); err != nil {
		return types.OperationResult{}, err
	}
	if err := g.mutate(ctx, name, []time.Duration{g.opts.Timeouts.Connect}, g.connectionUpCommand(name)); err != nil {
		return types.OperationResult{}, err
	}
	return g.succeed(name, fmt.Sprintf("Connected to network '%s' successfully.", name)), nil
}

// ConnectToNewAccessPoint creates and activates a profile for ssid. NetworkManager names
// the new profile after the SSID, so the SSID is also the lock key.
func (g *Gateway) ConnectToNewAccessPoint(ctx context.Context, ssid, password string) (types.OperationResult, error) {
	if err := validateSSID(ssid); err != nil {
		return types.OperationResult{}, err
	}
	if err := validatePassword(password); err != nil {
		return types.OperationResult{}, err
	}
	if err := g.mutate(ctx, ssid, []time.Duration{g.opts.Timeouts.Connect}, g.wifiConnectCommand(ssid, password)); err != nil {
		return types.OperationResult{}, err
	}
	return g.succeed(ssid, fmt.Sprintf("Connected to Wi-Fi network '%s' successfully.", ssid)), nil
}

func (g *Gateway) DisconnectConnection(ctx context.Context, name string) (types.OperationResult, error) {
	if err := validateName("connection name", name); err != nil {
		return types.OperationResult{}, err
	}
	if err := g.mutate(ctx, name, []time.Duration{g.opts.Timeouts.Write}, g.connectionDownCommand(name)); err != nil {
		return types.OperationResult{}, err
	}
	return g.succeed(name, fmt.Sprintf("Disconnected from network '%s' successfully.", name)), nil
}

func (g *Gateway) DeleteConnection(ctx context.Context, name string) (types.OperationResult, error) {
	if err := validateName("connection name", name); err != nil {
		return types.OperationResult{}, err
	}
	if err := g.mutate(ctx, name, []time.Duration{g.opts.Timeouts.Write}, g.connectionDeleteCommand(name)); err != nil {
		return types.OperationResult{}, err
	}
	return g.succeed(name, fmt.Sprintf("Connection '%s' deleted successfully.", name)), nil
}

// SetAutoConnect sets connection.autoconnect. Setting the current value again succeeds.
func (g *Gateway) SetAutoConnect(ctx context.Context, name string, enabled bool) (types.OperationResult, error) {
	if err := validateName("connection name", name); err != nil {
		return types.OperationResult{}, err
	}
	if err := g.mutate(ctx, name, []time.Duration{g.opts.Timeouts.Write}, g.autoConnectCommand(name, enabled)); err != nil {
		return types.OperationResult{}, err
	}
	return g.succeed(name, fmt.Sprintf("Autoconnect set to '%s' for connection '%s' successfully.", yesNo(enabled), name)), nil
}

// SetStaticIP writes a manual IPv4 configuration and re-activates the profile so it takes effect.
// If re-activation fails the call fails even though the profile was already modified.
func (g *Gateway) SetStaticIP(ctx context.Context, profile string, config types.StaticIPConfig) (types.IPConfig, error) {
	if err := validateName("profile", profile); err != nil {
		return types.IPConfig{}, err
	}
	if err := validateStaticIPConfig(config); err != nil {
		return types.IPConfig{}, err
	}

	err := g.mutate(ctx, profile,
		[]time.Duration{g.opts.Timeouts.Write, g.opts.Timeouts.Connect},
		g.staticIPCommand(profile, config),
		g.connectionUpCommand(profile),
	)
	if err != nil {
		return types.IPConfig{}, err
	}

	result := types.IPConfig{Address: config.Address, PrefixLength: config.PrefixLength}
	logging.WithComponentAndProfile("nmcli", profile).WithField("ip", result.CIDR()).Info("Static IP configuration applied")
	return result, nil
}

// EnableDHCP switches the profile to automatic addressing and re-activates it.
// Partial failure is reported the same way as for SetStaticIP.
func (g *Gateway) EnableDHCP(ctx context.Context, profile string) (types.OperationResult, error) {
	if err := validateName("profile", profile); err != nil {
		return types.OperationResult{}, err
	}

	err := g.mutate(ctx, profile,
		[]time.Duration{g.opts.Timeouts.Write, g.opts.Timeouts.Connect},
		g.dhcpCommand(profile),
		g.connectionUpCommand(profile),
	)
	if err != nil {
		return types.OperationResult{}, err
	}
	return g.succeed(profile, fmt.Sprintf("Automatic addressing enabled for connection '%s'.", profile)), nil
}
