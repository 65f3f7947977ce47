// Package network provides the read-only netlink adapter implementation.
package network

import (
	"fmt"

	"golang-nmgateway/internal/port"

	"github.com/vishvananda/netlink"
)

// ManagerAdapter is an adapter that implements the LinkInspector port using vishvananda/netlink library.
// It never changes kernel state; NetworkManager owns addresses and routes.
type ManagerAdapter struct{}

// Ensure ManagerAdapter implements the LinkInspector port
var _ port.LinkInspector = (*ManagerAdapter)(nil)

// NewManagerAdapter creates a new netlink adapter.
func NewManagerAdapter() *ManagerAdapter {
	return &ManagerAdapter{}
}

// GetLinkByName returns a network link by interface name.
// The returned error wraps netlink.LinkNotFoundError when the interface does not exist.
func (n *ManagerAdapter) GetLinkByName(interfaceName string) (netlink.Link, error) {
	link, err := netlink.LinkByName(interfaceName)
	if err != nil {
		return nil, fmt.Errorf("failed to get netlink interface %s: %w", interfaceName, err)
	}
	return link, nil
}

// ListAddresses returns IPv4 addresses configured on the link.
func (n *ManagerAdapter) ListAddresses(link netlink.Link) ([]netlink.Addr, error) {
	addrs, err := netlink.AddrList(link, netlink.FAMILY_V4)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses on %s: %w", link.Attrs().Name, err)
	}
	return addrs, nil
}
