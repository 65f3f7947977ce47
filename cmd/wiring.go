package cmd

import (
	"golang-nmgateway/internal/adapter/infrastructure/command"
	"golang-nmgateway/internal/adapter/infrastructure/network"
	"golang-nmgateway/internal/adapter/nmcli"
	"golang-nmgateway/internal/pkg/config"
)

// newGateway wires the nmcli gateway to the process runner and the netlink inspector.
func newGateway(cfg *config.Config) *nmcli.Gateway {
	return nmcli.NewGateway(command.NewRunnerAdapter(), network.NewManagerAdapter(), nmcli.Options{
		Path:              cfg.Nmcli.Path,
		WirelessInterface: cfg.Interfaces.Wireless,
		VendorPrefixes:    cfg.Scan.VendorPrefixes,
		Timeouts: nmcli.Timeouts{
			Read:    cfg.Timeouts.Read,
			Write:   cfg.Timeouts.Write,
			Connect: cfg.Timeouts.Connect,
			Scan:    cfg.Timeouts.Scan,
		},
	})
}
