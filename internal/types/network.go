// Package types defines common types used across the application.
package types

import "strconv"

// IPConfig is the IPv4 address and prefix length of one interface or connection profile.
type IPConfig struct {
	Address      string `json:"ip"`   // IPv4 address in dotted decimal notation (e.g., "192.168.1.100")
	PrefixLength int    `json:"mask"` // Prefix length, 0-32
}

// CIDR renders the configuration in address/prefix form.
func (c IPConfig) CIDR() string {
	return c.Address + "/" + strconv.Itoa(c.PrefixLength)
}

// StaticIPConfig represents static IP configuration parameters for a profile.
type StaticIPConfig struct {
	Address      string `json:"ip"`
	PrefixLength int    `json:"mask"`
	Gateway      string `json:"gateway,omitempty"` // Default gateway IP address (optional)
}

// ProfileKind is the medium a connection profile applies to.
type ProfileKind string

const (
	ProfileKindWired    ProfileKind = "wired"
	ProfileKindWireless ProfileKind = "wireless"
)

// ConnectionProfile is a saved connection known to NetworkManager.
type ConnectionProfile struct {
	Name        string      `json:"name"`
	AutoConnect bool        `json:"autoconnect"`
	Kind        ProfileKind `json:"kind"`
}

// WifiNetwork is one access point seen by the last scan.
type WifiNetwork struct {
	SSID           string `json:"ssid"`
	SignalStrength int    `json:"signal"`
	Active         bool   `json:"active"`
	BSSID          string `json:"bssid"`
}

// OperationResult is the outcome of a mutating network action.
type OperationResult struct {
	Succeeded bool   `json:"succeeded"`
	Message   string `json:"message"`
}
