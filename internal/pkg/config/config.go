package config

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"golang-nmgateway/internal/pkg/logging"

	"gopkg.in/yaml.v3"
)

// Environment variables that override values from the config file.
const (
	EnvWiredProfile      = "NMGW_WIRED_PROFILE"
	EnvWirelessProfile   = "NMGW_WIRELESS_PROFILE"
	EnvListen            = "NMGW_LISTEN"
	EnvVendorPrefixes    = "NMGW_VENDOR_PREFIXES"
	EnvWiredInterface    = "NMGW_WIRED_INTERFACE"
	EnvWirelessInterface = "NMGW_WIRELESS_INTERFACE"
)

const (
	DefaultListen    = ":8000"
	DefaultNmcliPath = "nmcli"
)

// ServerConfig represents the HTTP listener configuration
type ServerConfig struct {
	Listen string `yaml:"listen"`
}

// ProfilesConfig names the NetworkManager connection profiles the gateway manages
type ProfilesConfig struct {
	Wired    string `yaml:"wired"`
	Wireless string `yaml:"wireless"`
}

// InterfacesConfig names the kernel interfaces behind the profiles
type InterfacesConfig struct {
	Wired    string `yaml:"wired"`
	Wireless string `yaml:"wireless"`
}

// ScanConfig controls Wi-Fi scan filtering
type ScanConfig struct {
	VendorPrefixes []string `yaml:"vendor_prefixes"`
}

// TimeoutsConfig bounds each class of nmcli command
type TimeoutsConfig struct {
	Read    time.Duration `yaml:"read"`
	Write   time.Duration `yaml:"write"`
	Connect time.Duration `yaml:"connect"`
	Scan    time.Duration `yaml:"scan"`
}

// NmcliConfig locates the nmcli binary
type NmcliConfig struct {
	Path string `yaml:"path"`
}

// Config represents the main configuration structure
type Config struct {
	Logging    logging.LogConfig `yaml:"logging"`
	Server     ServerConfig      `yaml:"server"`
	Profiles   ProfilesConfig    `yaml:"profiles"`
	Interfaces InterfacesConfig  `yaml:"interfaces"`
	Scan       ScanConfig        `yaml:"scan"`
	Timeouts   TimeoutsConfig    `yaml:"timeouts"`
	Nmcli      NmcliConfig       `yaml:"nmcli"`
}

// Load loads configuration from a YAML file and applies environment overrides.
// An empty path skips the file, leaving defaults plus environment.
func Load(configPath string) (*Config, error) {
	var config Config

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	}

	config.applyEnv()
	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyEnv() {
	overrides := map[string]*string{
		EnvWiredProfile:      &c.Profiles.Wired,
		EnvWirelessProfile:   &c.Profiles.Wireless,
		EnvListen:            &c.Server.Listen,
		EnvWiredInterface:    &c.Interfaces.Wired,
		EnvWirelessInterface: &c.Interfaces.Wireless,
	}
	for env, field := range overrides {
		if v, ok := os.LookupEnv(env); ok {
			*field = strings.TrimSpace(v)
		}
	}

	if v, ok := os.LookupEnv(EnvVendorPrefixes); ok {
		c.Scan.VendorPrefixes = nil
		for _, prefix := range strings.Split(v, ",") {
			if prefix = strings.TrimSpace(prefix); prefix != "" {
				c.Scan.VendorPrefixes = append(c.Scan.VendorPrefixes, prefix)
			}
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = DefaultListen
	}
	if c.Nmcli.Path == "" {
		c.Nmcli.Path = DefaultNmcliPath
	}
	if c.Timeouts.Read == 0 {
		c.Timeouts.Read = 5 * time.Second
	}
	if c.Timeouts.Write == 0 {
		c.Timeouts.Write = 15 * time.Second
	}
	if c.Timeouts.Connect == 0 {
		c.Timeouts.Connect = 45 * time.Second
	}
	if c.Timeouts.Scan == 0 {
		c.Timeouts.Scan = 30 * time.Second
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Profiles.Wired == "" {
		return fmt.Errorf("profiles.wired: wired connection profile is required")
	}
	if c.Profiles.Wireless == "" {
		return fmt.Errorf("profiles.wireless: wireless connection profile is required")
	}
	if _, _, err := net.SplitHostPort(c.Server.Listen); err != nil {
		return fmt.Errorf("server.listen: %w", err)
	}
	return c.ValidateCommands()
}

// ValidateCommands checks the settings every gateway call depends on.
// One-shot CLI commands run it alone since they neither listen nor need both profiles.
func (c *Config) ValidateCommands() error {
	for name, d := range map[string]time.Duration{
		"read":    c.Timeouts.Read,
		"write":   c.Timeouts.Write,
		"connect": c.Timeouts.Connect,
		"scan":    c.Timeouts.Scan,
	} {
		if d < 0 {
			return fmt.Errorf("timeouts.%s: must not be negative", name)
		}
	}

	for _, prefix := range c.Scan.VendorPrefixes {
		if err := validateVendorPrefix(prefix); err != nil {
			return err
		}
	}
	return nil
}

// validateVendorPrefix accepts one to six colon separated hex octets, e.g. "B8:27:EB".
func validateVendorPrefix(prefix string) error {
	octets := strings.Split(prefix, ":")
	if len(octets) > 6 {
		return fmt.Errorf("scan.vendor_prefixes: %q has more than six octets", prefix)
	}
	for _, octet := range octets {
		if len(octet) != 2 || !isHex(octet[0]) || !isHex(octet[1]) {
			return fmt.Errorf("scan.vendor_prefixes: %q is not a colon separated hex prefix", prefix)
		}
	}
	return nil
}

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
