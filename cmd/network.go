package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang-nmgateway/internal/pkg/config"
	"golang-nmgateway/internal/pkg/logging"
	"golang-nmgateway/internal/types"

	"github.com/spf13/cobra"
)

var connectionKindFlag string

// oneShot loads configuration for a single gateway call. Logs go to stderr so stdout stays JSON.
func oneShot() (*config.Config, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, err
	}
	if err := cfg.ValidateCommands(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	logging.InitLogger(cfg.Logging)
	logging.GetLogger().SetOutput(os.Stderr)
	return cfg, nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var wifiCmd = &cobra.Command{
	Use:   "wifi",
	Short: "Query Wi-Fi state",
}

var wifiScanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List visible Wi-Fi networks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := oneShot()
		if err != nil {
			return err
		}
		networks, err := newGateway(cfg).ScanWifiNetworks(context.Background())
		if err != nil {
			return err
		}
		return printJSON(networks)
	},
}

var wifiActiveCmd = &cobra.Command{
	Use:   "active",
	Short: "Show the active Wi-Fi network",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := oneShot()
		if err != nil {
			return err
		}
		network, err := newGateway(cfg).GetActiveWifiNetwork(context.Background())
		if err != nil {
			return err
		}
		return printJSON(network)
	},
}

var connectionsCmd = &cobra.Command{
	Use:   "connections",
	Short: "List remembered connection profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := oneShot()
		if err != nil {
			return err
		}
		profiles, err := newGateway(cfg).ListRememberedConnections(context.Background(), types.ProfileKind(connectionKindFlag))
		if err != nil {
			return err
		}
		return printJSON(profiles)
	},
}

var ipCmd = &cobra.Command{
	Use:   "ip [profile]",
	Short: "Show the IPv4 address of a profile (default: the wired profile)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := oneShot()
		if err != nil {
			return err
		}
		profile := cfg.Profiles.Wired
		if len(args) == 1 {
			profile = args[0]
		}
		if profile == "" {
			return fmt.Errorf("no profile given and profiles.wired is not configured")
		}
		ipConfig, err := newGateway(cfg).GetIPAndMask(context.Background(), profile)
		if err != nil {
			return err
		}
		return printJSON(ipConfig)
	},
}

func init() {
	connectionsCmd.Flags().StringVar(&connectionKindFlag, "kind", "", "Restrict to wired or wireless profiles")

	wifiCmd.AddCommand(wifiScanCmd, wifiActiveCmd)
	rootCmd.AddCommand(wifiCmd, connectionsCmd, ipCmd)
}
