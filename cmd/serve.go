package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-nmgateway/internal/adapter/httpapi"
	"golang-nmgateway/internal/adapter/infrastructure/system"
	"golang-nmgateway/internal/pkg/config"
	"golang-nmgateway/internal/pkg/logging"
	"golang-nmgateway/internal/pkg/version"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the network configuration HTTP API",
	Run: func(cmd *cobra.Command, args []string) {
		// Load and validate configuration
		cfg, err := config.Load(configFlag)
		if err != nil {
			fmt.Printf("Config error: %v\n", err)
			os.Exit(1)
		}

		if err := cfg.Validate(); err != nil {
			fmt.Printf("Config validation error: %v\n", err)
			os.Exit(1)
		}

		// Initialize logging
		logging.InitLogger(cfg.Logging)

		logger := logging.GetLogger()
		logger.WithFields(map[string]interface{}{
			"config_file":      configFlag,
			"version":          version.GetGitInfo().Short(),
			"wired_profile":    cfg.Profiles.Wired,
			"wireless_profile": cfg.Profiles.Wireless,
		}).Info("Starting gateway")

		handler := httpapi.NewHandler(newGateway(cfg), system.NewManagerAdapter(), httpapi.Options{
			WiredProfile:      cfg.Profiles.Wired,
			WirelessProfile:   cfg.Profiles.Wireless,
			WiredInterface:    cfg.Interfaces.Wired,
			WirelessInterface: cfg.Interfaces.Wireless,
		})

		// Connect and scan requests may legitimately run for the full connect timeout.
		srv := &http.Server{
			Addr:              cfg.Server.Listen,
			Handler:           httpapi.NewRouter(handler),
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      cfg.Timeouts.Connect*2 + 10*time.Second,
			IdleTimeout:       60 * time.Second,
		}

		// Create context for graceful shutdown
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			sig := <-sigChan
			logger.WithField("signal", sig.String()).Info("Received shutdown signal")
			cancel()
		}()

		serveErr := make(chan error, 1)
		go func() {
			logger.WithField("listen", cfg.Server.Listen).Info("HTTP API listening")
			serveErr <- srv.ListenAndServe()
		}()

		select {
		case err := <-serveErr:
			if !errors.Is(err, http.ErrServerClosed) {
				logger.WithError(err).Error("HTTP server failed")
				os.Exit(1)
			}
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Warn("HTTP server shutdown incomplete")
		}
		logger.Info("Gateway stopped")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
