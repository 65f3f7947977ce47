package cmd

import (
	"github.com/spf13/cobra"
)

var (
	configFlag string
)

var rootCmd = &cobra.Command{
	Use:   "golang-nmgateway",
	Short: "golang-nmgateway exposes NetworkManager over a small HTTP API",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML); NMGW_* environment variables override it")
}
