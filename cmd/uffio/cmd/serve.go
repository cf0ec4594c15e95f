/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modalkit/uffio/pkg/api"
	"github.com/modalkit/uffio/pkg/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the decode/inspect HTTP API server",
	Long: `Start the uffio HTTP API server.

The server exposes POST /api/v1/decode and /api/v1/inspect behind X-API-Key
authentication, plus /metrics for Prometheus scraping. Settings come from
the config file and can be overridden with flags.

Examples:
  uffio serve
  uffio serve --port 9000 --api-key mysecretkey`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadOrDefaultConfig(cmd)
		if err != nil {
			return err
		}

		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.Server.Port = port
		}
		if bind, _ := cmd.Flags().GetString("bind"); bind != "" {
			cfg.Server.Bind = bind
		}
		if apiKey, _ := cmd.Flags().GetString("api-key"); apiKey != "" {
			cfg.Server.APIKey = apiKey
		}

		if cfg.Server.APIKey == "" || cfg.Server.APIKey == "auto" {
			return fmt.Errorf("no API key configured: pass --api-key or run 'uffio init' first")
		}

		return api.StartServer(api.ServerConfig{
			Port:   cfg.Server.Port,
			Bind:   cfg.Server.Bind,
			APIKey: cfg.Server.APIKey,
		}, logger)
	},
}

// loadOrDefaultConfig loads the config file named by --config, falling back
// to the default path, or to defaults when no file exists.
func loadOrDefaultConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.GetDefaultConfigPath()
		if !config.ConfigExists(path) {
			return config.DefaultConfig(), nil
		}
	}
	return config.LoadConfig(path)
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().String("bind", "", "Bind address (overrides config)")
	serveCmd.Flags().String("api-key", "", "API key for authentication (overrides config)")
}
