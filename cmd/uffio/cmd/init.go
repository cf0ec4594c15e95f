/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modalkit/uffio/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a bootstrap configuration file",
	Long: `Write a configuration file with a freshly generated API key.

This command will:
- Create the config directory if needed
- Generate a secure random API key for the HTTP server
- Write the configuration with restrictive permissions

Examples:
  uffio init
  uffio init --catalog-dir ./catalog --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogDir, _ := cmd.Flags().GetString("catalog-dir")
		force, _ := cmd.Flags().GetBool("force")

		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = config.GetDefaultConfigPath()
		}

		if config.ConfigExists(path) && !force {
			return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
		}

		cfg, err := config.BootstrapConfig(path, catalogDir)
		if err != nil {
			return err
		}

		fmt.Printf("Wrote config to %s\n", path)
		fmt.Printf("API key: %s\n", cfg.Server.APIKey)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().String("catalog-dir", "", "Catalog directory to record in the config")
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}
