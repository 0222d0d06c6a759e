/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/cdstream/pkg/config"
)

func newInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file with a generated API key",
		Long: `Create the cdtool configuration file and the data directory.

This command will:
- Write a configuration file with default codec and store settings
- Generate a secure API key for the inspection API
- Create the data directory for the item store

Examples:
  cdtool init
  cdtool init --data-dir ./items --print-key
  cdtool init --config ./cdtool.yaml --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			force, _ := cmd.Flags().GetBool("force")
			printKey, _ := cmd.Flags().GetBool("print-key")

			if config.ConfigExists(e.configPath) && !force {
				fmt.Fprintf(cmd.OutOrStdout(), "Configuration already exists at %s. Use --force to overwrite.\n", e.configPath)
				return nil
			}

			dataDir := ""
			if cmd.Flags().Changed("data-dir") {
				dataDir = e.cfg.DataDir
			}
			cfg, err := config.BootstrapConfig(e.configPath, dataDir)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(cfg.DataDir, 0750); err != nil {
				return fmt.Errorf("failed to create data dir: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ Configuration created at %s\n", e.configPath)
			fmt.Fprintf(cmd.OutOrStdout(), "📁 Data directory: %s\n", cfg.DataDir)
			if printKey {
				fmt.Fprintf(cmd.OutOrStdout(), "\n🔑 API Key: %s\n", cfg.Security.APIKey)
				fmt.Fprintf(cmd.OutOrStdout(), "\n⚠️  Store this key securely! It is also saved in %s\n", e.configPath)
			}
			return nil
		},
	}

	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration")
	initCmd.Flags().Bool("print-key", false, "Print the generated API key")
	return initCmd
}
