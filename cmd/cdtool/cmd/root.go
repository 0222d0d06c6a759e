/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ssargent/cdstream/pkg/api"
	"github.com/ssargent/cdstream/pkg/cd"
	"github.com/ssargent/cdstream/pkg/config"
	"github.com/ssargent/cdstream/pkg/di"
	"github.com/ssargent/cdstream/pkg/itemstore"
	"github.com/ssargent/cdstream/pkg/logging"
)

var container *di.Container

// SetContainer injects the dependency container used by the commands
func SetContainer(c *di.Container) {
	container = c
}

// env is what every command gets from the global flags and the config file
type env struct {
	cfg        *config.Config
	configPath string
	kind       cd.ItemKind
	log        *logrus.Logger
}

type envKey struct{}

func envFrom(cmd *cobra.Command) *env {
	e, _ := cmd.Context().Value(envKey{}).(*env)
	return e
}

// openStore opens the item store in the configured data directory
func (e *env) openStore() (api.ItemStoreCloser, error) {
	if container == nil {
		return nil, fmt.Errorf("dependency container not initialized")
	}
	if err := os.MkdirAll(e.cfg.DataDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return container.GetStoreOpener().OpenStore(itemstore.Config{
		Dir:         e.cfg.DataDir,
		Compression: e.cfg.Store.Compression,
	}, e.log)
}

// loadEnv reads the config file, when there is one, and applies the global
// flags on top of it.
func loadEnv(cmd *cobra.Command) (*env, error) {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	if configPath == "" {
		configPath = config.GetDefaultConfigPath()
	}

	cfg := config.DefaultConfig()
	if config.ConfigExists(configPath) {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flags.Changed("data-dir") {
		cfg.DataDir, _ = flags.GetString("data-dir")
	}
	if flags.Changed("kind") {
		cfg.Codec.ItemKind, _ = flags.GetString("kind")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	kind, err := cfg.ItemKind()
	if err != nil {
		return nil, err
	}
	log, err := logging.NewWithOutput(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, configPath: configPath, kind: kind, log: log}, nil
}

// NewRootCmd builds the cdtool command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cdtool",
		Short: "cdtool - Composite Document record stream toolkit",
		Long: `cdtool reads, writes and stores Composite Document (CD) record streams,
the binary rich text format of document items.

It decodes streams into records, tables, plain text and attachments,
builds new streams, and keeps items in a local store that can be served
over HTTP.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, envKey{}, e))
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: ~/.config/cdtool/config.yaml)")
	rootCmd.PersistentFlags().StringP("data-dir", "d", "./data", "Data directory for the item store")
	rootCmd.PersistentFlags().StringP("kind", "k", "composite", "Item kind of the stream (composite, action, query, viewmap, viewmap-dataset)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newInitCmd(),
		newDumpCmd(),
		newTablesCmd(),
		newTextCmd(),
		newResourcesCmd(),
		newBuildCmd(),
		newCatalogCmd(),
		newPutCmd(),
		newGetCmd(),
		newListCmd(),
		newDeleteCmd(),
		newServeCmd(),
	)
	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
