/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ssargent/cdstream/pkg/api"
	"github.com/ssargent/cdstream/pkg/config"
)

func newServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the item inspection API",
		Long: `Start the HTTP API serving the item store: upload and download of raw
record streams and decoded views of each item.

Every /api/v1 route requires the X-API-Key header. When no key is
configured, a temporary key is generated and logged.

Examples:
  cdtool serve
  cdtool serve --port 9000 --bind 0.0.0.0
  cdtool serve --api-key my-secret-key`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			flags := cmd.Flags()
			if flags.Changed("port") {
				e.cfg.Port, _ = flags.GetInt("port")
			}
			if flags.Changed("bind") {
				e.cfg.Bind, _ = flags.GetString("bind")
			}
			if flags.Changed("api-key") {
				e.cfg.Security.APIKey, _ = flags.GetString("api-key")
			}

			apiKey := e.cfg.Security.APIKey
			if apiKey == "" || apiKey == "auto" {
				key, err := config.GenerateSecureKey(32)
				if err != nil {
					return err
				}
				apiKey = key
				e.log.WithField("api_key", apiKey).Warn("no API key configured, using a temporary key (run 'cdtool init' to create one)")
			}

			store, err := e.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, e, store, api.ServerConfig{
				Port:     e.cfg.Port,
				Bind:     e.cfg.Bind,
				APIKey:   apiKey,
				ItemKind: e.kind,
			})
		},
	}

	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind to")
	serveCmd.Flags().String("api-key", "", "API key for authentication (overrides the config file)")
	return serveCmd
}

func serve(ctx context.Context, e *env, store api.ItemStore, cfg api.ServerConfig) error {
	starter := container.GetServerFactory().CreateServerStarter()
	return starter.StartServer(ctx, store, cfg, e.log)
}
