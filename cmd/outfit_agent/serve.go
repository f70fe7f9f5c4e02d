package main

import (
	"fmt"

	"github.com/jonathan/outfit-curator/internal/metrics"
	"github.com/jonathan/outfit-curator/internal/server"
	"github.com/jonathan/outfit-curator/internal/server/ratelimit"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the recommendation form server",
	Long:  `Start an HTTP server that hosts the recommendation form at /ui/ and forwards submissions to the recommendation service.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8000, "Port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := appConfig
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = servePort
	}

	m := metrics.New()
	client, err := newRecommenderClient(m)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		StrictInventory: cfg.Form.StrictInventory,
		RateLimit:       ratelimit.FromSettings(cfg.RateLimit),
		Version:         version,
	}, client, appLogger, m)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	appLogger.Sugar().Infof("forwarding recommendations to %s", client.BaseURL())
	return srv.Start(cmd.Context())
}
