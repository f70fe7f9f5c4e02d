// Package main provides the entry point for the outfit_agent server and CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/outfit-curator/internal/config"
	"github.com/jonathan/outfit-curator/internal/logger"
	"github.com/jonathan/outfit-curator/internal/recommender"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	configPath string
	logLevel   string

	appConfig *config.Config
	appLogger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:               "outfit_agent",
	Short:             "Outfit Curator recommendation form",
	Long:              "Outfit Curator serves a form that sends a clothing inventory, occasion and weather to an outfit recommendation service and shows the outfits it returns.",
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadAppConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ./outfit_agent.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
}

func loadAppConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = logLevel
	}

	l, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}

	appConfig = cfg
	appLogger = l
	return nil
}

// newRecommenderClient builds a client for the configured recommendation service.
func newRecommenderClient(observer recommender.Observer) (*recommender.Client, error) {
	opts := recommender.DefaultOptions()
	opts.Timeout = appConfig.Recommender.Timeout
	if appConfig.Recommender.UserAgent != "" {
		opts.UserAgent = appConfig.Recommender.UserAgent
	}
	opts.Observer = observer

	client, err := recommender.New(appConfig.Recommender.BaseURL, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create recommender client: %w", err)
	}
	return client, nil
}

func main() {
	// Load .env file if it exists
	config.LoadDotEnv()

	err := rootCmd.ExecuteContext(context.Background())
	if appLogger != nil {
		_ = appLogger.Sync()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
