package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Yates-Labs/satirist/internal/config"
	"github.com/Yates-Labs/satirist/internal/logging"
	"github.com/Yates-Labs/satirist/internal/orchestrator"
	"github.com/Yates-Labs/satirist/internal/server"
)

var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generation endpoint over HTTP",
	Long: `Serve POST /api/generate and GET /healthz.

Configuration is read from the environment (a .env file is loaded first):
  SATIRIST_PROVIDER          xai | openai | gemini (default: xai)
  XAI_API_KEY                credential for xAI; without one, only fallback output is served
  SATIRIST_UPSTREAM_TIMEOUT  upstream deadline (default: 18s)
  SATIRIST_RESPONSE_CEILING  per-request ceiling, must exceed the deadline (default: 25s)
  SATIRIST_ADDR              listen address (default: :8080)

Examples:
  satirist serve
  satirist serve --addr 127.0.0.1:9000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&listenAddr, "addr", "", "Listen address (overrides SATIRIST_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if listenAddr != "" {
		cfg.Addr = listenAddr
	}

	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	svc, err := orchestrator.NewFromConfig(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	logger.Info("starting satirist",
		"provider", cfg.Provider,
		"upstream", svc.Upstream(),
		"timeout", cfg.UpstreamTimeout,
		"ceiling", cfg.ResponseCeiling)

	return server.New(svc, logger, cfg.ResponseCeiling).ListenAndServe(ctx, cfg.Addr)
}
