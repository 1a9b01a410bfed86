package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	inhttp "github.com/threat-hunter/wazuh-mcp/internal/adapter/inbound/http"
	"github.com/threat-hunter/wazuh-mcp/internal/adapter/inbound/mcptool"
	"github.com/threat-hunter/wazuh-mcp/internal/adapter/outbound/wazuh"
	"github.com/threat-hunter/wazuh-mcp/internal/config"
	"github.com/threat-hunter/wazuh-mcp/internal/service"
)

// runServe wires the components together and blocks on the MCP serve loop.
func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Logger goes to stderr: stdout carries the MCP stream.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))

	if configFile := config.ConfigFileUsed(); configFile != "" {
		logger.Info("loaded config", "file", configFile)
	}
	logger.Info("threat-hunter starting",
		"version", Version,
		"api_host", cfg.API.Host,
		"api_port", cfg.API.Port,
		"credentials_configured", cfg.API.HasCredentials(),
		"insecure_skip_verify", cfg.API.InsecureSkipVerify,
		"metrics_addr", cfg.Metrics.Addr,
	)
	if !cfg.API.HasCredentials() {
		logger.Warn("wazuh credentials not configured, every tool call will report an authentication error")
	}
	if cfg.API.InsecureSkipVerify {
		logger.Warn("tls certificate validation disabled for the wazuh api")
	}

	// Optional metrics listener. When metrics.addr is unset, the process
	// surface is exactly the stdio serve loop.
	var metrics *inhttp.Metrics
	if cfg.Metrics.Addr != "" {
		reg := prometheus.NewRegistry()
		metrics = inhttp.NewMetrics(reg)
		metricsServer := inhttp.NewMetricsServer(cfg.Metrics.Addr, reg, logger)
		go func() {
			if err := metricsServer.Start(ctx); err != nil {
				logger.Error("metrics server failed", "error", err)
			}
		}()
		logger.Info("metrics listener enabled", "addr", cfg.Metrics.Addr)
	}

	client := wazuh.NewClient(cfg.API, logger)
	svc := service.NewQueryService(client, logger)
	server := mcptool.NewServer(svc, metrics, Version, logger)

	if err := server.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("mcp server: %w", err)
	}

	logger.Info("threat-hunter stopped")
	return nil
}

// parseLogLevel converts a string log level to slog.Level.
// Returns slog.LevelInfo for unrecognized values.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
