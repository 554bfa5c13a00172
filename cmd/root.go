// Package cmd hosts the CLI entry point: configuration, logging, and the
// lifecycle of the HTTP server.
package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/application"
	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

const (
	serverName = "gorgias-mcp-server"
	version    = "1.0.0"

	shutdownTimeout = 10 * time.Second
)

var rootCmd = &cobra.Command{
	Use:          serverName,
	Short:        "MCP server exposing the Gorgias helpdesk API as assistant tools",
	Long:         "Runs a stateless HTTP server that accepts per-request Gorgias credentials and exposes the helpdesk REST API as a catalog of MCP tools.",
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command. It is the only symbol main needs.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Environment-only configuration: GORGIAS_MCP_ADDR and friends, with
	// hard-coded fallbacks when unset or unparseable.
	viper.SetEnvPrefix("GORGIAS_MCP")
	viper.AutomaticEnv()
	viper.SetDefault("addr", ":8080")
	viper.SetDefault("response_char_limit", 50000)
	viper.SetDefault("default_page_size", domain.DefaultPageSize)
	viper.SetDefault("max_page_size", domain.MaxPageSize)
}

// intSetting reads a numeric setting, falling back when the environment
// value is unset or not a positive number.
func intSetting(key string, fallback int) int {
	if v := viper.GetInt(key); v > 0 {
		return v
	}
	return fallback
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	router := application.NewRouter(application.Config{
		ServerName:      serverName,
		Version:         version,
		CharLimit:       intSetting("response_char_limit", 50000),
		DefaultPageSize: intSetting("default_page_size", domain.DefaultPageSize),
		MaxPageSize:     intSetting("max_page_size", domain.MaxPageSize),
	}, logger)

	srv := &http.Server{
		Addr:    viper.GetString("addr"),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
