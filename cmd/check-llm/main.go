package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spacesedan/commentsense/config"
	"github.com/spacesedan/commentsense/internal/clients"
	"github.com/spacesedan/commentsense/internal/logging"
	"github.com/spacesedan/commentsense/internal/monitoring"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("[Main] check-llm failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		provider string
		model    string
		watch    time.Duration
	)

	cmd := &cobra.Command{
		Use:           "check-llm",
		Short:         "Check that the configured generative service accepts our credentials",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config.LoadEnv(config.AppEnv())
			cfg := config.FromEnv()
			logging.InitLogger(cfg.LogLevel)

			sc := cfg.Summarizer
			if provider != "" {
				sc.Provider = provider
				sc.APIKey = config.APIKeyFor(provider)
			}
			if model != "" {
				sc.Model = model
			}
			if err := sc.Validate(); err != nil {
				return err
			}

			client, err := clients.NewGenerativeClient(cmd.Context(), sc)
			if err != nil {
				return err
			}

			if watch > 0 {
				return watchHealth(cmd.Context(), client, watch)
			}
			return checkOnce(cmd, client, sc.Timeout)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&provider, "provider", "", "generative provider: gemini, openai or anthropic (env SUMMARIZER_PROVIDER)")
	flags.StringVar(&model, "model", "", "model identifier (env SUMMARIZER_MODEL)")
	flags.DurationVar(&watch, "watch", 0, "keep checking at this interval until interrupted")

	return cmd
}

func checkOnce(cmd *cobra.Command, client clients.GenerativeClient, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	text, err := monitoring.CheckGenerativeService(ctx, client)
	if err != nil {
		kind := clients.ClassifyError(err)
		slog.Error("[HealthCheck] Generative service check failed",
			slog.String("provider", client.Name()),
			slog.String("model", client.Model()),
			slog.String("kind", kind.String()),
			slog.String("reason", kind.Description()))
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %s %s responded: %s\n", client.Name(), client.Model(), text)
	return err
}

func watchHealth(ctx context.Context, client clients.GenerativeClient, interval time.Duration) error {
	var healthy atomic.Bool
	slog.Info("[HealthCheck] Watching generative service",
		slog.String("provider", client.Name()),
		slog.Duration("interval", interval))

	monitoring.MonitorGenerativeHealth(ctx, client, interval, &healthy)
	return nil
}
