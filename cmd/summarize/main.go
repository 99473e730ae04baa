package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spacesedan/commentsense/config"
	"github.com/spacesedan/commentsense/internal/clients"
	"github.com/spacesedan/commentsense/internal/input"
	"github.com/spacesedan/commentsense/internal/logging"
	"github.com/spacesedan/commentsense/internal/summarizer"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("[Main] summarize failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}

type options struct {
	provider string
	model    string
	timeout  time.Duration
	speech   bool
	offline  bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "summarize [flags] <comments.json>",
		Short: "Summarize comments with a hosted model",
		Long: `summarize reads a JSON array of comments and prints a short summary produced
by a hosted generative model. When the remote call fails, a local heuristic
summary is printed instead. With --speech the input is a plain-text speech.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.provider, "provider", "", "generative provider: gemini, openai or anthropic (env SUMMARIZER_PROVIDER)")
	flags.StringVar(&opts.model, "model", "", "model identifier (env SUMMARIZER_MODEL)")
	flags.DurationVar(&opts.timeout, "timeout", 0, "overall timeout for the remote call (env SUMMARIZER_TIMEOUT)")
	flags.BoolVar(&opts.speech, "speech", false, "treat the input as a plain-text speech")
	flags.BoolVar(&opts.offline, "offline", false, "skip the remote call and use the local heuristic")

	return cmd
}

func run(cmd *cobra.Command, path string, opts options) error {
	config.LoadEnv(config.AppEnv())
	cfg := config.FromEnv()
	logging.InitLogger(cfg.LogLevel)

	sc := cfg.Summarizer
	if opts.provider != "" {
		sc.Provider = opts.provider
		sc.APIKey = config.APIKeyFor(opts.provider)
	}
	if opts.model != "" {
		sc.Model = opts.model
	}
	if cmd.Flags().Changed("timeout") {
		sc.Timeout = opts.timeout
	}

	var client clients.GenerativeClient
	if !opts.offline {
		if err := sc.Validate(); err != nil {
			return err
		}
		c, err := clients.NewGenerativeClient(cmd.Context(), sc)
		if err != nil {
			return err
		}
		client = c
	}

	mode := summarizer.ModeComments
	var comments []string
	if opts.speech {
		mode = summarizer.ModeSpeech
		text, err := input.ReadText(path)
		if err != nil {
			return err
		}
		comments = []string{text}
	} else {
		c, err := input.ReadComments(path)
		if err != nil {
			return err
		}
		comments = c
	}

	pipeline := summarizer.NewPipeline(client,
		summarizer.WithTimeout(sc.Timeout),
		summarizer.WithRetryPolicy(clients.RetryPolicy{
			MaxRetries:     sc.MaxRetries,
			InitialBackoff: clients.INITIAL_BACKOFF,
			MaxBackoff:     clients.MAX_BACKOFF,
		}),
		summarizer.WithMode(mode))

	_, err := fmt.Fprintln(cmd.OutOrStdout(), pipeline.Summarize(cmd.Context(), comments))
	return err
}
