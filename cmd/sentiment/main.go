package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spacesedan/commentsense/config"
	"github.com/spacesedan/commentsense/internal/input"
	"github.com/spacesedan/commentsense/internal/logging"
	"github.com/spacesedan/commentsense/internal/sentiment"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("[Main] sentiment failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var backend, modelPath, vectorizerPath string

	cmd := &cobra.Command{
		Use:           "sentiment [flags] <text_file>",
		Short:         "Label the sentiment of a text file as positive or negative",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv(config.AppEnv())
			cfg := config.FromEnv()
			logging.InitLogger(cfg.LogLevel)

			sc := cfg.Sentiment
			if backend != "" {
				sc.Backend = backend
			}
			if modelPath != "" {
				sc.ModelPath = modelPath
			}
			if vectorizerPath != "" {
				sc.VectorizerPath = vectorizerPath
			}

			text, err := input.ReadText(args[0])
			if err != nil {
				return err
			}

			loader, err := sentiment.NewLoader(sc)
			if err != nil {
				return err
			}
			classifier, err := loader.Load()
			if err != nil {
				return err
			}

			label, err := classifier.Predict(text)
			if err != nil {
				return err
			}

			slog.Debug("[Sentiment] Prediction complete",
				slog.String("backend", sc.Backend),
				slog.String("label", label.String()))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), label)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&backend, "backend", "", "artifact or vader (env SENTIMENT_BACKEND)")
	flags.StringVar(&modelPath, "model", "", "classifier artifact, .json or .yaml (env SENTIMENT_MODEL_PATH)")
	flags.StringVar(&vectorizerPath, "vectorizer", "", "vectorizer artifact, .json or .yaml (env SENTIMENT_VECTORIZER_PATH)")

	return cmd
}
