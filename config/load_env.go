package config

import (
	"log/slog"
	"os"

	"github.com/subosito/gotenv"
)

const defaultEnv = "dev"

// AppEnv returns APP_ENV, defaulting to dev.
func AppEnv() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = defaultEnv
	}
	return env
}

// LoadEnv loads config/envs/.env.<env> into the process environment.
// Variables already set in the OS environment win over the file.
func LoadEnv(env string) {
	envFile := "config/envs/.env." + env
	if err := gotenv.Load(envFile); err != nil {
		slog.Debug("[Config] No .env file found, using OS environment",
			slog.String("file", envFile))
	}
}
