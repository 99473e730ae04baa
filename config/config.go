package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"

	BackendArtifact = "artifact"
	BackendVader    = "vader"

	DefaultTimeout        = 30 * time.Second
	DefaultMaxRetries     = 2
	DefaultModelPath      = "ai_model/sentiment_model.json"
	DefaultVectorizerPath = "ai_model/vectorizer.json"
)

var ErrConfig = errors.New("configuration error")

// apiKeyEnv maps a provider to the environment variable holding its key.
var apiKeyEnv = map[string]string{
	ProviderGemini:    "GEMINI_API_KEY",
	ProviderOpenAI:    "OPENAI_API_KEY",
	ProviderAnthropic: "ANTHROPIC_API_KEY",
}

type SummarizerConfig struct {
	Provider   string
	Model      string
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

type SentimentConfig struct {
	Backend        string
	ModelPath      string
	VectorizerPath string
}

type Config struct {
	LogLevel   string
	Summarizer SummarizerConfig
	Sentiment  SentimentConfig
}

// FromEnv builds a Config from the process environment. It never fails;
// call Validate before using the summarizer section.
func FromEnv() Config {
	provider := strings.ToLower(getEnvWithDefault("SUMMARIZER_PROVIDER", ProviderGemini))

	return Config{
		LogLevel: getEnvWithDefault("LOG_LEVEL", "info"),
		Summarizer: SummarizerConfig{
			Provider:   provider,
			Model:      os.Getenv("SUMMARIZER_MODEL"),
			APIKey:     APIKeyFor(provider),
			BaseURL:    os.Getenv("SUMMARIZER_BASE_URL"),
			Timeout:    getEnvDurationWithDefault("SUMMARIZER_TIMEOUT", DefaultTimeout),
			MaxRetries: getEnvIntWithDefault("SUMMARIZER_MAX_RETRIES", DefaultMaxRetries),
		},
		Sentiment: SentimentConfig{
			Backend:        strings.ToLower(getEnvWithDefault("SENTIMENT_BACKEND", BackendArtifact)),
			ModelPath:      getEnvWithDefault("SENTIMENT_MODEL_PATH", DefaultModelPath),
			VectorizerPath: getEnvWithDefault("SENTIMENT_VECTORIZER_PATH", DefaultVectorizerPath),
		},
	}
}

// APIKeyFor resolves the credential for provider from the environment.
func APIKeyFor(provider string) string {
	name, ok := apiKeyEnv[provider]
	if !ok {
		return ""
	}
	return os.Getenv(name)
}

// Validate fails fast when the summarizer cannot reach its provider.
func (c SummarizerConfig) Validate() error {
	name, ok := apiKeyEnv[c.Provider]
	if !ok {
		return fmt.Errorf("%w: unknown summarizer provider %q (want gemini, openai or anthropic)", ErrConfig, c.Provider)
	}
	if c.APIKey == "" {
		return fmt.Errorf("%w: %s is not set; export it or add it to config/envs/.env.%s", ErrConfig, name, AppEnv())
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: summarizer timeout must be positive, got %s", ErrConfig, c.Timeout)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("%w: summarizer max retries must not be negative, got %d", ErrConfig, c.MaxRetries)
	}
	return nil
}

func (c SentimentConfig) Validate() error {
	switch c.Backend {
	case BackendVader:
		return nil
	case BackendArtifact:
		if c.ModelPath == "" || c.VectorizerPath == "" {
			return fmt.Errorf("%w: artifact backend needs both a model and a vectorizer path", ErrConfig)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown sentiment backend %q (want artifact or vader)", ErrConfig, c.Backend)
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		slog.Warn("[Config] Invalid integer, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Int("default", defaultValue))
		return defaultValue
	}
	return value
}

func getEnvDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		slog.Warn("[Config] Invalid duration, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Duration("default", defaultValue))
		return defaultValue
	}
	return value
}
