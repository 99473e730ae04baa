package clients

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spacesedan/commentsense/config"
)

// GenerativeClient sends a single prompt to a hosted text model.
// Errors are always *RemoteError.
type GenerativeClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
	Model() string
}

// NewGenerativeClient builds the client for cfg.Provider.
func NewGenerativeClient(ctx context.Context, cfg config.SummarizerConfig) (GenerativeClient, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		c, err := NewGeminiClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg), nil
	case config.ProviderAnthropic:
		return NewAnthropicClient(cfg), nil
	default:
		return nil, fmt.Errorf("%w: unknown summarizer provider %q", config.ErrConfig, cfg.Provider)
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 || timeout > REQUEST_TIMEOUT {
		timeout = REQUEST_TIMEOUT
	}
	return &http.Client{Timeout: timeout}
}
