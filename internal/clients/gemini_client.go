package clients

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spacesedan/commentsense/config"
	"google.golang.org/genai"
)

type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, cfg config.SummarizerConfig) (*GeminiClient, error) {
	model := cfg.Model
	if model == "" {
		model = DEFAULT_GEMINI_MODEL
	}

	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: newHTTPClient(cfg.Timeout),
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create gemini client: %v", config.ErrConfig, err)
	}

	slog.Debug("[GeminiClient] Gemini client initialized", slog.String("model", model))
	return &GeminiClient{client: client, model: model}, nil
}

func (g *GeminiClient) Name() string  { return config.ProviderGemini }
func (g *GeminiClient) Model() string { return g.model }

func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", newRemoteError(g.Name(), err)
	}

	text := result.Text()
	if text == "" {
		return "", &RemoteError{Provider: g.Name(), Kind: KindUnknown, Err: ErrEmptyResponse}
	}
	return text, nil
}
