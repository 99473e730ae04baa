package clients

import (
	"context"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"
	"github.com/spacesedan/commentsense/config"
)

type OpenAIClient struct {
	Client *openai.Client
	model  string
}

func NewOpenAIClient(cfg config.SummarizerConfig) *OpenAIClient {
	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	httpClient := newHTTPClient(cfg.Timeout)
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.HTTPClient = httpClient
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	slog.Debug("[OpenAIClient] OpenAI client initialized with custom HTTP timeout",
		slog.Duration("timeout", httpClient.Timeout),
		slog.String("model", model))

	return &OpenAIClient{
		Client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

func (o *OpenAIClient) Name() string  { return config.ProviderOpenAI }
func (o *OpenAIClient) Model() string { return o.model }

func (o *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", newRemoteError(o.Name(), err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &RemoteError{Provider: o.Name(), Kind: KindUnknown, Err: ErrEmptyResponse}
	}

	slog.Debug("[OpenAIClient] Response finish reason",
		slog.String("finish_reason", string(resp.Choices[0].FinishReason)))
	return resp.Choices[0].Message.Content, nil
}
