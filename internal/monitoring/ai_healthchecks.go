package monitoring

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/spacesedan/commentsense/internal/clients"
)

const (
	HEALTHCHECK_TIMER  = 15 * time.Second
	HEALTHCHECK_PROMPT = "Say 'Hello, world!'"
)

// CheckGenerativeService sends a trivial prompt and returns the trimmed
// reply. A failure comes back as a *clients.RemoteError.
func CheckGenerativeService(ctx context.Context, client clients.GenerativeClient) (string, error) {
	text, err := clients.GenerateWithRetry(ctx, client, HEALTHCHECK_PROMPT, clients.RetryPolicy{})
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", &clients.RemoteError{Provider: client.Name(), Kind: clients.KindUnknown, Err: clients.ErrEmptyResponse}
	}
	return text, nil
}

// MonitorGenerativeHealth runs CheckGenerativeService every interval and
// stores the outcome in healthy until ctx is done.
func MonitorGenerativeHealth(ctx context.Context, client clients.GenerativeClient, interval time.Duration, healthy *atomic.Bool) {
	if interval <= 0 {
		interval = HEALTHCHECK_TIMER
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, err := CheckGenerativeService(ctx, client)
			wasHealthy := healthy.Swap(err == nil)
			if err != nil {
				kind := clients.ClassifyError(err)
				slog.Warn("[HealthCheck] Generative service is unhealthy",
					slog.String("provider", client.Name()),
					slog.String("kind", kind.String()),
					slog.String("reason", kind.Description()))
				continue
			}
			if !wasHealthy {
				slog.Info("[HealthCheck] Generative service is healthy",
					slog.String("provider", client.Name()),
					slog.String("model", client.Model()))
			}
		}
	}
}
