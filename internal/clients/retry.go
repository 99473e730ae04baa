package clients

import (
	"context"
	"log/slog"
	"time"
)

type RetryPolicy struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:     MAX_RETRIES,
		InitialBackoff: INITIAL_BACKOFF,
		MaxBackoff:     MAX_BACKOFF,
	}
}

// GenerateWithRetry calls client.Generate, retrying rate limit and network
// failures with exponential backoff until the policy or ctx runs out. The
// last failure is returned as a *RemoteError.
func GenerateWithRetry(ctx context.Context, client GenerativeClient, prompt string, policy RetryPolicy) (string, error) {
	backoff := policy.InitialBackoff
	var lastErr error

	for attempt := 0; attempt <= policy.MaxRetries; attempt++ {
		start := time.Now()
		text, err := client.Generate(ctx, prompt)
		if err == nil {
			slog.Debug("[GenerativeClient] Request successful",
				slog.String("provider", client.Name()),
				slog.Int("attempt", attempt+1),
				slog.Duration("elapsed", time.Since(start)))
			return text, nil
		}

		lastErr = newRemoteError(client.Name(), err)
		kind := ClassifyError(lastErr)
		if !kind.Retryable() || attempt == policy.MaxRetries || ctx.Err() != nil {
			break
		}

		slog.Warn("[GenerativeClient] Request failed, will retry",
			slog.String("provider", client.Name()),
			slog.Int("attempt", attempt+1),
			slog.String("kind", kind.String()),
			slog.Duration("backoff", backoff),
			slog.String("error", Preview(err.Error())))

		select {
		case <-ctx.Done():
			return "", lastErr
		case <-time.After(backoff):
		}

		backoff *= 2
		if policy.MaxBackoff > 0 && backoff > policy.MaxBackoff {
			backoff = policy.MaxBackoff
		}
	}

	return "", lastErr
}
