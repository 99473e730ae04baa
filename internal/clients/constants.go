package clients

import "time"

const (
	MAX_RETRIES     = 2
	INITIAL_BACKOFF = 1 * time.Second
	MAX_BACKOFF     = 32 * time.Second

	// Caps a single HTTP exchange; the caller's context bounds the whole call.
	REQUEST_TIMEOUT = 30 * time.Second

	DEFAULT_GEMINI_MODEL     = "gemini-2.5-flash"
	DEFAULT_ANTHROPIC_TOKENS = 512
	PREVIEW_LENGTH           = 100
)
