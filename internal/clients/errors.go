package clients

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

// ErrorKind buckets a failed call to a generative service. It only feeds
// diagnostics and retry decisions.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindCredential
	KindRateLimit
	KindModel
	KindNetwork
)

var ErrEmptyResponse = errors.New("empty response from generative service")

func (k ErrorKind) String() string {
	switch k {
	case KindCredential:
		return "credential"
	case KindRateLimit:
		return "rate_limit"
	case KindModel:
		return "model"
	case KindNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// Description is the human readable form used in log lines.
func (k ErrorKind) Description() string {
	switch k {
	case KindCredential:
		return "API key or authentication error"
	case KindRateLimit:
		return "API quota or rate limit reached"
	case KindModel:
		return "model unavailable or invalid"
	case KindNetwork:
		return "network or timeout error"
	default:
		return "unrecognized error"
	}
}

// Retryable reports whether another attempt could succeed.
func (k ErrorKind) Retryable() bool {
	return k == KindRateLimit || k == KindNetwork
}

// RemoteError is what every GenerativeClient returns on failure.
type RemoteError struct {
	Provider string
	Kind     ErrorKind
	Err      error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s %s error: %v", e.Provider, e.Kind, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func newRemoteError(provider string, err error) error {
	if err == nil {
		return nil
	}
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr
	}
	return &RemoteError{
		Provider: provider,
		Kind:     ClassifyError(err),
		Err:      err,
	}
}

// ClassifyError maps err to an ErrorKind. Typed SDK errors and transport
// errors are inspected first; the message text is the last resort.
func ClassifyError(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}

	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Kind
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindNetwork
	}

	if status := statusCode(err); status != 0 {
		if kind, ok := kindFromStatus(status); ok {
			return kind
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindNetwork
	}

	return ClassifyMessage(err.Error())
}

// ClassifyMessage buckets an error message by keyword, case-insensitively.
func ClassifyMessage(msg string) ErrorKind {
	msg = strings.ToLower(msg)
	switch {
	case strings.Contains(msg, "api key") || strings.Contains(msg, "authentication"):
		return KindCredential
	case strings.Contains(msg, "quota") || strings.Contains(msg, "limit"):
		return KindRateLimit
	case strings.Contains(msg, "model"):
		return KindModel
	case strings.Contains(msg, "network") || strings.Contains(msg, "connect"):
		return KindNetwork
	default:
		return KindUnknown
	}
}

func statusCode(err error) int {
	var geminiErr genai.APIError
	if errors.As(err, &geminiErr) {
		return geminiErr.Code
	}

	var openAIErr *openai.APIError
	if errors.As(err, &openAIErr) {
		return openAIErr.HTTPStatusCode
	}

	var openAIReqErr *openai.RequestError
	if errors.As(err, &openAIReqErr) {
		return openAIReqErr.HTTPStatusCode
	}

	var anthropicErr *anthropic.Error
	if errors.As(err, &anthropicErr) {
		return anthropicErr.StatusCode
	}

	return 0
}

// kindFromStatus only knows unambiguous codes. Gemini answers a bad key with
// a 400, which falls through to message matching.
func kindFromStatus(status int) (ErrorKind, bool) {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindCredential, true
	case http.StatusTooManyRequests:
		return KindRateLimit, true
	case http.StatusNotFound:
		return KindModel, true
	case http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return KindNetwork, true
	default:
		return KindUnknown, false
	}
}

// Preview shortens s for log lines.
func Preview(s string) string {
	if len(s) > PREVIEW_LENGTH {
		return s[:PREVIEW_LENGTH] + "..."
	}
	return s
}
