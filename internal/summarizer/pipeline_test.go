package summarizer

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"github.com/spacesedan/commentsense/internal/clients"
	"github.com/spacesedan/commentsense/internal/models"
)

// mockClient returns its scripted errors in order, then text.
type mockClient struct {
	mu      sync.Mutex
	errs    []error
	text    string
	block   bool
	calls   int
	prompts []string
}

func (m *mockClient) Name() string  { return "mock" }
func (m *mockClient) Model() string { return "mock-1" }

func (m *mockClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.calls++
	m.prompts = append(m.prompts, prompt)
	block := m.block
	var err error
	if len(m.errs) > 0 {
		err, m.errs = m.errs[0], m.errs[1:]
	}
	m.mu.Unlock()

	if block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if err != nil {
		return "", err
	}
	return m.text, nil
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func noRetry() Option {
	return WithRetryPolicy(clients.RetryPolicy{MaxRetries: 0})
}

func TestPipelineFallsBackOnCredentialError(t *testing.T) {
	logs := captureLogs(t)
	comments := []string{"good", "bad", "okay"}
	client := &mockClient{errs: []error{errors.New("invalid API key")}}

	got, source := NewPipeline(client, noRetry()).SummarizeWithSource(context.Background(), comments)

	assert.Equal(t, got, FallbackSummarize(models.NewCommentSet(comments)))
	assert.Equal(t, got, NewPipeline(nil).Summarize(context.Background(), comments))
	assert.Equal(t, source, models.SummarySourceFallback)
	assert.Equal(t, strings.Contains(logs.String(), "kind=credential"), true)
	assert.Equal(t, strings.Contains(logs.String(), "API key or authentication error"), true)
}

func TestPipelineEveryKindUsesSameFallback(t *testing.T) {
	comments := []string{"I love it", "it is poor", "bad", "so bad"}
	want := FallbackSummarize(models.NewCommentSet(comments))

	for _, msg := range []string{
		"invalid API key",
		"quota exceeded",
		"model not found",
		"could not connect",
		"kaboom",
	} {
		t.Run(msg, func(t *testing.T) {
			captureLogs(t)
			client := &mockClient{errs: []error{errors.New(msg)}}
			got := NewPipeline(client, noRetry()).Summarize(context.Background(), comments)
			assert.Equal(t, got, want)
		})
	}
}

func TestPipelineRemoteIsTrimmedAndIdempotent(t *testing.T) {
	captureLogs(t)
	client := &mockClient{text: "\n  Readers mostly liked the update.  \n"}
	p := NewPipeline(client, noRetry())
	comments := []string{"nice update", "love the new layout"}

	first, source := p.SummarizeWithSource(context.Background(), comments)
	second := p.Summarize(context.Background(), comments)

	assert.Equal(t, first, "Readers mostly liked the update.")
	assert.Equal(t, second, first)
	assert.Equal(t, source, models.SummarySourceRemote)
	assert.Equal(t, client.calls, 2)
}

func TestPipelinePromptJoinsTrimmedComments(t *testing.T) {
	captureLogs(t)
	client := &mockClient{text: "ok"}

	NewPipeline(client, noRetry()).Summarize(context.Background(), []string{"  first  ", "", "   ", "second"})

	assert.Equal(t, len(client.prompts), 1)
	assert.Equal(t, client.prompts[0],
		"Summarize the following comments in 2-3 sentences, capturing the main sentiment and key points:\n\nfirst\n\nsecond")
}

func TestPipelineSpeechMode(t *testing.T) {
	captureLogs(t)
	client := &mockClient{text: "A pledge to reach every beneficiary."}

	got := NewPipeline(client, noRetry(), WithMode(ModeSpeech)).
		Summarize(context.Background(), []string{"People across the country..."})

	assert.Equal(t, got, "A pledge to reach every beneficiary.")
	assert.Equal(t, strings.HasPrefix(client.prompts[0], "Summarize the following speech in 1-2 sentences"), true)
}

func TestPipelineEmptyInputSkipsRemote(t *testing.T) {
	client := &mockClient{text: "should not be used"}
	p := NewPipeline(client)

	for _, input := range [][]string{nil, {}, {"", "  ", "\n\t"}} {
		got, source := p.SummarizeWithSource(context.Background(), input)
		assert.Equal(t, got, NoCommentsMessage)
		assert.Equal(t, source, models.SummarySourceEmpty)
	}
	assert.Equal(t, client.calls, 0)
}

func TestPipelineTimeoutFallsBack(t *testing.T) {
	logs := captureLogs(t)
	client := &mockClient{block: true}
	p := NewPipeline(client, WithTimeout(20*time.Millisecond), noRetry())

	start := time.Now()
	got, source := p.SummarizeWithSource(context.Background(), []string{"great"})

	if time.Since(start) > 2*time.Second {
		t.Fatal("timeout was not applied")
	}
	assert.Equal(t, got, "There is 1 comment with mostly positive sentiment.")
	assert.Equal(t, source, models.SummarySourceFallback)
	assert.Equal(t, strings.Contains(logs.String(), "kind=network"), true)
}

func TestPipelineBlankRemoteResponseFallsBack(t *testing.T) {
	logs := captureLogs(t)
	client := &mockClient{text: "   \n"}

	got := NewPipeline(client, noRetry()).Summarize(context.Background(), []string{"bad"})

	assert.Equal(t, got, "There is 1 comment with mostly negative sentiment.")
	assert.Equal(t, strings.Contains(logs.String(), "kind=unknown"), true)
}

func TestPipelineRetriesRateLimitBeforeFallback(t *testing.T) {
	captureLogs(t)
	client := &mockClient{
		errs: []error{errors.New("quota exceeded")},
		text: "Recovered summary.",
	}
	policy := clients.RetryPolicy{MaxRetries: 2, InitialBackoff: time.Millisecond, MaxBackoff: time.Millisecond}

	got := NewPipeline(client, WithRetryPolicy(policy)).Summarize(context.Background(), []string{"good"})

	assert.Equal(t, got, "Recovered summary.")
	assert.Equal(t, client.calls, 2)
}

func TestPipelineOffline(t *testing.T) {
	logs := captureLogs(t)

	got := NewPipeline(nil).Summarize(context.Background(), []string{"love", "hate"})

	assert.Equal(t, got, "There are 2 comments with mixed or neutral sentiment. ")
	assert.Equal(t, strings.Contains(logs.String(), "offline"), true)
}
