// Package summarizer turns a set of comments into a short summary using a
// hosted generative model, and falls back to a local heuristic whenever the
// remote call fails.
package summarizer

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/spacesedan/commentsense/config"
	"github.com/spacesedan/commentsense/internal/clients"
	"github.com/spacesedan/commentsense/internal/models"
)

type Pipeline struct {
	client  clients.GenerativeClient
	timeout time.Duration
	retry   clients.RetryPolicy
	mode    Mode
}

type Option func(*Pipeline)

// WithTimeout bounds the whole remote call, retries included.
func WithTimeout(d time.Duration) Option {
	return func(p *Pipeline) {
		if d > 0 {
			p.timeout = d
		}
	}
}

func WithRetryPolicy(policy clients.RetryPolicy) Option {
	return func(p *Pipeline) {
		p.retry = policy
	}
}

func WithMode(mode Mode) Option {
	return func(p *Pipeline) {
		p.mode = mode
	}
}

// NewPipeline returns a pipeline backed by client. A nil client runs
// offline and always uses the fallback heuristic.
func NewPipeline(client clients.GenerativeClient, opts ...Option) *Pipeline {
	p := &Pipeline{
		client:  client,
		timeout: config.DefaultTimeout,
		retry:   clients.DefaultRetryPolicy(),
		mode:    ModeComments,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Summarize never fails: remote errors are logged and replaced by the
// fallback summary.
func (p *Pipeline) Summarize(ctx context.Context, comments []string) string {
	summary, _ := p.SummarizeWithSource(ctx, comments)
	return summary
}

// SummarizeWithSource is Summarize plus where the text came from.
func (p *Pipeline) SummarizeWithSource(ctx context.Context, raw []string) (string, models.SummarySource) {
	comments := models.NewCommentSet(raw)
	if comments.IsEmpty() {
		return NoCommentsMessage, models.SummarySourceEmpty
	}

	if p.client == nil {
		slog.Info("[Summarizer] Running offline, using basic summarization",
			slog.Int("comments", len(comments)))
		return FallbackSummarize(comments), models.SummarySourceFallback
	}

	summary, err := p.remoteSummary(ctx, comments)
	if err != nil {
		p.logFailure(err)
		return FallbackSummarize(comments), models.SummarySourceFallback
	}
	return summary, models.SummarySourceRemote
}

func (p *Pipeline) remoteSummary(ctx context.Context, comments models.CommentSet) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	prompt := BuildPrompt(p.mode, comments.Joined())
	start := time.Now()

	text, err := clients.GenerateWithRetry(ctx, p.client, prompt, p.retry)
	if err != nil {
		return "", err
	}

	summary := strings.TrimSpace(text)
	if summary == "" {
		return "", &clients.RemoteError{
			Provider: p.client.Name(),
			Kind:     clients.KindUnknown,
			Err:      clients.ErrEmptyResponse,
		}
	}

	slog.Info("[Summarizer] Summary request successful",
		slog.String("provider", p.client.Name()),
		slog.String("model", p.client.Model()),
		slog.String("mode", p.mode.String()),
		slog.Int("comments", len(comments)),
		slog.Duration("elapsed", time.Since(start)))
	return summary, nil
}

func (p *Pipeline) logFailure(err error) {
	kind := clients.ClassifyError(err)
	slog.Warn("[Summarizer] Remote summarization failed, falling back to basic summarization",
		slog.String("provider", p.client.Name()),
		slog.String("kind", kind.String()),
		slog.String("reason", kind.Description()),
		slog.String("error", clients.Preview(err.Error())))
}
