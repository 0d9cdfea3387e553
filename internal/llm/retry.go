package llm

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// RetryClient retries failed completions with exponential backoff.
type RetryClient struct {
	next       Client
	maxTries   uint
	log        *slog.Logger
	newBackOff func() backoff.BackOff
}

// WithRetry wraps c so each Complete is attempted up to maxTries times.
// maxTries of 0 or 1 returns c unchanged: no retries.
func WithRetry(c Client, maxTries uint, logger *slog.Logger) Client {
	if maxTries <= 1 {
		return c
	}
	return &RetryClient{
		next:     c,
		maxTries: maxTries,
		log:      logger,
		newBackOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		},
	}
}

// Complete calls the wrapped client until it succeeds, the attempts are
// exhausted, or ctx is done.
func (r *RetryClient) Complete(ctx context.Context, prompt string) (string, error) {
	attempt := 0
	return backoff.Retry(ctx, func() (string, error) {
		attempt++
		text, err := r.next.Complete(ctx, prompt)
		if err == nil {
			return text, nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", backoff.Permanent(err)
		}
		return "", err
	},
		backoff.WithBackOff(r.newBackOff()),
		backoff.WithMaxTries(r.maxTries),
		backoff.WithNotify(func(err error, next time.Duration) {
			r.log.Warn("Completion failed, retrying", "attempt", attempt, "next", next, "error", err)
		}),
	)
}
