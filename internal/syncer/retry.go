package syncer

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryClient is a decorator that retries transient errors with
// exponential backoff and jitter.
type RetryClient struct {
	inner  Client
	config RetryConfig
}

// WithRetry wraps a Client with retry logic.
func WithRetry(c Client, cfg RetryConfig) Client {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryClient{inner: c, config: cfg}
}

func (r *RetryClient) GetProgress(ctx context.Context, set string) ([]string, error) {
	return r.retry(ctx, func() ([]string, error) {
		return r.inner.GetProgress(ctx, set)
	})
}

func (r *RetryClient) PostProgress(ctx context.Context, set string, d Delta) ([]string, error) {
	return r.retry(ctx, func() ([]string, error) {
		return r.inner.PostProgress(ctx, set, d)
	})
}

func (r *RetryClient) retry(ctx context.Context, call func() ([]string, error)) ([]string, error) {
	var lastErr error
	for attempt := range r.config.MaxAttempts {
		completed, err := call()
		if err == nil {
			return completed, nil
		}
		lastErr = err

		if !shouldRetry(err) {
			return nil, err
		}
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoff(attempt, err)):
		}
	}
	return nil, lastErr
}

func shouldRetry(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var rejected *ErrRejected
	return !errors.As(err, &rejected)
}

// backoff computes the wait before the next attempt.
func (r *RetryClient) backoff(attempt int, err error) time.Duration {
	var unavail *ErrUnavailable
	if errors.As(err, &unavail) && unavail.RetryAfter > 0 {
		return min(unavail.RetryAfter, r.config.MaxWait)
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// ±20% jitter.
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
