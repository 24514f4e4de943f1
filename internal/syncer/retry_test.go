package syncer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	mock := NewMockClient()
	c := WithRetry(mock, retryConfig())

	got, err := c.PostProgress(context.Background(), "s", Delta{ItemID: "a", XPDelta: 5, IsCompleting: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got)
	assert.Equal(t, 1, mock.PostedCount())
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockClient()
	mock.FailNext(&ErrUnavailable{Err: errors.New("down")})
	c := WithRetry(mock, retryConfig())

	_, err := c.PostProgress(context.Background(), "s", Delta{ItemID: "a", IsCompleting: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, mock.Completed("s"))
}

func TestRetry_AllAttemptsFail(t *testing.T) {
	mock := NewMockClient()
	down := &ErrUnavailable{Err: errors.New("down")}
	mock.FailNext(down, down, down, down)
	c := WithRetry(mock, retryConfig())

	_, err := c.GetProgress(context.Background(), "s")
	var unavail *ErrUnavailable
	require.True(t, errors.As(err, &unavail))
	assert.Equal(t, 3, mock.Gets)
}

func TestRetry_RejectedNotRetried(t *testing.T) {
	mock := NewMockClient()
	mock.FailNext(&ErrRejected{StatusCode: 400})
	c := WithRetry(mock, retryConfig())

	_, err := c.GetProgress(context.Background(), "s")
	var rejected *ErrRejected
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, 1, mock.Gets)
}

func TestRetry_ContextErrorNotRetried(t *testing.T) {
	mock := NewMockClient()
	mock.FailNext(&ErrUnavailable{Err: context.DeadlineExceeded})
	c := WithRetry(mock, retryConfig())

	_, err := c.GetProgress(context.Background(), "s")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, mock.Gets)
}

func TestRetry_CancelledDuringBackoff(t *testing.T) {
	mock := NewMockClient()
	down := &ErrUnavailable{Err: errors.New("down")}
	mock.FailNext(down, down, down)
	c := WithRetry(mock, RetryConfig{MaxAttempts: 3, InitialWait: time.Hour, MaxWait: time.Hour, Multiplier: 1})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := c.GetProgress(ctx, "s")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, mock.Gets)
}

func TestBackoffRespectsRetryAfter(t *testing.T) {
	r := &RetryClient{config: RetryConfig{InitialWait: time.Millisecond, MaxWait: 5 * time.Second, Multiplier: 2}}
	assert.Equal(t, 2*time.Second, r.backoff(0, &ErrUnavailable{RetryAfter: 2 * time.Second}))
	assert.Equal(t, 5*time.Second, r.backoff(0, &ErrUnavailable{RetryAfter: time.Minute}))

	for attempt := range 10 {
		w := r.backoff(attempt, errors.New("x"))
		assert.LessOrEqual(t, w, time.Duration(float64(5*time.Second)*1.2))
		assert.GreaterOrEqual(t, w, time.Duration(0))
	}
}
