// Package syncer mirrors problem-set progress to a remote backend. Local
// state stays authoritative; the backend is a best-effort copy.
package syncer

import (
	"context"
	"time"
)

// Delta is one optimistic change to a problem set.
type Delta struct {
	ItemID       string `json:"itemId"`
	XPDelta      int    `json:"xpDelta"`
	IsCompleting bool   `json:"isCompleting"`
}

// Client talks to the progress backend. Both calls return the server's
// completed list for the set after the call.
type Client interface {
	GetProgress(ctx context.Context, set string) ([]string, error)
	PostProgress(ctx context.Context, set string, d Delta) ([]string, error)
}

// RetryConfig controls retry behavior for transient errors.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetryConfig returns the retry settings used when none are given.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 500 * time.Millisecond,
		MaxWait:     5 * time.Second,
		Multiplier:  2.0,
	}
}
