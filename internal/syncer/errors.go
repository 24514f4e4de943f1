package syncer

import (
	"errors"
	"fmt"
	"time"
)

// ErrQueueClosed is returned by Enqueue after Close.
var ErrQueueClosed = errors.New("sync queue closed")

// ErrUnavailable indicates the backend could not be reached or asked the
// caller to come back later. It is worth retrying.
type ErrUnavailable struct {
	StatusCode int           // 0 for transport errors
	RetryAfter time.Duration // from a Retry-After header, if any
	Err        error
}

func (e *ErrUnavailable) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("sync backend unavailable (status %d): %v", e.StatusCode, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("sync backend unavailable: %v", e.Err)
	}
	return "sync backend unavailable"
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrRejected indicates the backend refused the request. Retrying the same
// request will not help.
type ErrRejected struct {
	StatusCode int
	Body       string
}

func (e *ErrRejected) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("sync request rejected (status %d): %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("sync request rejected (status %d)", e.StatusCode)
}
