package store

import (
	"context"
	"time"
)

// Snapshot is one saved version of a named document.
type Snapshot struct {
	ID        int64
	Name      string
	Sequence  int64
	Timestamp time.Time
	Data      []byte
}

// SnapshotRepo stores versions of named JSON documents. Each engine concern
// writes under its own stable name.
type SnapshotRepo interface {
	// Save stores data as the newest version of name.
	Save(ctx context.Context, name string, data []byte) (*Snapshot, error)

	// Latest returns the newest version of name, or nil if none exist.
	Latest(ctx context.Context, name string) (*Snapshot, error)

	// Prune deletes all but the keep newest versions of name.
	Prune(ctx context.Context, name string, keep int) error
}

// OutboxEntry is a problem-set change that could not be delivered to the
// backend and waits for replay.
type OutboxEntry struct {
	ID           int64
	Sequence     int64
	Set          string
	ItemID       string
	XPDelta      int
	IsCompleting bool
	CreatedAt    time.Time
}

// OutboxRepo is a FIFO of undelivered sync writes.
type OutboxRepo interface {
	// Append queues e and returns it with ID, Sequence and CreatedAt set.
	Append(ctx context.Context, e OutboxEntry) (OutboxEntry, error)

	// Pending returns up to limit entries, oldest first. A limit of 0
	// returns all entries.
	Pending(ctx context.Context, limit int) ([]OutboxEntry, error)

	// Remove deletes an entry after it has been replayed.
	Remove(ctx context.Context, id int64) error

	// Count returns the number of queued entries.
	Count(ctx context.Context) (int, error)
}
