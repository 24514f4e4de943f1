package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/prepquest/internal/store"
)

// Job is one delta to deliver for a problem set.
type Job struct {
	Set   string
	Delta Delta
}

// Reconciler receives the server's view of a set after a successful call.
type Reconciler interface {
	Reconcile(set string, completed []string) error
}

// Outbox is the local fallback for deltas that could not be delivered.
type Outbox interface {
	Append(ctx context.Context, e store.OutboxEntry) (store.OutboxEntry, error)
	Pending(ctx context.Context, limit int) ([]store.OutboxEntry, error)
	Remove(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// Options configures a Syncer.
type Options struct {
	// QueueSize is the number of jobs buffered before Enqueue falls back to
	// the outbox. Default: 64.
	QueueSize int
	// Timeout bounds each backend call. Default: 10s.
	Timeout time.Duration
}

// Syncer delivers deltas on a single worker goroutine. Deliveries that fail
// are written to the outbox and replayed by Flush. Once the outbox holds
// anything, new deltas queue behind it so the backend sees them in order.
// Deltas the backend rejects are logged and dropped.
type Syncer struct {
	client  Client
	outbox  Outbox
	rec     Reconciler
	log     zerolog.Logger
	timeout time.Duration

	jobs chan Job

	mu     sync.Mutex // guards closed
	closed bool
	wg     sync.WaitGroup

	flushMu sync.Mutex // serialises deliveries against outbox replay
}

// New creates a Syncer. Call Start to begin delivering.
func New(client Client, outbox Outbox, rec Reconciler, log zerolog.Logger, opts Options) *Syncer {
	if opts.QueueSize <= 0 {
		opts.QueueSize = 64
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	return &Syncer{
		client:  client,
		outbox:  outbox,
		rec:     rec,
		log:     log.With().Str("component", "syncer").Logger(),
		timeout: opts.Timeout,
		jobs:    make(chan Job, opts.QueueSize),
	}
}

// Start launches the worker. It stops when ctx is done or Close is called.
func (s *Syncer) Start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(ctx)
	}()
}

// Enqueue hands j to the worker without blocking. A full queue sends j
// straight to the outbox.
func (s *Syncer) Enqueue(j Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrQueueClosed
	}
	select {
	case s.jobs <- j:
	default:
		s.log.Warn().Str("set", j.Set).Str("item", j.Delta.ItemID).Msg("sync queue full, writing to outbox")
		s.fallback(context.Background(), j, nil)
	}
	return nil
}

// Close stops accepting jobs and waits for the worker to exit. Jobs still
// queued when the worker stopped are moved to the outbox.
func (s *Syncer) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.jobs)
	s.mu.Unlock()

	s.wg.Wait()
	for j := range s.jobs {
		s.fallback(context.Background(), j, nil)
	}
}

func (s *Syncer) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j, ok := <-s.jobs:
			if !ok {
				return
			}
			s.deliver(ctx, j)
		}
	}
}

func (s *Syncer) deliver(ctx context.Context, j Job) {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	if _, err := s.flushLocked(ctx); err != nil {
		s.fallback(ctx, j, err)
		return
	}

	completed, err := s.post(ctx, j.Set, j.Delta)
	if isRejected(err) {
		s.drop(j.Set, j.Delta.ItemID, err)
		return
	}
	if err != nil {
		s.fallback(ctx, j, err)
		return
	}
	s.reconcile(j.Set, completed)
}

// Flush replays the outbox oldest first, removing each delivered entry.
// Rejected entries are removed without being counted. It stops at the first
// other failure and returns how many entries were delivered.
func (s *Syncer) Flush(ctx context.Context) (int, error) {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()
	return s.flushLocked(ctx)
}

func (s *Syncer) flushLocked(ctx context.Context) (int, error) {
	pending, err := s.outbox.Pending(ctx, 0)
	if err != nil {
		return 0, fmt.Errorf("read outbox: %w", err)
	}

	delivered := 0
	for _, e := range pending {
		d := Delta{ItemID: e.ItemID, XPDelta: e.XPDelta, IsCompleting: e.IsCompleting}
		completed, err := s.post(ctx, e.Set, d)
		if isRejected(err) {
			s.drop(e.Set, e.ItemID, err)
			if err := s.outbox.Remove(ctx, e.ID); err != nil {
				return delivered, err
			}
			continue
		}
		if err != nil {
			return delivered, fmt.Errorf("replay outbox entry %d: %w", e.ID, err)
		}
		if err := s.outbox.Remove(ctx, e.ID); err != nil {
			return delivered, err
		}
		delivered++
		s.reconcile(e.Set, completed)
	}
	if delivered > 0 {
		s.log.Info().Int("delivered", delivered).Msg("outbox replayed")
	}
	return delivered, nil
}

// Pull fetches the server's list for set and reconciles local state with it.
func (s *Syncer) Pull(ctx context.Context, set string) ([]string, error) {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	completed, err := s.client.GetProgress(cctx, set)
	if err != nil {
		return nil, fmt.Errorf("pull %s: %w", set, err)
	}
	if err := s.rec.Reconcile(set, completed); err != nil {
		return nil, fmt.Errorf("reconcile %s: %w", set, err)
	}
	return completed, nil
}

// Pending returns the number of deltas waiting in the outbox.
func (s *Syncer) Pending(ctx context.Context) (int, error) {
	return s.outbox.Count(ctx)
}

func (s *Syncer) post(ctx context.Context, set string, d Delta) ([]string, error) {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.client.PostProgress(cctx, set, d)
}

func (s *Syncer) reconcile(set string, completed []string) {
	if err := s.rec.Reconcile(set, completed); err != nil {
		s.log.Warn().Err(err).Str("set", set).Msg("reconcile failed")
	}
}

func isRejected(err error) bool {
	var rej *ErrRejected
	return errors.As(err, &rej)
}

func (s *Syncer) drop(set, item string, cause error) {
	s.log.Warn().Err(cause).Str("set", set).Str("item", item).Msg("sync rejected, delta dropped")
}

// fallback writes j to the outbox. cause is the delivery error, if any.
func (s *Syncer) fallback(ctx context.Context, j Job, cause error) {
	if cause != nil {
		s.log.Warn().Err(cause).Str("set", j.Set).Str("item", j.Delta.ItemID).Msg("sync failed, writing to outbox")
	}
	_, err := s.outbox.Append(context.WithoutCancel(ctx), store.OutboxEntry{
		Set:          j.Set,
		ItemID:       j.Delta.ItemID,
		XPDelta:      j.Delta.XPDelta,
		IsCompleting: j.Delta.IsCompleting,
	})
	if err != nil {
		s.log.Error().Err(err).Str("set", j.Set).Str("item", j.Delta.ItemID).Msg("outbox write failed, delta dropped")
	}
}
