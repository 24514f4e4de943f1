// Package app composes the engine, persistence and sync into a Tracker, the
// single writer every surface (CLI, HTTP API, pomodoro timer) goes through.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/prepquest/internal/badges"
	"github.com/abhisek/prepquest/internal/content"
	"github.com/abhisek/prepquest/internal/progress"
	"github.com/abhisek/prepquest/internal/roadmap"
	"github.com/abhisek/prepquest/internal/store"
	"github.com/abhisek/prepquest/internal/syncer"
)

// SnapshotsKept is how many versions of each document are retained.
const SnapshotsKept = 20

// ErrSyncDisabled is returned by sync commands when no backend is configured.
var ErrSyncDisabled = errors.New("sync is not configured")

// Options configures a Tracker.
type Options struct {
	Snapshots store.SnapshotRepo // required
	Outbox    store.OutboxRepo   // required when Sync is set

	// Sync is the backend client. Nil keeps all progress local.
	Sync        syncer.Client
	SyncTimeout time.Duration
	QueueSize   int

	Content   content.Catalog // default: content.Default()
	Badges    *badges.Catalog // default: badges.Default()
	Generator *roadmap.Generator
	Logger    zerolog.Logger
	Clock     func() time.Time
	NewID     func() string
}

// Tracker serialises every mutation behind one mutex. Each command applies
// the engine mutation, persists the affected document and releases the lock
// before any sync work is queued, so network I/O never delays local state.
type Tracker struct {
	mu       sync.Mutex
	engine   *progress.Engine
	roadmap  roadmap.State
	problems map[string][]string

	snapshots store.SnapshotRepo
	content   content.Catalog
	gen       *roadmap.Generator
	sync      *syncer.Syncer
	log       zerolog.Logger
	now       func() time.Time
}

// Open loads every persisted document and, when a sync client is given,
// starts the sync worker. Corrupt documents are replaced by empty state and
// logged; they do not fail Open.
func Open(ctx context.Context, opts Options) (*Tracker, error) {
	if opts.Snapshots == nil {
		return nil, errors.New("app: snapshot repo is required")
	}
	if opts.Sync != nil && opts.Outbox == nil {
		return nil, errors.New("app: outbox repo is required when sync is enabled")
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if len(opts.Content.Names()) == 0 {
		opts.Content = content.Default()
	}
	if opts.Generator == nil {
		opts.Generator = roadmap.NewGenerator(roadmap.DefaultPools(), roadmap.WithClock(opts.Clock))
	}

	t := &Tracker{
		problems:  make(map[string][]string),
		snapshots: opts.Snapshots,
		content:   opts.Content,
		gen:       opts.Generator,
		log:       opts.Logger.With().Str("component", "tracker").Logger(),
		now:       opts.Clock,
	}

	engineOpts := []progress.Option{progress.WithClock(opts.Clock)}
	if opts.Badges != nil {
		engineOpts = append(engineOpts, progress.WithCatalog(*opts.Badges))
	}
	if opts.NewID != nil {
		engineOpts = append(engineOpts, progress.WithIDGenerator(opts.NewID))
	}

	raw, err := t.latest(ctx, progress.StorageKey)
	if err != nil {
		return nil, err
	}
	state, recovered, err := progress.Decode(raw)
	if recovered {
		t.log.Warn().Err(err).Str("key", progress.StorageKey).Msg("progress document unreadable, starting fresh")
	}
	t.engine = progress.FromState(state, engineOpts...)

	if raw, err = t.latest(ctx, roadmap.StorageKey); err != nil {
		return nil, err
	}
	rs, recovered, err := roadmap.DecodeState(raw)
	if recovered {
		t.log.Warn().Err(err).Str("key", roadmap.StorageKey).Msg("roadmap document unreadable, starting fresh")
	}
	t.roadmap = rs

	for _, set := range t.content.Names() {
		key := ProblemStorageKey(set)
		if raw, err = t.latest(ctx, key); err != nil {
			return nil, err
		}
		completed, recovered, err := decodeProblems(raw)
		if recovered {
			t.log.Warn().Err(err).Str("key", key).Msg("problem document unreadable, starting fresh")
		}
		t.problems[set] = completed
	}

	if opts.Sync != nil {
		t.sync = syncer.New(opts.Sync, opts.Outbox, t, opts.Logger, syncer.Options{
			QueueSize: opts.QueueSize,
			Timeout:   opts.SyncTimeout,
		})
		t.sync.Start(ctx)
	}
	return t, nil
}

// Close stops the sync worker. Undelivered deltas stay in the outbox.
func (t *Tracker) Close() {
	if t.sync != nil {
		t.sync.Close()
	}
}

// SyncEnabled reports whether a backend is configured.
func (t *Tracker) SyncEnabled() bool {
	return t.sync != nil
}

// State returns a copy of the gamification state.
func (t *Tracker) State() progress.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.engine.State()
}

// Stats returns the dashboard projection of the current state.
func (t *Tracker) Stats() progress.Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return progress.ComputeStats(t.engine.State(), t.engine.Catalog(), t.now())
}

// BadgeStatus pairs a catalog badge with whether it is unlocked.
type BadgeStatus struct {
	badges.Badge
	Unlocked bool `json:"unlocked"`
}

// Badges lists the whole catalog with unlock status, in catalog order.
func (t *Tracker) Badges() []BadgeStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	all := t.engine.Catalog().All()
	out := make([]BadgeStatus, len(all))
	for i, b := range all {
		out[i] = BadgeStatus{Badge: b, Unlocked: t.engine.HasBadge(b.ID)}
	}
	return out
}

// Content returns the problem-set catalog.
func (t *Tracker) Content() content.Catalog {
	return t.content
}

// mutate applies fn under the lock and persists the progress document when
// fn changed state.
func (t *Tracker) mutate(ctx context.Context, op string, fn func(e *progress.Engine) progress.Result) (progress.Result, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	r := fn(t.engine)
	if !r.Applied() {
		t.log.Debug().Str("op", op).Str("reason", r.Reason).Msg("ignored")
		return r, nil
	}
	if err := t.saveProgressLocked(ctx); err != nil {
		return r, err
	}
	t.logResult(op, r)
	return r, nil
}

func (t *Tracker) logResult(op string, r progress.Result) {
	ev := t.log.Debug()
	if len(r.NewBadges) > 0 || r.LeveledUp {
		ev = t.log.Info()
	}
	ev.Str("op", op).
		Int("xp_delta", r.XPDelta).
		Strs("new_badges", r.NewBadges).
		Bool("leveled_up", r.LeveledUp).
		Msg("applied")
}

func (t *Tracker) saveProgressLocked(ctx context.Context) error {
	data, err := progress.Encode(t.engine.State())
	if err != nil {
		return err
	}
	return t.save(ctx, progress.StorageKey, data)
}

func (t *Tracker) saveRoadmapLocked(ctx context.Context) error {
	data, err := roadmap.EncodeState(t.roadmap)
	if err != nil {
		return err
	}
	return t.save(ctx, roadmap.StorageKey, data)
}

// save writes a new version of key and prunes old ones. A failed prune only
// leaves extra history behind, so it is logged rather than returned.
func (t *Tracker) save(ctx context.Context, key string, data []byte) error {
	if _, err := t.snapshots.Save(ctx, key, data); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	if err := t.snapshots.Prune(ctx, key, SnapshotsKept); err != nil {
		t.log.Warn().Err(err).Str("key", key).Msg("prune failed")
	}
	return nil
}

func (t *Tracker) latest(ctx context.Context, key string) ([]byte, error) {
	snap, err := t.snapshots.Latest(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if snap == nil {
		return nil, nil
	}
	return snap.Data, nil
}
