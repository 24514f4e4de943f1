package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/prepquest/internal/app"
	"github.com/abhisek/prepquest/internal/config"
	"github.com/abhisek/prepquest/internal/logging"
	"github.com/abhisek/prepquest/internal/store"
	"github.com/abhisek/prepquest/internal/syncer"
)

// env is everything a command needs, opened from flags and config.
type env struct {
	cfg     config.Config
	log     zerolog.Logger
	store   *store.Store
	tracker *app.Tracker
}

func openEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	opts := app.Options{
		Snapshots:   st.SnapshotRepo(),
		Outbox:      st.OutboxRepo(),
		Logger:      log,
		SyncTimeout: cfg.Sync.Timeout,
		QueueSize:   cfg.Sync.QueueSize,
	}
	if cfg.Sync.Enabled() {
		opts.Sync = syncer.WithRetry(
			syncer.NewHTTPClient(cfg.Sync.BaseURL, syncer.WithTimeout(cfg.Sync.Timeout)),
			syncer.RetryConfig{
				MaxAttempts: cfg.Sync.Retry.MaxAttempts,
				InitialWait: cfg.Sync.Retry.InitialWait,
				MaxWait:     cfg.Sync.Retry.MaxWait,
				Multiplier:  cfg.Sync.Retry.Multiplier,
			},
		)
	}

	tr, err := app.Open(cmd.Context(), opts)
	if err != nil {
		st.Close()
		return nil, err
	}
	return &env{cfg: cfg, log: log, store: st, tracker: tr}, nil
}

// Close stops sync, letting queued deltas reach the backend or the outbox,
// then closes the database.
func (e *env) Close() {
	e.tracker.Close()
	e.store.Close()
}

// withTracker opens the environment, runs fn and closes it again.
func withTracker(cmd *cobra.Command, fn func(e *env) error) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()
	return fn(e)
}
