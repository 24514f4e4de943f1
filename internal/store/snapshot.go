package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const snapshotsTable = "snapshots"

// snapshotRepo implements SnapshotRepo with the ent SQL builder.
type snapshotRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
	now func() time.Time
}

func (r *snapshotRepo) Save(ctx context.Context, name string, data []byte) (*Snapshot, error) {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return nil, err
	}
	snap := &Snapshot{
		Name:      name,
		Sequence:  seq,
		Timestamp: r.now().UTC(),
		Data:      append([]byte(nil), data...),
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(snapshotsTable).
		Columns("name", "sequence", "timestamp", "data").
		Values(snap.Name, snap.Sequence, formatTime(snap.Timestamp), string(data)).
		Query()

	var res entsql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return nil, fmt.Errorf("save snapshot %s: %w", name, err)
	}
	if snap.ID, err = res.LastInsertId(); err != nil {
		return nil, fmt.Errorf("save snapshot %s: %w", name, err)
	}
	return snap, nil
}

func (r *snapshotRepo) Latest(ctx context.Context, name string) (*Snapshot, error) {
	b := entsql.Dialect(dialect.SQLite)
	t := b.Table(snapshotsTable)
	query, args := b.Select(t.C("id"), t.C("name"), t.C("sequence"), t.C("timestamp"), t.C("data")).
		From(t).
		Where(entsql.EQ(t.C("name"), name)).
		OrderBy(entsql.Desc(t.C("sequence"))).
		Limit(1).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query latest snapshot %s: %w", name, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("query latest snapshot %s: %w", name, err)
		}
		return nil, nil
	}

	var (
		snap Snapshot
		ts   string
		data string
	)
	if err := rows.Scan(&snap.ID, &snap.Name, &snap.Sequence, &ts, &data); err != nil {
		return nil, fmt.Errorf("scan snapshot %s: %w", name, err)
	}
	var err error
	if snap.Timestamp, err = parseTime(ts); err != nil {
		return nil, err
	}
	snap.Data = []byte(data)
	return &snap, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, name string, keep int) error {
	if keep < 1 {
		return fmt.Errorf("prune snapshots %s: keep must be positive, got %d", name, keep)
	}

	// The keep-th newest sequence bounds what survives.
	b := entsql.Dialect(dialect.SQLite)
	t := b.Table(snapshotsTable)
	query, args := b.Select(t.C("sequence")).
		From(t).
		Where(entsql.EQ(t.C("name"), name)).
		OrderBy(entsql.Desc(t.C("sequence"))).
		Offset(keep).
		Limit(1).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	var threshold int64
	found := rows.Next()
	if found {
		if err := rows.Scan(&threshold); err != nil {
			rows.Close()
			return fmt.Errorf("scan prune threshold: %w", err)
		}
	}
	if err := rows.Close(); err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if !found {
		return nil // fewer than keep snapshots exist
	}

	query, args = entsql.Dialect(dialect.SQLite).
		Delete(snapshotsTable).
		Where(entsql.And(
			entsql.EQ("name", name),
			entsql.LTE("sequence", threshold),
		)).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("prune snapshots %s: %w", name, err)
	}
	return nil
}
