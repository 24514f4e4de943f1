package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const outboxTable = "outbox"

// outboxRepo implements OutboxRepo with the ent SQL builder.
type outboxRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
	now func() time.Time
}

func (r *outboxRepo) Append(ctx context.Context, e OutboxEntry) (OutboxEntry, error) {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return OutboxEntry{}, err
	}
	e.Sequence = seq
	e.CreatedAt = r.now().UTC()

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(outboxTable).
		Columns("sequence", "set_name", "item_id", "xp_delta", "is_completing", "created_at").
		Values(e.Sequence, e.Set, e.ItemID, e.XPDelta, e.IsCompleting, formatTime(e.CreatedAt)).
		Query()

	var res entsql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return OutboxEntry{}, fmt.Errorf("append outbox entry: %w", err)
	}
	if e.ID, err = res.LastInsertId(); err != nil {
		return OutboxEntry{}, fmt.Errorf("append outbox entry: %w", err)
	}
	return e, nil
}

func (r *outboxRepo) Pending(ctx context.Context, limit int) ([]OutboxEntry, error) {
	b := entsql.Dialect(dialect.SQLite)
	t := b.Table(outboxTable)
	sel := b.Select(t.C("id"), t.C("sequence"), t.C("set_name"), t.C("item_id"),
		t.C("xp_delta"), t.C("is_completing"), t.C("created_at")).
		From(t).
		OrderBy(t.C("sequence"))
	if limit > 0 {
		sel.Limit(limit)
	}
	query, args := sel.Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query outbox: %w", err)
	}
	defer rows.Close()

	var out []OutboxEntry
	for rows.Next() {
		var (
			e  OutboxEntry
			ts string
		)
		if err := rows.Scan(&e.ID, &e.Sequence, &e.Set, &e.ItemID, &e.XPDelta, &e.IsCompleting, &ts); err != nil {
			return nil, fmt.Errorf("scan outbox entry: %w", err)
		}
		created, err := parseTime(ts)
		if err != nil {
			return nil, err
		}
		e.CreatedAt = created
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query outbox: %w", err)
	}
	return out, nil
}

func (r *outboxRepo) Remove(ctx context.Context, id int64) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(outboxTable).
		Where(entsql.EQ("id", id)).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("remove outbox entry %d: %w", id, err)
	}
	return nil
}

func (r *outboxRepo) Count(ctx context.Context) (int, error) {
	b := entsql.Dialect(dialect.SQLite)
	t := b.Table(outboxTable)
	query, args := b.Select(entsql.Count("*")).From(t).Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return 0, fmt.Errorf("count outbox: %w", err)
	}
	defer rows.Close()

	var n int
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return 0, fmt.Errorf("scan outbox count: %w", err)
		}
	}
	return n, rows.Err()
}
