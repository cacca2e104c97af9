package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const (
	kvTable      = "kv_entries"
	kvColKey     = "entry_key"
	kvColValue   = "entry_value"
	kvColUpdated = "updated_at"
)

// KV is a string key-value table stored in SQLite.
type KV struct {
	drv *entsql.Driver
}

// Get returns the value stored under key. The bool is false when the key
// is absent.
func (kv *KV) Get(ctx context.Context, key string) (string, bool, error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select(kvColValue).
		From(b.Table(kvTable)).
		Where(entsql.EQ(kvColKey, key)).
		Limit(1).
		Query()

	var rows entsql.Rows
	if err := kv.drv.Query(ctx, query, args, &rows); err != nil {
		return "", false, fmt.Errorf("query %q: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return "", false, fmt.Errorf("read %q: %w", key, err)
		}
		return "", false, nil
	}
	var value string
	if err := rows.Scan(&value); err != nil {
		return "", false, fmt.Errorf("scan %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (kv *KV) Set(ctx context.Context, key, value string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(kvTable).
		Columns(kvColKey, kvColValue, kvColUpdated).
		Values(key, value, time.Now().UnixMilli()).
		OnConflict(
			entsql.ConflictColumns(kvColKey),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if err := kv.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("upsert %q: %w", key, err)
	}
	return nil
}

// Delete removes the given keys. Missing keys are ignored.
func (kv *KV) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	vals := make([]any, len(keys))
	for i, k := range keys {
		vals[i] = k
	}
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(kvTable).
		Where(entsql.In(kvColKey, vals...)).
		Query()
	if err := kv.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete keys: %w", err)
	}
	return nil
}
