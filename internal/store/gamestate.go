package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// GameStateRepo keeps the most recent game-state snapshots. It implements
// game.Persister; the blob is opaque here.
type GameStateRepo struct {
	drv  *entsql.Driver
	keep int
}

// Save appends a snapshot and prunes old ones.
func (r *GameStateRepo) Save(ctx context.Context, data []byte) error {
	query, args := builder().Insert(gameStateTable).
		Columns("saved_at", "data").
		Values(time.Now().UnixMilli(), data).
		Query()
	if _, err := r.drv.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save game state: %w", err)
	}
	if r.keep > 0 {
		return r.Prune(ctx, r.keep)
	}
	return nil
}

// Load returns the newest snapshot, or nil if none exist.
func (r *GameStateRepo) Load(ctx context.Context) ([]byte, error) {
	query, args := builder().Select("data").
		From(builder().Table(gameStateTable)).
		OrderBy(entsql.Desc("id")).
		Limit(1).
		Query()

	var data []byte
	err := r.drv.DB().QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load game state: %w", err)
	}
	return data, nil
}

// Prune deletes all but the keep most recent snapshots.
func (r *GameStateRepo) Prune(ctx context.Context, keep int) error {
	query, args := builder().Select("id").
		From(builder().Table(gameStateTable)).
		OrderBy(entsql.Desc("id")).
		Limit(1).
		Offset(keep).
		Query()

	var threshold int64
	err := r.drv.DB().QueryRowContext(ctx, query, args...).Scan(&threshold)
	if errors.Is(err, sql.ErrNoRows) {
		return nil // fewer than keep snapshots exist
	}
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}

	query, args = builder().Delete(gameStateTable).
		Where(entsql.LTE("id", threshold)).
		Query()
	if _, err := r.drv.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("prune game states: %w", err)
	}
	return nil
}

// Count returns the number of stored snapshots.
func (r *GameStateRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.drv, gameStateTable)
}

func count(ctx context.Context, drv *entsql.Driver, table string) (int, error) {
	query, args := builder().Select().Count().From(builder().Table(table)).Query()
	var n int
	if err := drv.DB().QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
