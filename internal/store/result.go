package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// TestResult is one graded test.
type TestResult struct {
	ID          string
	CharacterID string
	Score       int
	Total       int
	Percent     int
	Perfect     bool

	// HP, Progress and Level are the game state after end-of-test effects.
	HP       int
	Progress float64
	Level    int

	FinishedAt time.Time
}

// ResultRepo stores graded-test history.
type ResultRepo struct {
	drv *entsql.Driver
}

// Append stores res, assigning an id and finish time when unset.
func (r *ResultRepo) Append(ctx context.Context, res TestResult) (TestResult, error) {
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	if res.FinishedAt.IsZero() {
		res.FinishedAt = time.Now()
	}

	query, args := builder().Insert(testResultTable).
		Columns("id", "character_id", "score", "total", "percent", "perfect",
			"hp", "progress", "level", "finished_at").
		Values(res.ID, res.CharacterID, res.Score, res.Total, res.Percent, res.Perfect,
			res.HP, res.Progress, res.Level, res.FinishedAt.UnixMilli()).
		Query()
	if _, err := r.drv.ExecContext(ctx, query, args...); err != nil {
		return TestResult{}, fmt.Errorf("save test result: %w", err)
	}
	return res, nil
}

// Recent returns up to limit results, newest first. limit <= 0 returns all.
func (r *ResultRepo) Recent(ctx context.Context, limit int) ([]TestResult, error) {
	sel := builder().Select("id", "character_id", "score", "total", "percent", "perfect",
		"hp", "progress", "level", "finished_at").
		From(builder().Table(testResultTable)).
		OrderBy(entsql.Desc("finished_at"), entsql.Desc("rowid"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := r.drv.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query test results: %w", err)
	}
	defer rows.Close()

	var out []TestResult
	for rows.Next() {
		var (
			res      TestResult
			finished int64
		)
		if err := rows.Scan(&res.ID, &res.CharacterID, &res.Score, &res.Total, &res.Percent,
			&res.Perfect, &res.HP, &res.Progress, &res.Level, &finished); err != nil {
			return nil, fmt.Errorf("scan test result: %w", err)
		}
		res.FinishedAt = time.UnixMilli(finished)
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate test results: %w", err)
	}
	return out, nil
}

// Count returns the number of stored results.
func (r *ResultRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.drv, testResultTable)
}
