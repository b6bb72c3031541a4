// Package sqlite implements analysis-run persistence over a local SQLite
// database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/Corona-68/tasaCrecimiento/internal/store"
	"github.com/Corona-68/tasaCrecimiento/regression"
	"github.com/Corona-68/tasaCrecimiento/timeseries"
)

type Store struct {
	db *sql.DB
}

// New opens (and if needed creates) the database at path and applies the
// schema.
func New(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite: path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) SaveRun(ctx context.Context, run store.Run) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, anchor_year) VALUES (?, ?, ?)`,
		run.ID, run.CreatedAt.UTC(), run.AnchorYear,
	)
	if err != nil {
		return err
	}

	obsStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO run_observations (run_id, year, volume, growth_rate)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer obsStmt.Close()

	for _, obs := range run.Series {
		if _, err = obsStmt.ExecContext(ctx, run.ID, obs.Year, obs.Volume, obs.GrowthRate); err != nil {
			return err
		}
	}

	fitStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO run_fits (
			run_id, model, ok, fail_reason, formula, r_squared, growth_rate, slope, intercept
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer fitStmt.Close()

	for _, res := range run.Results {
		_, err = fitStmt.ExecContext(ctx,
			run.ID, string(res.Model), res.OK, int(res.Reason),
			res.Formula, res.RSquared, res.GrowthRate, res.Slope, res.Intercept,
		)
		if err != nil {
			return err
		}
	}

	err = tx.Commit()
	return err
}

func (s *Store) GetRun(ctx context.Context, id string) (store.Run, error) {
	var run store.Run
	err := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, anchor_year FROM runs WHERE id = ?`, id,
	).Scan(&run.ID, &run.CreatedAt, &run.AnchorYear)
	if err == sql.ErrNoRows {
		return store.Run{}, fmt.Errorf("sqlite: run not found: %s", id)
	}
	if err != nil {
		return store.Run{}, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT year, volume, growth_rate FROM run_observations WHERE run_id = ? ORDER BY year`, id,
	)
	if err != nil {
		return store.Run{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var obs timeseries.Observation
		if err := rows.Scan(&obs.Year, &obs.Volume, &obs.GrowthRate); err != nil {
			return store.Run{}, err
		}
		run.Series = append(run.Series, obs)
	}
	if err := rows.Err(); err != nil {
		return store.Run{}, err
	}

	fitRows, err := s.db.QueryContext(ctx, `
		SELECT model, ok, fail_reason, formula, r_squared, growth_rate, slope, intercept
		FROM run_fits WHERE run_id = ? ORDER BY rowid
	`, id)
	if err != nil {
		return store.Run{}, err
	}
	defer fitRows.Close()

	for fitRows.Next() {
		var res regression.Result
		var model string
		var reason int
		if err := fitRows.Scan(&model, &res.OK, &reason, &res.Formula,
			&res.RSquared, &res.GrowthRate, &res.Slope, &res.Intercept); err != nil {
			return store.Run{}, err
		}
		res.Model = regression.Model(model)
		res.Reason = regression.FailReason(reason)
		run.Results = append(run.Results, res)
	}
	if err := fitRows.Err(); err != nil {
		return store.Run{}, err
	}

	return run, nil
}

func (s *Store) ListRuns(ctx context.Context, limit int) ([]store.RunSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.created_at, r.anchor_year, COUNT(o.year)
		FROM runs r
		LEFT JOIN run_observations o ON o.run_id = r.id
		GROUP BY r.id
		ORDER BY r.created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []store.RunSummary
	for rows.Next() {
		var sum store.RunSummary
		if err := rows.Scan(&sum.ID, &sum.CreatedAt, &sum.AnchorYear, &sum.Observations); err != nil {
			return nil, err
		}
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

func (s *Store) migrate() error {
	statements := []string{
		`PRAGMA foreign_keys = ON;`,
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			created_at TIMESTAMP NOT NULL,
			anchor_year INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS run_observations (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			year INTEGER NOT NULL,
			volume REAL NOT NULL,
			growth_rate REAL NOT NULL,
			PRIMARY KEY (run_id, year)
		);`,
		`CREATE TABLE IF NOT EXISTS run_fits (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			model TEXT NOT NULL,
			ok INTEGER NOT NULL,
			fail_reason INTEGER NOT NULL,
			formula TEXT NOT NULL,
			r_squared REAL NOT NULL,
			growth_rate REAL NOT NULL,
			slope REAL NOT NULL,
			intercept REAL NOT NULL,
			PRIMARY KEY (run_id, model)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("sqlite: migrate: %w", err)
		}
	}
	return nil
}
