// Package store defines persistence of completed analysis runs. The
// statistical engine itself is stateless; a Store is an optional downstream
// consumer owned by the application layer.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Corona-68/tasaCrecimiento/regression"
	"github.com/Corona-68/tasaCrecimiento/timeseries"
)

// Run is one completed analysis: the observation series plus the three
// regression results. Fitted point sequences are not persisted; they are
// recomputable from the stored model parameters.
type Run struct {
	ID         string
	CreatedAt  time.Time
	AnchorYear int
	Series     timeseries.Series
	Results    []regression.Result
}

// RunSummary is a lightweight listing entry for a stored run.
type RunSummary struct {
	ID           string
	CreatedAt    time.Time
	AnchorYear   int
	Observations int
}

// NewRun assembles a Run with a fresh ID and timestamp.
func NewRun(anchorYear int, series timeseries.Series, results []regression.Result) Run {
	return Run{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		AnchorYear: anchorYear,
		Series:     series,
		Results:    results,
	}
}

// Store persists and retrieves analysis runs.
type Store interface {
	SaveRun(ctx context.Context, run Run) error
	GetRun(ctx context.Context, id string) (Run, error)
	ListRuns(ctx context.Context, limit int) ([]RunSummary, error)
	Close() error
}

// NopStore discards every run. Used when persistence is disabled.
type NopStore struct{}

func (s *NopStore) SaveRun(ctx context.Context, run Run) error {
	_ = ctx
	_ = run
	return nil
}

func (s *NopStore) GetRun(ctx context.Context, id string) (Run, error) {
	_ = ctx
	_ = id
	return Run{}, nil
}

func (s *NopStore) ListRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	_ = ctx
	_ = limit
	return nil, nil
}

func (s *NopStore) Close() error {
	return nil
}
