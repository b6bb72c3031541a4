package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Corona-68/tasaCrecimiento/internal/store"
	"github.com/Corona-68/tasaCrecimiento/regression"
	"github.com/Corona-68/tasaCrecimiento/timeseries"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

func newTestRun(t *testing.T, raw string) store.Run {
	t.Helper()
	series := timeseries.Parse(2024, raw)
	return store.NewRun(2024, series, regression.FitAll(series))
}

func TestNewRequiresPath(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
}

func TestSaveAndGetRun(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	run := newTestRun(t, "5200 5100 4950 4800")
	require.NoError(t, s.SaveRun(ctx, run))

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)

	require.Equal(t, run.ID, got.ID)
	require.Equal(t, run.AnchorYear, got.AnchorYear)
	require.Equal(t, run.Series, got.Series)

	require.Len(t, got.Results, 3)
	for i, res := range got.Results {
		require.Equal(t, run.Results[i].Model, res.Model)
		require.Equal(t, run.Results[i].OK, res.OK)
		require.Equal(t, run.Results[i].Formula, res.Formula)
		require.InDelta(t, run.Results[i].RSquared, res.RSquared, 1e-12)
		require.InDelta(t, run.Results[i].Slope, res.Slope, 1e-12)
	}
}

func TestSaveRunWithFailedFit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Zero volume: exponential fit stores as failed with its reason.
	run := newTestRun(t, "100 0 50")
	require.NoError(t, s.SaveRun(ctx, run))

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)

	exp := got.Results[1]
	require.Equal(t, regression.ModelExponential, exp.Model)
	require.False(t, exp.OK)
	require.Equal(t, regression.FailNonPositiveVolume, exp.Reason)
	require.Equal(t, regression.EmptyFormula, exp.Formula)
}

func TestGetRunNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetRun(context.Background(), "missing")
	require.Error(t, err)
}

func TestListRuns(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := newTestRun(t, "300 200 100")
	second := newTestRun(t, "5200 5100 4950 4800")
	require.NoError(t, s.SaveRun(ctx, first))
	require.NoError(t, s.SaveRun(ctx, second))

	summaries, err := s.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	seen := map[string]int{}
	for _, sum := range summaries {
		seen[sum.ID] = sum.Observations
		require.Equal(t, 2024, sum.AnchorYear)
	}
	require.Equal(t, 3, seen[first.ID])
	require.Equal(t, 4, seen[second.ID])
}

func TestListRunsLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, s.SaveRun(ctx, newTestRun(t, "300 200 100")))
	}

	summaries, err := s.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
}
