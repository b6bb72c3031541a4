package timeseries

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOrdering(t *testing.T) {
	s := Parse(2024, "5200 5100 4950 4800 4650 4500")

	require.Equal(t, 6, s.Len())
	for i, obs := range s {
		require.Equal(t, 2019+i, obs.Year, "series must be sorted oldest first with consecutive years")
	}
	require.Equal(t, []float64{4500, 4650, 4800, 4950, 5100, 5200}, s.Volumes())
}

func TestParseGrowthRates(t *testing.T) {
	s := Parse(2024, "5200 5100 4950 4800 4650 4500")

	expected := []float64{0, 3.3333, 3.2258, 3.125, 3.0303, 1.9608}
	require.Equal(t, len(expected), s.Len())
	for i, want := range expected {
		require.InDelta(t, want, s[i].GrowthRate, 0.001, "growth rate at index %d", i)
	}
}

func TestParseZeroPriorVolume(t *testing.T) {
	s := Parse(2024, "100 0 50")

	require.Equal(t, 3, s.Len())
	require.Equal(t, Observation{Year: 2022, Volume: 50, GrowthRate: 0}, s[0])
	require.Equal(t, 2023, s[1].Year)
	require.InDelta(t, -100, s[1].GrowthRate, 1e-10)
	// Prior volume is 0, so the rate is fixed at 0 rather than infinite.
	require.Equal(t, Observation{Year: 2024, Volume: 100, GrowthRate: 0}, s[2])
}

func TestParseInvalidTokens(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		volumes []float64
		years   []int
	}{
		{"mixed garbage", "100 abc 50", []float64{50, 100}, []int{2023, 2024}},
		{"nan token", "100 NaN 50", []float64{50, 100}, []int{2023, 2024}},
		{"infinity token", "100 +Inf 50", []float64{50, 100}, []int{2023, 2024}},
		{"tabs and newlines", "10\t20\n30", []float64{30, 20, 10}, []int{2022, 2023, 2024}},
		{"decimal and negative", "1.5 -2.25", []float64{-2.25, 1.5}, []int{2023, 2024}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Parse(2024, tt.raw)
			require.Equal(t, tt.volumes, s.Volumes())
			for i, year := range tt.years {
				require.Equal(t, year, s[i].Year)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty string", ""},
		{"whitespace only", "  \t\n  "},
		{"all invalid", "abc def xyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Parse(2024, tt.raw)
			require.Equal(t, 0, s.Len())
		})
	}
}

func TestNew(t *testing.T) {
	s := New([]int{2023, 2021, 2022}, []float64{120, 100, 110})

	require.Equal(t, 3, s.Len())
	require.Equal(t, []float64{100, 110, 120}, s.Volumes())
	require.InDelta(t, 0, s[0].GrowthRate, 1e-10)
	require.InDelta(t, 10, s[1].GrowthRate, 1e-10)
	require.InDelta(t, 9.0909, s[2].GrowthRate, 0.001)
}

func TestNewMismatchedLengths(t *testing.T) {
	s := New([]int{2022, 2023, 2024}, []float64{10, 20})
	require.Equal(t, 2, s.Len())
}

func TestCopy(t *testing.T) {
	s := Parse(2024, "200 100")
	c := s.Copy()

	c[0].Volume = -1
	require.Equal(t, 100.0, s[0].Volume, "mutating the copy must not affect the original")
}

func TestYearsAndVolumes(t *testing.T) {
	s := Parse(2024, "300 200 100")
	require.Equal(t, []float64{2022, 2023, 2024}, s.Years())
	require.Equal(t, []float64{100, 200, 300}, s.Volumes())

	var empty Series
	require.Empty(t, empty.Years())
	require.Empty(t, empty.Volumes())
}
