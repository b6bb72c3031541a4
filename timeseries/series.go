package timeseries

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Observation is a single annual traffic-volume measurement.
type Observation struct {
	Year       int
	Volume     float64
	GrowthRate float64 // percent change versus the prior year; 0 for the first observation
}

// Series is an ordered sequence of annual observations, oldest first.
// A Series is rebuilt in full for every analysis run and is never mutated
// after construction.
type Series []Observation

// Parse builds a series from a free-form string of whitespace-separated
// volumes, newest first: the token at position i is assigned the year
// anchorYear-i. Tokens that do not parse as finite numbers are dropped.
// Empty or all-invalid input yields an empty series, not an error.
func Parse(anchorYear int, raw string) Series {
	var s Series
	for _, tok := range strings.Fields(raw) {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		s = append(s, Observation{
			Year:   anchorYear - len(s),
			Volume: v,
		})
	}

	sort.Slice(s, func(i, j int) bool { return s[i].Year < s[j].Year })
	s.computeGrowthRates()
	return s
}

// New builds a series from explicit (year, volume) pairs, sorts it oldest
// first, and computes growth rates. The shorter of the two slices bounds the
// series length.
func New(years []int, volumes []float64) Series {
	n := len(years)
	if len(volumes) < n {
		n = len(volumes)
	}

	s := make(Series, n)
	for i := 0; i < n; i++ {
		s[i] = Observation{Year: years[i], Volume: volumes[i]}
	}

	sort.Slice(s, func(i, j int) bool { return s[i].Year < s[j].Year })
	s.computeGrowthRates()
	return s
}

// computeGrowthRates fills in year-over-year growth percentages. The first
// observation always gets 0, as does any observation whose prior volume is 0.
func (s Series) computeGrowthRates() {
	for i := range s {
		if i == 0 || s[i-1].Volume == 0 {
			s[i].GrowthRate = 0
			continue
		}
		s[i].GrowthRate = (s[i].Volume - s[i-1].Volume) / s[i-1].Volume * 100
	}
}

// Len returns the number of observations in the series.
func (s Series) Len() int {
	return len(s)
}

// Years returns the observation years as float64 values, in series order.
func (s Series) Years() []float64 {
	xs := make([]float64, len(s))
	for i, obs := range s {
		xs[i] = float64(obs.Year)
	}
	return xs
}

// Volumes returns the observed volumes, in series order.
func (s Series) Volumes() []float64 {
	ys := make([]float64, len(s))
	for i, obs := range s {
		ys[i] = obs.Volume
	}
	return ys
}

// Copy creates a deep copy of the series.
func (s Series) Copy() Series {
	out := make(Series, len(s))
	copy(out, s)
	return out
}
