package regression

import (
	"fmt"

	"github.com/Corona-68/tasaCrecimiento/stats"
	"github.com/Corona-68/tasaCrecimiento/timeseries"
)

// FitLinear fits y = m*x + b by ordinary least squares over the
// (year, volume) pairs. It requires at least two observations; fewer, or a
// degenerate design (all years identical), yields a failed Result.
func FitLinear(s timeseries.Series) Result {
	if s.Len() < 2 {
		return failed(ModelLinear, FailInsufficientData)
	}

	slope, intercept, ok := stats.OLSLine(s.Years(), s.Volumes())
	if !ok {
		return failed(ModelLinear, FailDegenerateMatrix)
	}

	points := make([]Point, s.Len())
	predicted := make([]float64, s.Len())
	for i, obs := range s {
		p := slope*float64(obs.Year) + intercept
		predicted[i] = p
		points[i] = Point{Year: obs.Year, Actual: obs.Volume, Predicted: p}
	}

	return Result{
		Model:      ModelLinear,
		OK:         true,
		Formula:    fmt.Sprintf("y = %.2fx %+.2f", slope, intercept),
		RSquared:   stats.RSquared(s.Volumes(), predicted),
		GrowthRate: endpointGrowth(predicted[0], predicted[len(predicted)-1], s[s.Len()-1].Year-s[0].Year),
		Points:     points,
		Slope:      slope,
		Intercept:  intercept,
	}
}
