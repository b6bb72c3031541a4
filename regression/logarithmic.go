package regression

import (
	"fmt"
	"math"

	"github.com/Corona-68/tasaCrecimiento/stats"
	"github.com/Corona-68/tasaCrecimiento/timeseries"
)

// FitLogarithmic fits y = a + b*ln(x) where x is the calendar year, by
// ordinary least squares on (ln year, volume). Calendar years are positive,
// so no positivity guard is needed on x (contrast with FitExponential's
// guard on the volumes).
func FitLogarithmic(s timeseries.Series) Result {
	if s.Len() < 2 {
		return failed(ModelLogarithmic, FailInsufficientData)
	}

	logYears := make([]float64, s.Len())
	for i, obs := range s {
		logYears[i] = math.Log(float64(obs.Year))
	}

	b, a, ok := stats.OLSLine(logYears, s.Volumes())
	if !ok {
		return failed(ModelLogarithmic, FailDegenerateMatrix)
	}

	points := make([]Point, s.Len())
	predicted := make([]float64, s.Len())
	for i, obs := range s {
		p := a + b*math.Log(float64(obs.Year))
		predicted[i] = p
		points[i] = Point{Year: obs.Year, Actual: obs.Volume, Predicted: p}
	}

	return Result{
		Model:      ModelLogarithmic,
		OK:         true,
		Formula:    fmt.Sprintf("y = %.2f %+.2f*ln(x)", a, b),
		RSquared:   stats.RSquared(s.Volumes(), predicted),
		GrowthRate: endpointGrowth(predicted[0], predicted[len(predicted)-1], s[s.Len()-1].Year-s[0].Year),
		Points:     points,
		Slope:      b,
		Intercept:  a,
	}
}
