package regression

import (
	"fmt"
	"math"

	"github.com/Corona-68/tasaCrecimiento/stats"
	"github.com/Corona-68/tasaCrecimiento/timeseries"
)

// FitExponential fits y = A*e^(B*x) by linearizing to ln(y) = ln(A) + B*x
// and running ordinary least squares on (year, ln volume). Every volume must
// be strictly positive; a single zero or negative volume fails the whole fit
// rather than fitting a filtered subset.
func FitExponential(s timeseries.Series) Result {
	if s.Len() < 2 {
		return failed(ModelExponential, FailInsufficientData)
	}
	for _, obs := range s {
		if obs.Volume <= 0 {
			return failed(ModelExponential, FailNonPositiveVolume)
		}
	}

	logVolumes := make([]float64, s.Len())
	for i, obs := range s {
		logVolumes[i] = math.Log(obs.Volume)
	}

	b, logA, ok := stats.OLSLine(s.Years(), logVolumes)
	if !ok {
		return failed(ModelExponential, FailDegenerateMatrix)
	}
	a := math.Exp(logA)

	points := make([]Point, s.Len())
	predicted := make([]float64, s.Len())
	for i, obs := range s {
		p := a * math.Exp(b*float64(obs.Year))
		predicted[i] = p
		points[i] = Point{Year: obs.Year, Actual: obs.Volume, Predicted: p}
	}

	// The exponential model has constant relative growth by construction, so
	// the annualized rate is intrinsic rather than endpoint-based.
	return Result{
		Model:      ModelExponential,
		OK:         true,
		Formula:    fmt.Sprintf("y = %.4e * e^(%.5fx)", a, b),
		RSquared:   stats.RSquared(s.Volumes(), predicted),
		GrowthRate: (math.Exp(b) - 1) * 100,
		Points:     points,
		Slope:      b,
		Intercept:  a,
	}
}
