package regression

import (
	"math"

	"github.com/Corona-68/tasaCrecimiento/timeseries"
)

// Models lists the model families in the order FitAll evaluates them.
var Models = []Model{ModelLinear, ModelExponential, ModelLogarithmic}

// FitAll runs the three fitters over the same series and returns their
// results in Models order. The fitters are independent: a failure in one
// (say, a zero volume breaking the exponential fit) never affects the
// other two, and the input series is never mutated.
func FitAll(s timeseries.Series) []Result {
	return []Result{
		FitLinear(s),
		FitExponential(s),
		FitLogarithmic(s),
	}
}

// endpointGrowth derives an annualized growth percentage from a fitted
// trend's endpoint values: ((yEnd/yStart)^(1/deltaYears) - 1) * 100.
// The geometric form keeps the rate comparable with the exponential model's
// intrinsic rate. Returns 0 when deltaYears is not positive or either
// endpoint is not strictly positive.
func endpointGrowth(yStart, yEnd float64, deltaYears int) float64 {
	if deltaYears <= 0 || yStart <= 0 || yEnd <= 0 {
		return 0
	}
	return (math.Pow(yEnd/yStart, 1/float64(deltaYears)) - 1) * 100
}
