package regression

// Model identifies a regression model family.
type Model string

const (
	ModelLinear      Model = "linear"      // y = m*x + b
	ModelExponential Model = "exponential" // y = A*e^(B*x)
	ModelLogarithmic Model = "logarithmic" // y = a + b*ln(x)
)

// FailReason explains why a fit could not be produced.
type FailReason int

const (
	// FailNone means the fit succeeded.
	FailNone FailReason = iota
	// FailInsufficientData means fewer than two observations were given.
	FailInsufficientData
	// FailNonPositiveVolume means the exponential model saw a volume <= 0.
	FailNonPositiveVolume
	// FailDegenerateMatrix means the least-squares denominator was zero.
	FailDegenerateMatrix
)

// String returns a short description of the failure reason.
func (r FailReason) String() string {
	switch r {
	case FailNone:
		return "none"
	case FailInsufficientData:
		return "insufficient data"
	case FailNonPositiveVolume:
		return "non-positive volume"
	case FailDegenerateMatrix:
		return "degenerate matrix"
	default:
		return "unknown"
	}
}

// EmptyFormula is the formula string carried by a failed fit.
const EmptyFormula = "N/A"

// Point is one fitted point: the observed volume and the model's prediction
// for a single year.
type Point struct {
	Year      int
	Actual    float64
	Predicted float64
}

// Result holds one fitted model. OK distinguishes a genuine fit from the
// failed placeholder; a failed Result keeps the placeholder shape (zero
// numerics, empty Points, Formula "N/A") so downstream consumers that
// inspect fields instead of OK keep working.
type Result struct {
	Model      Model
	OK         bool
	Reason     FailReason
	Formula    string
	RSquared   float64
	GrowthRate float64 // annualized growth percentage
	Points     []Point
	Slope      float64
	Intercept  float64
}

// failed returns the placeholder Result for a fit that could not be produced.
func failed(model Model, reason FailReason) Result {
	return Result{
		Model:   model,
		Reason:  reason,
		Formula: EmptyFormula,
	}
}
