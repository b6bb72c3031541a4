// Package regression fits the three trend models over an annual observation
// series and reports fit quality and annualized growth per model.
//
// # Fitting
//
// Fit a single model:
//
//	series := timeseries.Parse(2024, "5200 5100 4950 4800 4650 4500")
//	linear := regression.FitLinear(series)
//	fmt.Printf("%s  R²=%.4f  growth=%.2f%%\n", linear.Formula, linear.RSquared, linear.GrowthRate)
//
// Or all three at once:
//
//	for _, res := range regression.FitAll(series) {
//	    ...
//	}
//
// # Failed fits
//
// The fitters never return errors or panic. Degenerate input (fewer than two
// observations, a non-positive volume for the exponential model, or an
// all-identical design column) produces a Result with OK=false, a Reason tag,
// zero numerics, and Formula "N/A". Each fitter guards independently, so one
// model failing never affects the others.
//
// # Models
//
//   - linear:       y = m*x + b, endpoint-based annualized growth
//   - exponential:  y = A*e^(B*x), intrinsic growth (e^B - 1) * 100
//   - logarithmic:  y = a + b*ln(x), endpoint-based annualized growth
//
// All three share one least-squares closed form and one R² routine (package
// stats), invoked with the model's own (x, y) transform.
package regression
