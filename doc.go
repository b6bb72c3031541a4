// Package tasacrecimiento models the growth trend of annual traffic-volume
// measurements.
//
// The engine turns a short series of yearly observations into three
// closed-form trend models (linear, exponential, logarithmic), each with a
// display formula, R² fit quality, an annualized growth percentage, and the
// fitted points for plotting.
//
// # Quick start
//
// Parse the raw input (newest year first) and fit all three models:
//
//	series := timeseries.Parse(2024, "5200 5100 4950 4800 4650 4500")
//	results := regression.FitAll(series)
//
// # Packages
//
//   - timeseries: observation series construction, growth rates, CSV loading
//   - stats: shared least-squares closed form and R²
//   - regression: the three model fitters
//   - internal/config, internal/logger, internal/store: application wiring
//     used by cmd/tasacrecimiento
//
// The statistical packages are pure and synchronous: no I/O, no shared state,
// deterministic for identical inputs. Presentation, report export, and
// AI-generated summaries are external consumers of the result values and are
// not part of this module.
package tasacrecimiento
