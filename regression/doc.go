// Package regression fits a line through the origin, y = m·x, to a paired sample
// set using quantile regression, and scores the fit with the coefficient of
// determination (R²).
//
// It targets benchmark analysis, where xs are iteration counts and ys are
// elapsed times: the fitted slope is the typical time per iteration, and a
// quantile fit keeps it stable when a few measurements are inflated by noise.
//
// # Usage
//
//	set, err := sample.NewSet(iters, elapsed)
//	if err != nil {
//	    return err
//	}
//
//	slope, err := regression.Fit(set, 0.5)
//	if err != nil {
//	    return err
//	}
//
//	r2, err := slope.RSquared(set)
//	if errors.Is(err, errs.ErrUndefinedScore) {
//	    // every response value is identical
//	}
//
// Analyze does both in one call and also reports RMSE, and FitEach fits many
// independent sets concurrently.
//
// # Algorithm
//
// The slope is the τ-weighted quantile of the ratios rᵢ = yᵢ/xᵢ with weights
// |xᵢ|. When every xᵢ is positive this minimizes the pinball loss
//
//	Σ ρτ(yᵢ − m·xᵢ),  ρτ(u) = τ·u for u ≥ 0, (τ−1)·u otherwise
//
// over all slopes m. Fit discards points with xᵢ = 0, sorts the ratios, and walks the
// cumulative weight until it reaches τ·W, where W is the total weight.
// By default the ratio at the first position reaching τ·W is returned
// (QuantileRuleFirstReached). QuantileRuleInterpolated instead returns the
// midpoint of the two bracketing ratios when τ·W lands exactly on a
// cumulative-weight boundary.
//
// # Precision
//
// Sets may hold float32 or float64 values. Ratios, weights, sums of squares and
// means are always computed in float64, and results are converted back to the
// set's representation only when returned. A result that is finite in float64
// but does not fit in float32 is reported as an error rather than ±Inf.
//
// # Errors
//
//   - errs.ErrInvalidInput: empty set, NaN quantile, NaN or infinite values,
//     a result that overflows the set's representation, or every predictor
//     value is zero
//   - errs.ErrUndefinedScore: every response value is identical, so R² would
//     divide by zero
package regression
