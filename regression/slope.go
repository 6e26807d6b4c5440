package regression

import (
	"fmt"
	"math"

	"github.com/arloliu/quantreg/errs"
	"github.com/arloliu/quantreg/internal/options"
	"github.com/arloliu/quantreg/internal/pool"
	"github.com/arloliu/quantreg/sample"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Slope is a fitted line through the origin, y = m·x.
type Slope[T sample.Float] struct {
	M T
}

// Value returns the slope m.
func (s Slope[T]) Value() T {
	return s.M
}

// Estimate returns the fitted response for predictor x.
func (s Slope[T]) Estimate(x T) T {
	return T(float64(s.M) * float64(x))
}

// narrow converts a float64 result to T, failing when the conversion alone
// turns a finite value into an infinity.
func narrow[T sample.Float](v float64, what string) (T, error) {
	out := T(v)
	if !math.IsInf(v, 0) && math.IsInf(float64(out), 0) {
		return 0, fmt.Errorf("%w: %s %v overflows the set's representation", errs.ErrInvalidInput, what, v)
	}

	return out, nil
}

// Fit fits y = m·x to data with quantile regression at level quantile.
//
// quantile is expected in (0, 1); 0.5 gives a median-like fit that ignores
// outliers. Values outside [0, 1] are clamped, so quantile ≤ 0 returns the
// smallest ratio yᵢ/xᵢ and quantile ≥ 1 the largest.
//
// The result minimizes the pinball loss Σ ρτ(yᵢ − m·xᵢ) only when every xᵢ is
// positive. Negative predictors still contribute weight |xᵢ| to their ratio,
// but the fit is then no longer the loss minimizer.
//
// Parameters:
//   - data: Paired samples; points with x = 0 are ignored
//   - quantile: Quantile level τ
//   - opts: Optional settings such as WithQuantileRule
//
// Returns:
//   - Slope[T]: Fitted slope converted to the set's representation
//   - error: errs.ErrInvalidInput for an empty set, NaN quantile, non-finite
//     ratios, a slope that overflows T, or when every predictor value is zero
//
// Example:
//
//	set, _ := sample.NewSet([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 100})
//	slope, err := regression.Fit(set, 0.5) // 2, unaffected by the outlier
func Fit[T sample.Float](data sample.Set[T], quantile float64, opts ...FitOption) (Slope[T], error) {
	cfg := defaultFitConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return Slope[T]{}, err
	}

	m, _, err := fitSlope(data, quantile, cfg.Rule)
	if err != nil {
		return Slope[T]{}, err
	}

	return newSlope[T](m)
}

func newSlope[T sample.Float](m float64) (Slope[T], error) {
	v, err := narrow[T](m, "slope")
	if err != nil {
		return Slope[T]{}, err
	}

	return Slope[T]{M: v}, nil
}

// fitSlope returns the slope in float64 along with the number of points with x ≠ 0.
func fitSlope[T sample.Float](data sample.Set[T], quantile float64, rule QuantileRule) (float64, int, error) {
	n := data.Len()
	if n == 0 {
		return 0, 0, fmt.Errorf("%w: empty sample set", errs.ErrInvalidInput)
	}
	if math.IsNaN(quantile) {
		return 0, 0, fmt.Errorf("%w: quantile is NaN", errs.ErrInvalidInput)
	}

	xs, ys, release := widen(data)
	defer release()

	ratios, releaseRatios := pool.GetFloat64Slice(n)
	defer releaseRatios()
	weights, releaseWeights := pool.GetFloat64Slice(n)
	defer releaseWeights()

	used := 0
	for i, x := range xs {
		if x == 0 {
			continue
		}
		r := ys[i] / x
		if math.IsNaN(r) || math.IsInf(r, 0) || math.IsInf(x, 0) {
			return 0, 0, fmt.Errorf("%w: non-finite ratio at point %d (x=%v, y=%v)", errs.ErrInvalidInput, i, x, ys[i])
		}
		ratios[used] = r
		weights[used] = math.Abs(x)
		used++
	}
	if used == 0 {
		return 0, 0, fmt.Errorf("%w: all %d predictor values are zero", errs.ErrInvalidInput, n)
	}
	ratios = ratios[:used]

	order, releaseOrder := pool.GetIntSlice(used)
	defer releaseOrder()
	floats.Argsort(ratios, order)

	sortedWeights, releaseSorted := pool.GetFloat64Slice(used)
	defer releaseSorted()
	for i, j := range order {
		sortedWeights[i] = weights[j]
	}

	return weightedQuantile(ratios, sortedWeights, clampQuantile(quantile), rule), used, nil
}

// weightedQuantile walks sorted values accumulating weight until it reaches p·W.
//
// Weights are scaled by the power of two just above their maximum, which keeps
// W finite for any finite input without changing any rounding. The total is
// accumulated in the same order as the walk, so the final cumulative weight
// equals W exactly and p ≤ 1 always terminates inside the loop.
func weightedQuantile(values, weights []float64, p float64, rule QuantileRule) float64 {
	_, exp := math.Frexp(floats.Max(weights))

	var total float64
	for _, w := range weights {
		total += math.Ldexp(w, -exp)
	}
	target := p * total

	var cumulative float64
	for i, w := range weights {
		cumulative += math.Ldexp(w, -exp)
		if cumulative < target {
			continue
		}
		if rule == QuantileRuleInterpolated && cumulative == target && i+1 < len(values) {
			return values[i] + (values[i+1]-values[i])/2
		}

		return values[i]
	}

	return values[len(values)-1]
}

func clampQuantile(q float64) float64 {
	return math.Min(math.Max(q, 0), 1)
}

// RSquared returns the coefficient of determination of s against data:
//
//	R² = 1 − Σ(y − m·x)² / Σ(y − ȳ)²
//
// The score is not clamped; a slope that explains the data worse than the mean
// of ys yields a negative value.
//
// Returns:
//   - T: Score converted to the set's representation
//   - error: errs.ErrUndefinedScore when all response values are identical,
//     errs.ErrInvalidInput for an empty set or a NaN or infinite value in the
//     set or the slope
func (s Slope[T]) RSquared(data sample.Set[T]) (T, error) {
	ssRes, ssTot, err := sumsOfSquares(float64(s.M), data)
	if err != nil {
		return 0, err
	}

	return narrow[T](1-ssRes/ssTot, "R²")
}

// sumsOfSquares returns the residual and total sums of squares of slope m.
func sumsOfSquares[T sample.Float](m float64, data sample.Set[T]) (ssRes, ssTot float64, err error) {
	if data.Len() == 0 {
		return 0, 0, fmt.Errorf("%w: empty sample set", errs.ErrInvalidInput)
	}

	if !isFinite(m) {
		return 0, 0, fmt.Errorf("%w: non-finite slope %v", errs.ErrInvalidInput, m)
	}

	xs, ys, release := widen(data)
	defer release()

	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			return 0, 0, fmt.Errorf("%w: non-finite value at point %d (x=%v, y=%v)", errs.ErrInvalidInput, i, xs[i], ys[i])
		}
	}

	// The mean of identical values need not round back to that value, so
	// constant responses are detected directly rather than through ssTot.
	if floats.Min(ys) == floats.Max(ys) {
		return 0, 0, fmt.Errorf("%w: all %d response values equal %v", errs.ErrUndefinedScore, len(ys), ys[0])
	}

	mean := stat.Mean(ys, nil)
	for i, y := range ys {
		residual := y - m*xs[i]
		deviation := y - mean
		ssRes += residual * residual
		ssTot += deviation * deviation
	}

	if ssTot == 0 {
		return 0, 0, fmt.Errorf("%w: zero total variance", errs.ErrUndefinedScore)
	}

	return ssRes, ssTot, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
