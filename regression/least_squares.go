package regression

import (
	"fmt"

	"github.com/arloliu/quantreg/errs"
	"github.com/arloliu/quantreg/sample"
	"gonum.org/v1/gonum/floats"
)

// FitLeastSquares fits y = m·x by ordinary least squares: m = Σxy / Σx².
//
// It is a baseline for comparison with Fit. A single large outlier can pull
// this slope arbitrarily far, which the quantile fit resists.
//
// Returns errs.ErrInvalidInput for an empty set, a slope that overflows T, or
// when every predictor value is zero.
func FitLeastSquares[T sample.Float](data sample.Set[T]) (Slope[T], error) {
	if data.Len() == 0 {
		return Slope[T]{}, fmt.Errorf("%w: empty sample set", errs.ErrInvalidInput)
	}

	xs, ys, release := widen(data)
	defer release()

	sxx := floats.Dot(xs, xs)
	if sxx == 0 {
		return Slope[T]{}, fmt.Errorf("%w: all %d predictor values are zero", errs.ErrInvalidInput, data.Len())
	}

	return newSlope[T](floats.Dot(xs, ys) / sxx)
}
