package regression

import (
	"fmt"
	"math"

	"github.com/arloliu/quantreg/internal/options"
	"github.com/arloliu/quantreg/sample"
)

// Model summarizes a quantile fit and its goodness of fit.
//
// Fields:
//   - Slope: The fitted slope m
//   - Quantile: The quantile level the slope was fitted at
//   - Rule: The weighted-quantile rule used
//   - RSquared: Coefficient of determination of the slope against the data
//   - RMSE: Root mean square error of the residuals y − m·x
//   - Points: Number of points in the set
//   - Used: Number of points with x ≠ 0 that contributed to the slope
//   - Formula: Human-readable formula
type Model[T sample.Float] struct {
	Slope    Slope[T]
	Quantile float64
	Rule     QuantileRule
	RSquared T
	RMSE     T
	Points   int
	Used     int
	Formula  string
}

// String returns a string representation of the model.
func (m *Model[T]) String() string {
	return fmt.Sprintf("Model{Quantile: %.2f, R²: %.4f, RMSE: %.4f, Formula: %s}",
		m.Quantile, float64(m.RSquared), float64(m.RMSE), m.Formula)
}

// Analyze fits data at the given quantile and scores the fit.
//
// It is equivalent to Fit followed by Slope.RSquared, plus RMSE and point
// counts, computed from a single set of options.
//
// Returns:
//   - *Model[T]: The fitted model
//   - error: errs.ErrInvalidInput from fitting or for a result that overflows T,
//     or errs.ErrUndefinedScore when the response values are constant
//
// Example:
//
//	model, err := regression.Analyze(set, 0.5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(model) // Model{Quantile: 0.50, R²: ..., Formula: y = 2.0000 * x}
func Analyze[T sample.Float](data sample.Set[T], quantile float64, opts ...FitOption) (*Model[T], error) {
	cfg := defaultFitConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	m, used, err := fitSlope(data, quantile, cfg.Rule)
	if err != nil {
		return nil, err
	}

	slope, err := newSlope[T](m)
	if err != nil {
		return nil, err
	}

	ssRes, ssTot, err := sumsOfSquares(m, data)
	if err != nil {
		return nil, err
	}

	rSquared, err := narrow[T](1-ssRes/ssTot, "R²")
	if err != nil {
		return nil, err
	}
	rmse, err := narrow[T](math.Sqrt(ssRes/float64(data.Len())), "RMSE")
	if err != nil {
		return nil, err
	}

	return &Model[T]{
		Slope:    slope,
		Quantile: quantile,
		Rule:     cfg.Rule,
		RSquared: rSquared,
		RMSE:     rmse,
		Points:   data.Len(),
		Used:     used,
		Formula:  fmt.Sprintf("y = %.4f * x", m),
	}, nil
}
