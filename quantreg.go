// Package quantreg fits robust lines through the origin to paired samples.
//
// Given predictor values xs and response values ys, quantreg estimates the
// slope m of y = m·x by quantile regression: m is the weighted quantile of the
// ratios yᵢ/xᵢ with weights |xᵢ|. At τ = 0.5 the fit behaves like a median and
// ignores a minority of wild outliers, which makes it suited to benchmark
// timings where the response is elapsed time and the predictor is an
// iteration count.
//
// # Core Features
//
//   - Quantile slope estimation at any level τ
//   - Coefficient of determination (R²) of a fitted slope
//   - float32 and float64 samples, with float64 arithmetic internally
//   - Concurrent fitting of many independent sample sets
//   - Compact binary encoding of sample sets with optional compression
//     (None, Zstd, S2, LZ4) and xxHash64 checksums
//
// # Basic Usage
//
//	iters := []float64{1, 2, 3, 4}
//	elapsed := []float64{2, 4, 6, 100}
//
//	slope, err := quantreg.Fit(iters, elapsed, 0.5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(slope) // 2, the last run's disturbance is ignored
//
//	r2, err := quantreg.RSquared(iters, elapsed, slope)
//
// # Package Structure
//
// This package provides convenient top-level wrappers over plain slices. For
// repeated use, options and batch fitting, use the sample and regression
// packages directly:
//
//   - sample: Paired sample sets and their binary encoding
//   - regression: Quantile fit, R², model summaries and batch fitting
//   - compress: Compression codecs used by the sample encoding
//   - errs: Sentinel errors for errors.Is checks
package quantreg

import (
	"github.com/arloliu/quantreg/regression"
	"github.com/arloliu/quantreg/sample"
)

// Fit fits y = m·x to the paired values at quantile level quantile and returns m.
//
// Parameters:
//   - xs: Predictor values; points with x = 0 are ignored
//   - ys: Response values, paired with xs by index
//   - quantile: Quantile level τ, conventionally in (0, 1)
//   - opts: Optional settings (see regression.FitOption)
//
// Returns:
//   - T: The fitted slope
//   - error: errs.ErrInvalidInput if the lengths differ, the input is empty,
//     or every predictor value is zero
//
// Example:
//
//	slope, err := quantreg.Fit(iters, elapsed, 0.5)
func Fit[T sample.Float](xs, ys []T, quantile float64, opts ...regression.FitOption) (T, error) {
	set, err := sample.NewSet(xs, ys)
	if err != nil {
		return 0, err
	}

	slope, err := regression.Fit(set, quantile, opts...)
	if err != nil {
		return 0, err
	}

	return slope.Value(), nil
}

// RSquared returns the coefficient of determination of y = slope·x against the
// paired values.
//
// Returns:
//   - T: The score; 1 is a perfect fit and negative values are possible
//   - error: errs.ErrUndefinedScore if all ys are equal, errs.ErrInvalidInput
//     if the lengths differ, the input is empty, or a value is NaN or infinite
func RSquared[T sample.Float](xs, ys []T, slope T) (T, error) {
	set, err := sample.NewSet(xs, ys)
	if err != nil {
		return 0, err
	}

	return regression.Slope[T]{M: slope}.RSquared(set)
}

// Analyze fits the paired values and summarizes the fit in a Model.
//
// Example:
//
//	model, err := quantreg.Analyze(iters, elapsed, 0.5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(model)
func Analyze[T sample.Float](xs, ys []T, quantile float64, opts ...regression.FitOption) (*regression.Model[T], error) {
	set, err := sample.NewSet(xs, ys)
	if err != nil {
		return nil, err
	}

	return regression.Analyze(set, quantile, opts...)
}

// Encode encodes the paired values with the sample binary format.
//
// See sample.Encode for the available options.
func Encode[T sample.Float](xs, ys []T, opts ...sample.EncodeOption) ([]byte, error) {
	set, err := sample.NewSet(xs, ys)
	if err != nil {
		return nil, err
	}

	return sample.Encode(set, opts...)
}

// Decode decodes bytes produced by Encode back into predictor and response values.
func Decode[T sample.Float](data []byte) (xs, ys []T, err error) {
	set, err := sample.Decode[T](data)
	if err != nil {
		return nil, nil, err
	}

	return set.Xs(), set.Ys(), nil
}
