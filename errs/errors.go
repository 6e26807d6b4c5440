// Package errs defines the sentinel errors returned by quantreg packages.
//
// Call sites wrap these with additional detail using fmt.Errorf and the %w verb,
// so callers should match them with errors.Is:
//
//	slope, err := regression.Fit(set, 0.5)
//	if errors.Is(err, errs.ErrInvalidInput) {
//	    // degenerate data
//	}
package errs

import "errors"

// Fitting and scoring errors.
var (
	// ErrInvalidInput indicates mismatched sequence lengths, an empty sample set,
	// or a dataset whose predictor values are all zero, making the slope undefined.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUndefinedScore indicates zero total variance in the response values,
	// which leaves the coefficient of determination undefined.
	ErrUndefinedScore = errors.New("undefined score")
)

// Sample codec errors.
var (
	ErrInvalidHeader      = errors.New("invalid sample header")
	ErrWidthMismatch      = errors.New("sample width mismatch")
	ErrChecksumMismatch   = errors.New("sample checksum mismatch")
	ErrInvalidCompression = errors.New("invalid compression type")
	ErrPayloadSize        = errors.New("invalid sample payload size")
	ErrInvalidByteOrder   = errors.New("invalid byte order")
)
