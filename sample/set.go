package sample

import (
	"fmt"
	"iter"
	"math"

	"github.com/arloliu/quantreg/encoding"
	"github.com/arloliu/quantreg/endian"
	"github.com/arloliu/quantreg/errs"
	"github.com/arloliu/quantreg/format"
	"github.com/arloliu/quantreg/internal/hash"
)

// Float is the set of numeric representations a Set may use.
type Float interface {
	~float32 | ~float64
}

// Set is an immutable pairing of predictor values xs and response values ys.
//
// xs[i] is paired with ys[i]. A Set borrows the slices given to NewSet; callers
// must not modify them while the Set is in use.
type Set[T Float] struct {
	xs []T
	ys []T
}

// NewSet creates a Set from paired sequences.
//
// Returns errs.ErrInvalidInput if the sequences are empty or differ in length.
func NewSet[T Float](xs, ys []T) (Set[T], error) {
	if len(xs) != len(ys) {
		return Set[T]{}, fmt.Errorf("%w: %d predictor values vs %d response values", errs.ErrInvalidInput, len(xs), len(ys))
	}
	if len(xs) == 0 {
		return Set[T]{}, fmt.Errorf("%w: empty sample set", errs.ErrInvalidInput)
	}

	return Set[T]{xs: xs, ys: ys}, nil
}

// Len returns the number of paired points.
func (s Set[T]) Len() int {
	return len(s.xs)
}

// X returns the i-th predictor value.
func (s Set[T]) X(i int) T {
	return s.xs[i]
}

// Y returns the i-th response value.
func (s Set[T]) Y(i int) T {
	return s.ys[i]
}

// Xs returns a copy of the predictor values.
func (s Set[T]) Xs() []T {
	return append([]T(nil), s.xs...)
}

// Ys returns a copy of the response values.
func (s Set[T]) Ys() []T {
	return append([]T(nil), s.ys...)
}

// All returns an iterator over the (x, y) pairs in order.
func (s Set[T]) All() iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		for i := range s.xs {
			if !yield(s.xs[i], s.ys[i]) {
				return
			}
		}
	}
}

// Width returns the representation used by the set's values.
func (s Set[T]) Width() format.WidthType {
	return widthOf[T]()
}

// Fingerprint returns the xxHash64 of the set's width and little-endian values.
//
// Two sets of the same representation with identical values share a fingerprint,
// which makes it suitable as a cache key for fit results.
func (s Set[T]) Fingerprint() uint64 {
	width := s.Width()
	d := hash.NewDigest()
	d.Write([]byte{byte(width)})

	le := endian.GetLittleEndianEngine()
	var scratch [8]byte
	write := func(v T) {
		if width == format.Width32 {
			le.PutUint32(scratch[:4], math.Float32bits(float32(v)))
			d.Write(scratch[:4])

			return
		}
		le.PutUint64(scratch[:], math.Float64bits(float64(v)))
		d.Write(scratch[:])
	}

	for _, x := range s.xs {
		write(x)
	}
	for _, y := range s.ys {
		write(y)
	}

	return d.Sum64()
}

func widthOf[T Float]() format.WidthType {
	if encoding.ValueSize[T]() == 4 {
		return format.Width32
	}

	return format.Width64
}
