package encoding

import "iter"

// Float is the set of value types a column can hold.
type Float interface {
	~float32 | ~float64
}

// ColumnarEncoder appends values to an internal column buffer.
type ColumnarEncoder[T Float] interface {
	// Bytes returns the encoded byte slice.
	// The returned slice is valid until the next call to Write, WriteSlice, or Finish.
	// The caller should not modify the returned slice.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the size in bytes of the encoded values.
	Size() int

	// Finish returns buffer resources to the pool.
	//
	// After calling Finish, the encoder is no longer usable. Use defer to ensure
	// it's called even in error paths:
	//
	//	enc := NewFloatRawEncoder[float64](engine)
	//	defer enc.Finish()
	Finish()

	// Write appends a single value.
	Write(v T)

	// WriteSlice appends a slice of values.
	WriteSlice(values []T)
}

// ColumnarDecoder reads values back from a column produced by a ColumnarEncoder.
type ColumnarDecoder[T Float] interface {
	// All returns an iterator over the first count values of data.
	//
	// If data holds fewer than count values the iterator yields nothing.
	All(data []byte, count int) iter.Seq[T]

	// At returns the value at index, or false when index is outside [0, count)
	// or beyond the end of data.
	At(data []byte, index int, count int) (T, bool)
}
