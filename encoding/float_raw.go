package encoding

import (
	"iter"
	"math"
	"unsafe"

	"github.com/arloliu/quantreg/endian"
	"github.com/arloliu/quantreg/internal/pool"
)

// ValueSize returns the encoded size in bytes of a single value of type T.
func ValueSize[T Float]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// FloatRawEncoder encodes float values in their IEEE 754 representation.
//
// float32 columns occupy 4 bytes per value and float64 columns 8 bytes, written
// in the byte order of the engine.
type FloatRawEncoder[T Float] struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	size   int
	count  int
}

var (
	_ ColumnarEncoder[float64] = (*FloatRawEncoder[float64])(nil)
	_ ColumnarEncoder[float32] = (*FloatRawEncoder[float32])(nil)
)

// NewFloatRawEncoder creates a raw encoder that writes values with engine.
func NewFloatRawEncoder[T Float](engine endian.EndianEngine) *FloatRawEncoder[T] {
	return &FloatRawEncoder[T]{
		buf:    pool.GetSampleBuffer(),
		engine: engine,
		size:   ValueSize[T](),
	}
}

// Write encodes a single value.
//
// Panics if Finish has been called.
func (e *FloatRawEncoder[T]) Write(v T) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.buf.Grow(e.size)
	e.buf.B = e.appendValue(e.buf.B, v)
	e.count++
}

// WriteSlice encodes values with a single buffer growth.
//
// Panics if Finish has been called.
func (e *FloatRawEncoder[T]) WriteSlice(values []T) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}
	if len(values) == 0 {
		return
	}

	e.buf.Grow(len(values) * e.size)
	b := e.buf.B
	for _, v := range values {
		b = e.appendValue(b, v)
	}
	e.buf.B = b
	e.count += len(values)
}

// Bytes returns the encoded values.
//
// Panics if Finish has been called.
func (e *FloatRawEncoder[T]) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of encoded values.
func (e *FloatRawEncoder[T]) Len() int {
	return e.count
}

// Size returns the number of encoded bytes.
//
// Panics if Finish has been called.
func (e *FloatRawEncoder[T]) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Finish returns the buffer to the pool. It is safe to call more than once.
func (e *FloatRawEncoder[T]) Finish() {
	if e.buf != nil {
		pool.PutSampleBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

func (e *FloatRawEncoder[T]) appendValue(b []byte, v T) []byte {
	if e.size == 4 {
		return e.engine.AppendUint32(b, math.Float32bits(float32(v)))
	}

	return e.engine.AppendUint64(b, math.Float64bits(float64(v)))
}

// FloatRawDecoder decodes columns produced by FloatRawEncoder.
//
// The decoder is stateless and may be shared between goroutines.
type FloatRawDecoder[T Float] struct {
	engine endian.EndianEngine
	size   int
}

var (
	_ ColumnarDecoder[float64] = FloatRawDecoder[float64]{}
	_ ColumnarDecoder[float32] = FloatRawDecoder[float32]{}
)

// NewFloatRawDecoder creates a decoder reading values with engine, which must
// match the engine used to encode them.
func NewFloatRawDecoder[T Float](engine endian.EndianEngine) FloatRawDecoder[T] {
	return FloatRawDecoder[T]{engine: engine, size: ValueSize[T]()}
}

// All returns an iterator over the first count values of data.
func (d FloatRawDecoder[T]) All(data []byte, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if count <= 0 || len(data) < count*d.size {
			return
		}

		for i := range count {
			if !yield(d.valueAt(data, i)) {
				return
			}
		}
	}
}

// At returns the value at index.
func (d FloatRawDecoder[T]) At(data []byte, index int, count int) (T, bool) {
	if index < 0 || index >= count {
		return 0, false
	}
	if (index+1)*d.size > len(data) {
		return 0, false
	}

	return d.valueAt(data, index), true
}

func (d FloatRawDecoder[T]) valueAt(data []byte, index int) T {
	start := index * d.size
	if d.size == 4 {
		return T(math.Float32frombits(d.engine.Uint32(data[start : start+4])))
	}

	return T(math.Float64frombits(d.engine.Uint64(data[start : start+8])))
}
