// Package encoding provides columnar encoders and decoders for sample values.
//
// A column is a contiguous run of floating-point values of a single width,
// written in the byte order of an endian engine. The sample package writes the
// predictor column followed by the response column and then hands the bytes to
// a compression codec.
//
// # Usage
//
//	enc := encoding.NewFloatRawEncoder[float64](endian.GetLittleEndianEngine())
//	defer enc.Finish()
//
//	enc.WriteSlice(xs)
//	enc.WriteSlice(ys)
//	payload := enc.Bytes()
//
//	dec := encoding.NewFloatRawDecoder[float64](endian.GetLittleEndianEngine())
//	for v := range dec.All(payload[:len(xs)*8], len(xs)) {
//	    fmt.Println(v)
//	}
//
// Encoders borrow their buffers from a pool; call Finish once the bytes are no
// longer needed.
package encoding
