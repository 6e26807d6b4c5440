// Package compress provides compression codecs for encoded sample payloads.
//
// A sample payload is the columnar float representation of a paired sample set
// (all predictor values followed by all response values). Benchmark timings
// repeat heavily in their high bytes, so general-purpose compressors shrink them
// well before they are shipped or cached by the caller.
//
// Supported algorithms:
//   - None: payload is passed through untouched
//   - Zstd: best ratio; pure Go (klauspost/compress) by default, cgo
//     (valyala/gozstd) when built with the gozstd tag
//   - S2: balanced speed and ratio
//   - LZ4: fastest decompression
//
// Use GetCodec to obtain a shared, concurrency-safe codec for a format.CompressionType:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
package compress
