package compress

import (
	"fmt"

	"github.com/arloliu/quantreg/errs"
	"github.com/arloliu/quantreg/format"
)

// Compressor compresses a complete sample payload.
//
// The returned slice is owned by the caller; the input is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
//
// decodedLen is the exact size of the original payload, which the sample header
// records. Implementations never allocate more than decodedLen bytes of output
// and fail with errs.ErrPayloadSize when data decodes to any other size.
// Corrupted input or input produced by a different algorithm is also an error.
type Decompressor interface {
	Decompress(data []byte, decodedLen int) ([]byte, error)
}

// Codec is a matched Compressor and Decompressor. The codecs in this package
// keep only pooled scratch state and are safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

// codecs holds one shared instance per compression type a sample header may name.
var codecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared Codec for a sample header's compression byte.
//
// Returns errs.ErrInvalidCompression for a byte that names no known algorithm.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	codec, ok := codecs[compressionType]
	if !ok {
		return nil, fmt.Errorf("%w: unknown sample compression 0x%02x", errs.ErrInvalidCompression, uint8(compressionType))
	}

	return codec, nil
}

// checkDecodedLen reports errs.ErrPayloadSize when a payload decodes to got
// bytes instead of the want bytes recorded in the sample header.
func checkDecodedLen(algorithm string, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s payload decodes to %d bytes, header records %d", errs.ErrPayloadSize, algorithm, got, want)
	}

	return nil
}
