package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Compressor compresses sample payloads with S2 block encoding.
//
// Payloads are encoded once and decoded many times, so Compress uses the
// stronger EncodeBetter matcher; decoding speed is unaffected.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes data as a single S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.EncodeBetter(nil, data), nil
}

// Decompress decodes an S2 block.
//
// The block's length prefix is checked against decodedLen before any output
// buffer is allocated.
func (c S2Compressor) Decompress(data []byte, decodedLen int) ([]byte, error) {
	if len(data) == 0 {
		return nil, checkDecodedLen("s2", 0, decodedLen)
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if err := checkDecodedLen("s2", n, decodedLen); err != nil {
		return nil, err
	}

	out, err := s2.Decode(make([]byte, decodedLen), data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return out, nil
}
