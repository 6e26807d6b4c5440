//go:build !gozstd || !cgo

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Single-segment frames always carry their content size, which lets
// Decompress verify it against the sample header up front.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
			zstd.WithSingleSegment(true),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}

		return encoder
	},
}

// Compress compresses data into a single zstd frame.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

// Decompress decodes zstd data into at most decodedLen bytes.
func (c ZstdCompressor) Decompress(data []byte, decodedLen int) ([]byte, error) {
	if len(data) == 0 {
		return nil, checkDecodedLen("zstd", 0, decodedLen)
	}
	if _, err := readZstdHeader(data, decodedLen); err != nil {
		return nil, err
	}

	return decodeZstdBounded(data, decodedLen)
}
