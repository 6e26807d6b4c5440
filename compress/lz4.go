package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/arloliu/quantreg/errs"
	"github.com/pierrec/lz4/v4"
)

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor compresses sample payloads as a single LZ4 block.
//
// LZ4 blocks do not record their decoded size; the size comes from the sample
// header instead, so Decompress allocates exactly one buffer of that size.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 block compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data as a single LZ4 block.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return dst[:n], nil
}

// Decompress decodes a single LZ4 block into a buffer of decodedLen bytes.
//
// A block that needs more room fails with errs.ErrPayloadSize.
func (c LZ4Compressor) Decompress(data []byte, decodedLen int) ([]byte, error) {
	if len(data) == 0 || decodedLen < 0 {
		return nil, checkDecodedLen("lz4", 0, decodedLen)
	}

	buf := make([]byte, decodedLen)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, fmt.Errorf("%w: lz4 block does not decode into %d bytes: %w", errs.ErrPayloadSize, decodedLen, err)
		}

		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}
	if err := checkDecodedLen("lz4", n, decodedLen); err != nil {
		return nil, err
	}

	return buf, nil
}
