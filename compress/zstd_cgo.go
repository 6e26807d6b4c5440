//go:build gozstd && cgo

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"
)

const gozstdLevel = 3

// Compress compresses data using libzstd, which records the content size in
// the frame header.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, gozstdLevel), nil
}

// Decompress decodes zstd data into at most decodedLen bytes.
//
// libzstd sizes its output from the frame header, so frames without a declared
// content size are decoded by the bounded pure Go decoder instead.
func (c ZstdCompressor) Decompress(data []byte, decodedLen int) ([]byte, error) {
	if len(data) == 0 {
		return nil, checkDecodedLen("zstd", 0, decodedLen)
	}

	header, err := readZstdHeader(data, decodedLen)
	if err != nil {
		return nil, err
	}
	if !header.HasFCS || header.Skippable {
		return decodeZstdBounded(data, decodedLen)
	}

	out, err := gozstd.Decompress(make([]byte, 0, decodedLen), data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if err := checkDecodedLen("zstd", len(out), decodedLen); err != nil {
		return nil, err
	}

	return out, nil
}
