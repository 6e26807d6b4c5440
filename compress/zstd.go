package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/arloliu/quantreg/errs"
	"github.com/klauspost/compress/zstd"
)

// ZstdCompressor provides Zstandard compression for sample payloads.
//
// It gives the best ratio of the built-in codecs and suits payloads that are
// retained for a long time, such as historical benchmark samples.
//
// Compress is pure Go klauspost/compress by default, or cgo valyala/gozstd when
// built with the gozstd tag and cgo enabled. Both write the payload size into
// the frame header, and Decompress rejects frames whose declared size differs
// from the sample header before decoding them.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// zstdDecoderPool holds decoders whose DecodeAll output is capped at the
// capacity of the destination slice.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
			zstd.WithDecodeAllCapLimit(true),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

// readZstdHeader parses the first frame header of data and checks its declared
// content size, when present, against decodedLen.
func readZstdHeader(data []byte, decodedLen int) (zstd.Header, error) {
	var header zstd.Header
	if err := header.Decode(data); err != nil {
		return header, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if header.HasFCS && (decodedLen < 0 || header.FrameContentSize != uint64(decodedLen)) {
		return header, fmt.Errorf("%w: zstd frame declares %d bytes, header records %d",
			errs.ErrPayloadSize, header.FrameContentSize, decodedLen)
	}

	return header, nil
}

// decodeZstdBounded decodes data into a buffer whose capacity is decodedLen.
// Frames that would decode past it fail without growing the buffer.
func decodeZstdBounded(data []byte, decodedLen int) ([]byte, error) {
	if decodedLen < 0 {
		return nil, checkDecodedLen("zstd", 0, decodedLen)
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	out, err := decoder.DecodeAll(data, make([]byte, 0, decodedLen))
	if err != nil {
		if errors.Is(err, zstd.ErrDecoderSizeExceeded) {
			return nil, fmt.Errorf("%w: zstd payload exceeds %d bytes", errs.ErrPayloadSize, decodedLen)
		}

		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if err := checkDecodedLen("zstd", len(out), decodedLen); err != nil {
		return nil, err
	}

	return out, nil
}
