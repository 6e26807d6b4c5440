package sample

import (
	"fmt"
	"math"

	"github.com/arloliu/quantreg/compress"
	"github.com/arloliu/quantreg/encoding"
	"github.com/arloliu/quantreg/endian"
	"github.com/arloliu/quantreg/errs"
	"github.com/arloliu/quantreg/format"
	"github.com/arloliu/quantreg/internal/hash"
	"github.com/arloliu/quantreg/internal/options"
)

// HeaderSize is the size of the encoded sample header in bytes.
const HeaderSize = 16

const (
	magic0 = 'Q'
	magic1 = 'R'

	flagBigEndian  = 0x01
	flagWidthMask  = 0x06
	flagWidthShift = 1
	flagReserved   = ^byte(flagBigEndian | flagWidthMask)
)

// Encode serializes set into the sample byte format.
//
// Parameters:
//   - set: Sample set to encode; must contain at least one point
//   - opts: Optional compression and byte order settings
//
// Returns:
//   - []byte: Newly allocated encoded bytes
//   - error: errs.ErrInvalidInput for an empty set, or an option error
//
// Example:
//
//	data, err := sample.Encode(set, sample.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
func Encode[T Float](set Set[T], opts ...EncodeOption) ([]byte, error) {
	cfg := defaultEncodeConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	n := set.Len()
	if n == 0 {
		return nil, fmt.Errorf("%w: empty sample set", errs.ErrInvalidInput)
	}
	if uint64(n) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d points exceed encodable count", errs.ErrInvalidInput, n)
	}

	codec, err := compress.GetCodec(cfg.Compression)
	if err != nil {
		return nil, err
	}

	width := set.Width()
	enc := encoding.NewFloatRawEncoder[T](cfg.Engine)
	defer enc.Finish()

	enc.WriteSlice(set.xs)
	enc.WriteSlice(set.ys)

	checksum := hash.Sum64(enc.Bytes())

	payload, err := codec.Compress(enc.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to compress sample payload: %w", err)
	}

	flags := byte(width) << flagWidthShift
	if endian.IsBigEndian(cfg.Engine) {
		flags |= flagBigEndian
	}

	out := make([]byte, 0, HeaderSize+len(payload))
	out = append(out, magic0, magic1, flags, byte(cfg.Compression))
	out = cfg.Engine.AppendUint32(out, uint32(n))
	out = cfg.Engine.AppendUint64(out, checksum)
	out = append(out, payload...)

	return out, nil
}

// Decode parses bytes produced by Encode into a Set.
//
// The representation recorded in the header must match T; decoding a float64
// payload as float32 (or vice versa) fails with errs.ErrWidthMismatch instead of
// silently converting.
//
// Returns:
//   - Set[T]: Decoded set owning freshly allocated slices
//   - error: errs.ErrInvalidHeader, errs.ErrWidthMismatch, errs.ErrInvalidCompression,
//     errs.ErrPayloadSize or errs.ErrChecksumMismatch on malformed input
func Decode[T Float](data []byte) (Set[T], error) {
	if len(data) < HeaderSize {
		return Set[T]{}, fmt.Errorf("%w: %d bytes, need at least %d", errs.ErrInvalidHeader, len(data), HeaderSize)
	}
	if data[0] != magic0 || data[1] != magic1 {
		return Set[T]{}, fmt.Errorf("%w: bad magic 0x%02x%02x", errs.ErrInvalidHeader, data[0], data[1])
	}

	flags := data[2]
	if flags&flagReserved != 0 {
		return Set[T]{}, fmt.Errorf("%w: reserved flag bits set 0x%02x", errs.ErrInvalidHeader, flags)
	}

	width := format.WidthType((flags & flagWidthMask) >> flagWidthShift)
	if width.Size() == 0 {
		return Set[T]{}, fmt.Errorf("%w: unknown width %d", errs.ErrInvalidHeader, width)
	}
	if want := widthOf[T](); width != want {
		return Set[T]{}, fmt.Errorf("%w: encoded as %s, decoding as %s", errs.ErrWidthMismatch, width, want)
	}

	codec, err := compress.GetCodec(format.CompressionType(data[3]))
	if err != nil {
		return Set[T]{}, err
	}

	engine := endian.FromFlag(flags&flagBigEndian != 0)
	n := int(engine.Uint32(data[4:8]))
	if n == 0 {
		return Set[T]{}, fmt.Errorf("%w: zero point count", errs.ErrInvalidHeader)
	}
	checksum := engine.Uint64(data[8:16])

	// The header fixes the decoded size, so decompression never allocates
	// beyond what n points need.
	colSize := n * width.Size()
	raw, err := codec.Decompress(data[HeaderSize:], 2*colSize)
	if err != nil {
		return Set[T]{}, fmt.Errorf("failed to decompress sample payload for %d points: %w", n, err)
	}

	if len(raw) != 2*colSize {
		return Set[T]{}, fmt.Errorf("%w: expected %d bytes for %d points, got %d", errs.ErrPayloadSize, 2*colSize, n, len(raw))
	}
	if got := hash.Sum64(raw); got != checksum {
		return Set[T]{}, fmt.Errorf("%w: header 0x%016x, payload 0x%016x", errs.ErrChecksumMismatch, checksum, got)
	}

	dec := encoding.NewFloatRawDecoder[T](engine)
	xs := readColumn(dec, raw[:colSize], n)
	ys := readColumn(dec, raw[colSize:], n)

	return Set[T]{xs: xs, ys: ys}, nil
}

func readColumn[T Float](dec encoding.FloatRawDecoder[T], raw []byte, n int) []T {
	out := make([]T, 0, n)
	for v := range dec.All(raw, n) {
		out = append(out, v)
	}

	return out
}
