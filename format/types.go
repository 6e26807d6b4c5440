package format

type (
	CompressionType uint8
	WidthType       uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	Width32 WidthType = 0x1 // Width32 represents float32 samples.
	Width64 WidthType = 0x2 // Width64 represents float64 samples.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

func (w WidthType) String() string {
	switch w {
	case Width32:
		return "Float32"
	case Width64:
		return "Float64"
	default:
		return "Unknown"
	}
}

// Size returns the number of bytes a single sample occupies, or 0 for unknown widths.
func (w WidthType) Size() int {
	switch w {
	case Width32:
		return 4
	case Width64:
		return 8
	default:
		return 0
	}
}
