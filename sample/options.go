package sample

import (
	"github.com/arloliu/quantreg/compress"
	"github.com/arloliu/quantreg/endian"
	"github.com/arloliu/quantreg/errs"
	"github.com/arloliu/quantreg/format"
	"github.com/arloliu/quantreg/internal/options"
)

// EncodeConfig holds the settings used by Encode.
type EncodeConfig struct {
	Compression format.CompressionType
	Engine      endian.EndianEngine
}

// defaultEncodeConfig returns little-endian, uncompressed encoding.
func defaultEncodeConfig() EncodeConfig {
	return EncodeConfig{
		Compression: format.CompressionNone,
		Engine:      endian.GetLittleEndianEngine(),
	}
}

// EncodeOption is a functional option for EncodeConfig.
type EncodeOption = options.Option[*EncodeConfig]

// WithCompression sets the payload compression.
//
// Unknown compression types make Encode fail with errs.ErrInvalidCompression.
func WithCompression(ct format.CompressionType) EncodeOption {
	return options.New(func(cfg *EncodeConfig) error {
		if _, err := compress.GetCodec(ct); err != nil {
			return err
		}
		cfg.Compression = ct

		return nil
	})
}

// WithByteOrder sets the byte order of the header integers and payload values.
func WithByteOrder(engine endian.EndianEngine) EncodeOption {
	return options.New(func(cfg *EncodeConfig) error {
		if engine == nil {
			return errs.ErrInvalidByteOrder
		}
		cfg.Engine = engine

		return nil
	})
}
