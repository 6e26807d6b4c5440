package compress

// NoOpCompressor passes payloads through without compression.
//
// Both directions return the input slice itself, so the result shares memory
// with the argument.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unchanged.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged once its length matches decodedLen.
func (c NoOpCompressor) Decompress(data []byte, decodedLen int) ([]byte, error) {
	if err := checkDecodedLen("uncompressed", len(data), decodedLen); err != nil {
		return nil, err
	}

	return data, nil
}
