package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum64(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		id   uint64
	}{
		{"empty", nil, 0xef46db3751d8e999},
		{"short", []byte("test"), 0x4fdcca5ddb678139},
		{"long", []byte("this is a longer test string to hash"), 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, Sum64(tt.data))
		})
	}
}

func TestDigest(t *testing.T) {
	t.Run("matches one-shot hash", func(t *testing.T) {
		d := NewDigest()
		d.Write([]byte("this is a longer "))
		d.Write([]byte("test string to hash"))

		assert.Equal(t, Sum64([]byte("this is a longer test string to hash")), d.Sum64())
	})

	t.Run("empty digest", func(t *testing.T) {
		assert.Equal(t, uint64(0xef46db3751d8e999), NewDigest().Sum64())
	})
}
