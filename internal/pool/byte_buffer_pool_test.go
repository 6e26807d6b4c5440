package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "new buffer should have zero length")
	assert.Equal(t, 1024, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(SampleBufferDefaultSize)
	bb.B = append(bb.B, []byte("some data")...)
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, bb.Len(), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("no-op when capacity sufficient", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Grow(32)
		require.Equal(t, 64, cap(bb.B))
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.B = append(bb.B, 1, 2, 3)
		bb.Grow(100)

		require.Equal(t, 3, bb.Len())
		require.Equal(t, []byte{1, 2, 3}, bb.Bytes())
		require.GreaterOrEqual(t, cap(bb.B)-bb.Len(), 100)
		require.Equal(t, 3+SampleBufferDefaultSize, cap(bb.B))
	})

	t.Run("grows to required bytes when larger than step", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(SampleBufferDefaultSize * 2)
		require.GreaterOrEqual(t, cap(bb.B), SampleBufferDefaultSize*2)
	})
}

func TestByteBufferPool(t *testing.T) {
	t.Run("get returns empty buffer", func(t *testing.T) {
		p := NewByteBufferPool(128, 1024)
		bb := p.Get()
		require.NotNil(t, bb)
		require.Equal(t, 0, bb.Len())
	})

	t.Run("put resets buffer", func(t *testing.T) {
		p := NewByteBufferPool(128, 1024)
		bb := p.Get()
		bb.B = append(bb.B, []byte("payload")...)
		p.Put(bb)
		require.Equal(t, 0, bb.Len())
	})

	t.Run("put ignores nil and oversized buffers", func(t *testing.T) {
		p := NewByteBufferPool(16, 32)
		p.Put(nil)

		big := NewByteBuffer(64)
		big.B = append(big.B, 'x')
		p.Put(big)
		// oversized buffers are dropped without being reset
		require.Equal(t, 1, big.Len())
	})

	t.Run("concurrent use", func(t *testing.T) {
		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				bb := GetSampleBuffer()
				bb.B = append(bb.B, 0xAA)
				PutSampleBuffer(bb)
			}()
		}
		wg.Wait()
	})
}
