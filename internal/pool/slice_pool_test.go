package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetFloat64Slice(t *testing.T) {
	t.Run("returns slice with correct size", func(t *testing.T) {
		slice, cleanup := GetFloat64Slice(100)
		defer cleanup()

		require.Equal(t, 100, len(slice))
		require.GreaterOrEqual(t, cap(slice), 100)
	})

	t.Run("allocates new slice when capacity insufficient", func(t *testing.T) {
		_, cleanup1 := GetFloat64Slice(10)
		cleanup1()

		slice2, cleanup2 := GetFloat64Slice(1000)
		defer cleanup2()

		require.Equal(t, 1000, len(slice2))
		require.GreaterOrEqual(t, cap(slice2), 1000)
	})

	t.Run("shrinks to requested size", func(t *testing.T) {
		_, cleanup1 := GetFloat64Slice(500)
		cleanup1()

		slice, cleanup2 := GetFloat64Slice(3)
		defer cleanup2()

		require.Len(t, slice, 3)
	})

	t.Run("zero size", func(t *testing.T) {
		slice, cleanup := GetFloat64Slice(0)
		defer cleanup()

		require.Empty(t, slice)
	})
}

func TestGetIntSlice(t *testing.T) {
	t.Run("returns slice with correct size", func(t *testing.T) {
		slice, cleanup := GetIntSlice(64)
		defer cleanup()

		require.Equal(t, 64, len(slice))
		require.GreaterOrEqual(t, cap(slice), 64)
	})

	t.Run("slice is writable", func(t *testing.T) {
		slice, cleanup := GetIntSlice(4)
		defer cleanup()

		for i := range slice {
			slice[i] = i * 2
		}
		require.Equal(t, []int{0, 2, 4, 6}, slice)
	})
}
