package regression

import (
	"github.com/arloliu/quantreg/internal/pool"
	"github.com/arloliu/quantreg/sample"
)

// widen copies data into pooled float64 columns.
// The returned release function must be called once the columns are no longer used.
func widen[T sample.Float](data sample.Set[T]) (xs, ys []float64, release func()) {
	n := data.Len()
	xs, releaseXs := pool.GetFloat64Slice(n)
	ys, releaseYs := pool.GetFloat64Slice(n)

	i := 0
	for x, y := range data.All() {
		xs[i], ys[i] = float64(x), float64(y)
		i++
	}

	return xs, ys, func() {
		releaseXs()
		releaseYs()
	}
}
