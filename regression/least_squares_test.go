package regression

import (
	"testing"

	"github.com/arloliu/quantreg/errs"
	"github.com/arloliu/quantreg/sample"
	"github.com/stretchr/testify/require"
)

func TestFitLeastSquares(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		ys   []float64
		want float64
	}{
		{name: "perfect line", xs: []float64{1, 2, 3, 4}, ys: []float64{2, 4, 6, 8}, want: 2},
		// Σxy = 428, Σx² = 30
		{name: "outlier", xs: []float64{1, 2, 3, 4}, ys: []float64{2, 4, 6, 100}, want: 428.0 / 30.0},
		{name: "negative predictors", xs: []float64{-2, -1, 1}, ys: []float64{6, 3, -3}, want: -3},
		{name: "zero predictors ignored by sums", xs: []float64{0, 2}, ys: []float64{7, 5}, want: 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slope, err := FitLeastSquares(mustSet(t, tt.xs, tt.ys))
			require.NoError(t, err)
			require.InDelta(t, tt.want, slope.Value(), 1e-12)
		})
	}

	t.Run("empty set", func(t *testing.T) {
		_, err := FitLeastSquares(sample.Set[float32]{})
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("float32", func(t *testing.T) {
		slope, err := FitLeastSquares(mustSet(t, []float32{1, 2}, []float32{3, 6}))
		require.NoError(t, err)
		require.Equal(t, Slope[float32]{M: 3}, slope)
	})
}
