package regression

import (
	"context"
	"testing"

	"github.com/arloliu/quantreg/errs"
	"github.com/arloliu/quantreg/sample"
	"github.com/stretchr/testify/require"
)

func TestFitEach(t *testing.T) {
	perfectSets := func(t *testing.T, n int) []sample.Set[float64] {
		sets := make([]sample.Set[float64], n)
		for i := range n {
			m := float64(i + 1)
			sets[i] = mustSet(t, []float64{1, 2, 3, 5}, []float64{m, 2 * m, 3 * m, 5 * m})
		}

		return sets
	}

	t.Run("results align with input order", func(t *testing.T) {
		sets := perfectSets(t, 25)

		slopes, err := FitEach(context.Background(), sets, 0.5, WithConcurrency(3))
		require.NoError(t, err)
		require.Len(t, slopes, len(sets))
		for i, slope := range slopes {
			require.Equal(t, float64(i+1), slope.Value())
		}
	})

	t.Run("matches sequential fits", func(t *testing.T) {
		sets := make([]sample.Set[float64], 8)
		for i := range sets {
			sets[i] = noisyTimings(t, 60, float64(i+1)*1.5, uint64(i))
		}

		slopes, err := FitEach(context.Background(), sets, 0.9, WithQuantileRule(QuantileRuleInterpolated))
		require.NoError(t, err)
		for i, set := range sets {
			want, err := Fit(set, 0.9, WithQuantileRule(QuantileRuleInterpolated))
			require.NoError(t, err)
			require.Equal(t, want, slopes[i])
		}
	})

	t.Run("no sets", func(t *testing.T) {
		slopes, err := FitEach[float64](context.Background(), nil, 0.5)
		require.NoError(t, err)
		require.Empty(t, slopes)
	})

	t.Run("reports failing set", func(t *testing.T) {
		sets := perfectSets(t, 4)
		sets[2] = mustSet(t, []float64{0, 0}, []float64{1, 1})

		slopes, err := FitEach(context.Background(), sets, 0.5, WithConcurrency(1))
		require.ErrorIs(t, err, errs.ErrInvalidInput)
		require.ErrorContains(t, err, "failed to fit set 2")
		require.Nil(t, slopes)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := FitEach(ctx, perfectSets(t, 4), 0.5)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("invalid concurrency", func(t *testing.T) {
		_, err := FitEach(context.Background(), perfectSets(t, 2), 0.5, WithConcurrency(0))
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("float32", func(t *testing.T) {
		sets := []sample.Set[float32]{
			mustSet(t, []float32{1, 2}, []float32{3, 6}),
			mustSet(t, []float32{4, 8}, []float32{2, 4}),
		}

		slopes, err := FitEach(context.Background(), sets, 0.5)
		require.NoError(t, err)
		require.Equal(t, []Slope[float32]{{M: 3}, {M: 0.5}}, slopes)
	})
}
