package regression

import (
	"context"
	"fmt"

	"github.com/arloliu/quantreg/internal/options"
	"github.com/arloliu/quantreg/sample"
	"golang.org/x/sync/errgroup"
)

// FitEach fits every set at the same quantile, in parallel.
//
// Sets are independent, so they are fitted concurrently with at most
// WithConcurrency goroutines (GOMAXPROCS by default). slopes[i] is the fit of
// sets[i]. The first failure cancels the remaining fits and is returned wrapped
// with the index of the failing set; a cancelled ctx returns ctx's error.
//
// Example:
//
//	slopes, err := regression.FitEach(ctx, perBenchmark, 0.5, regression.WithConcurrency(4))
//	if err != nil {
//	    return err
//	}
func FitEach[T sample.Float](ctx context.Context, sets []sample.Set[T], quantile float64, opts ...FitOption) ([]Slope[T], error) {
	cfg := defaultFitConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	slopes := make([]Slope[T], len(sets))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)

	for i, set := range sets {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			m, _, err := fitSlope(set, quantile, cfg.Rule)
			if err != nil {
				return fmt.Errorf("failed to fit set %d: %w", i, err)
			}
			slopes[i], err = newSlope[T](m)
			if err != nil {
				return fmt.Errorf("failed to fit set %d: %w", i, err)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return slopes, nil
}
