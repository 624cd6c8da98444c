package terrain

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// GenerateBatch builds one grid per seed in parallel. Each grid gets its own
// source from newSource, so the result at index i equals
// Generate(n, decay, newSource(seeds[i])) regardless of scheduling.
// A nil newSource defaults to NewSource.
func GenerateBatch(ctx context.Context, n int, decay float64, seeds []int64, newSource func(int64) Source) ([]*HeightGrid, error) {
	if err := ValidateDimension(n); err != nil {
		return nil, err
	}
	if err := ValidateDecay(decay); err != nil {
		return nil, err
	}
	if newSource == nil {
		newSource = NewSource
	}

	grids := make([]*HeightGrid, len(seeds))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())
	for i, seed := range seeds {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			g, err := Generate(n, decay, newSource(seed))
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			grids[i] = g
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return grids, nil
}
