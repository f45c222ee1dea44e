// Package parallel provides bounded-concurrency fan-out for independent
// units of work. Solver dictionaries share no mutable state, so the digit
// strains of a search parallelise with no coordination beyond joining.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map runs fn over every item with at most workers goroutines in flight
// and returns the results in input order. The first error cancels the
// group's context; remaining calls still started are awaited. workers <= 0
// means no limit.
func Map[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	group, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		group.SetLimit(workers)
	}

	results := make([]R, len(items))
	for i, item := range items {
		i, item := i, item
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := fn(ctx, item)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
