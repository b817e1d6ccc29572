package client

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// fetchAll runs fetch for indexes 0..n-1 concurrently, at most limit at a
// time when limit > 0, and returns the results in index order. The first
// error cancels the context passed to the remaining calls; fetchAll still
// waits for every call to return before reporting that error.
func fetchAll[T any](ctx context.Context, n, limit int, fetch func(ctx context.Context, i int) (T, error)) ([]T, error) {
	results := make([]T, n)

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i := range n {
		g.Go(func() error {
			v, err := fetch(gctx, i)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
