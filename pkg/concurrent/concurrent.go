package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ForEach runs action for every item with at most limit goroutines at a time.
// A limit below one means no limit. The context passed to action is
// cancelled as soon as any action fails; ForEach returns the first error.
func ForEach[T any](ctx context.Context, items []T, limit int, action func(context.Context, T) error) error {
	group, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		group.SetLimit(limit)
	}
	for _, item := range items {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return action(ctx, item)
		})
	}
	return group.Wait()
}

// ParallelMap applies mapFn to each element with at most workers goroutines,
// preserving order. Results of failed elements are left at their zero value.
func ParallelMap[T any, R any](ctx context.Context, in []T, workers int, mapFn func(context.Context, T) (R, error)) ([]R, error) {
	out := make([]R, len(in))
	idx := make([]int, len(in))
	for i := range idx {
		idx[i] = i
	}
	err := ForEach(ctx, idx, workers, func(ctx context.Context, i int) error {
		r, err := mapFn(ctx, in[i])
		if err != nil {
			return err
		}
		out[i] = r
		return nil
	})
	return out, err
}
