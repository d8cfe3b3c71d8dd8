package validator

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ValidateAll validates values concurrently with at most limit goroutines
// (unbounded when limit <= 0). Results keep the order of values. The context
// error is returned if ctx is cancelled before every value was checked.
func ValidateAll(ctx context.Context, v Validator, values []any, limit int) ([]Result, error) {
	results := make([]Result, len(values))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, value := range values {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = v.Validate(value)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
