package gen

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/syssam/schemagen/dialect"
)

// Request pairs a driver with the options of one generation invocation.
// Each request must own its driver exclusively; invocations share no
// state beyond the context.
type Request struct {
	Driver  dialect.Driver
	Options []Option
}

// All runs each request as an independent generation invocation, at most
// limit at a time (limit <= 0 means no cap). The first failure cancels the
// remaining invocations and is returned.
func All(ctx context.Context, limit int, reqs ...Request) error {
	eg, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for _, r := range reqs {
		r := r
		eg.Go(func() error {
			_, err := Generate(ctx, r.Driver, r.Options...)
			return err
		})
	}
	return eg.Wait()
}
