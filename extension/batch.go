package extension

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlalg/poly"
)

// evalAll runs f on every element concurrently, at most GOMAXPROCS at a time,
// and returns the results in input order. The first error cancels the
// scheduling of the remaining elements and is returned.
func evalAll[R, T any](ctx context.Context, op string, elems []R, f func(R) (T, error)) ([]T, error) {
	out := make([]T, len(elems))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, a := range elems {
		if gctx.Err() != nil {
			break
		}
		i, a := i, a
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := f(a)
			if err != nil {
				return fmt.Errorf("%s[%d]: %w", op, i, err)
			}
			out[i] = v

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The caller's context may have been cancelled before anything was scheduled.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// Norms returns Norm of every element, computed concurrently.
// Errors: the first element error, or ctx's error when cancelled.
func (e *Extension[D, R]) Norms(ctx context.Context, elems []R) ([]D, error) {
	return evalAll(ctx, opNorm, elems, e.Norm)
}

// Traces returns Trace of every element, computed concurrently.
func (e *Extension[D, R]) Traces(ctx context.Context, elems []R) ([]D, error) {
	return evalAll(ctx, opTrace, elems, e.Trace)
}

// MinPolys returns MinPoly of every element, computed concurrently.
func (e *Extension[D, R]) MinPolys(ctx context.Context, elems []R) ([]poly.Polynomial[D], error) {
	return evalAll(ctx, opMinPoly, elems, e.MinPoly)
}
