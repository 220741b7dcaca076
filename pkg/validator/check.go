package validator

import (
	"context"

	"github.com/dmitrymomot/formrules/pkg/async"
)

// CheckFunc is a custom check. It reports whether value satisfies the rule
// given the raw rule argument (empty when the expression has none).
// It may block; the validator waits for it before evaluating the next rule.
// A returned error or a panic aborts the run as an execution fault.
type CheckFunc func(ctx context.Context, value any, arg string) (bool, error)

// Func adapts a plain predicate into a CheckFunc.
func Func(fn func(value any, arg string) bool) CheckFunc {
	return func(_ context.Context, value any, arg string) (bool, error) {
		return fn(value, arg), nil
	}
}

// FutureCheck adapts a check that hands back a future. The validator awaits
// the future, giving up when ctx is done.
func FutureCheck(fn func(ctx context.Context, value any, arg string) *async.Future[bool]) CheckFunc {
	return func(ctx context.Context, value any, arg string) (bool, error) {
		f := fn(ctx, value, arg)
		if f == nil {
			return false, ErrNilFuture
		}
		return f.AwaitContext(ctx)
	}
}
