package verdict

import (
	"context"
	"fmt"
)

// Run invokes the validator against an already-materialized input value and
// returns the Result. Nonconformance is always reported through the Result;
// Run never panics on bad input.
func Run[T any](ctx context.Context, v Validator[T], input any) Result[T] {
	if v == nil {
		panic("verdict: nil validator")
	}
	return v(ctx, input)
}

// Parse is the conventional (value, error) surface over Run.
func Parse[T any](ctx context.Context, v Validator[T], input any) (T, error) {
	return Run(ctx, v, input).Unwrap()
}

// MustRun runs the validator and panics when the input does not conform.
// This is the single panicking entry point of the library, reserved for
// callers who prefer exceptional control flow at their own boundary. The
// panic value is an error wrapping the structured Fault, so the full failure
// context survives a recover.
func MustRun[T any](ctx context.Context, v Validator[T], input any) T {
	r := Run(ctx, v, input)
	if f := r.Fault(); f != nil {
		panic(fmt.Errorf("verdict: validation failed: %w", f))
	}
	return r.Value()
}
