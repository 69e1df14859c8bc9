package verdict

import (
	"context"
	"fmt"

	"github.com/verdict-go/verdict/i18n"
)

// Validator is a pure function from an untyped input to a Result. Validators
// are immutable once constructed and safe for concurrent reuse: they neither
// read nor write anything outside their input and their own closure.
//
// Composition creates new validator values that close over their
// constituents; nothing runs until the validator is invoked.
type Validator[T any] func(ctx context.Context, input any) Result[T]

// Succeed returns a validator that ignores its input and always yields value.
func Succeed[T any](value T) Validator[T] {
	return func(ctx context.Context, input any) Result[T] {
		return OK(value)
	}
}

// FailWith returns a validator that ignores its input and always fails with f.
func FailWith[T any](f Fault) Validator[T] {
	return func(ctx context.Context, input any) Result[T] {
		return Fail[T](f)
	}
}

// Map transforms a validator's successful value. Faults propagate unchanged,
// so Map(v, id) is indistinguishable from v and mapping twice composes.
func Map[A, B any](v Validator[A], fn func(A) B) Validator[B] {
	return func(ctx context.Context, input any) Result[B] {
		return MapResult(v(ctx, input), fn)
	}
}

// Apply runs a validator of a function and a validator of its argument
// against the same input, applying on double success. When both fail only
// the function side's fault is reported; this is a deliberate simplification
// over error-accumulating applicatives.
func Apply[A, B any](vf Validator[func(A) B], va Validator[A]) Validator[B] {
	return func(ctx context.Context, input any) Result[B] {
		rf := vf(ctx, input)
		ra := va(ctx, input)
		if f := rf.Fault(); f != nil {
			return Fail[B](f)
		}
		if f := ra.Fault(); f != nil {
			return Fail[B](f)
		}
		return OK(rf.Value()(ra.Value()))
	}
}

// Chain sequences a dependent validator: on success of v, fn builds the next
// validator from the decoded value and runs it against the same original
// input. On failure the chain short-circuits without invoking fn.
func Chain[A, B any](v Validator[A], fn func(A) Validator[B]) Validator[B] {
	return func(ctx context.Context, input any) Result[B] {
		r := v(ctx, input)
		if f := r.Fault(); f != nil {
			return Fail[B](f)
		}
		return fn(r.Value())(ctx, input)
	}
}

// Or runs both validators against the same input and succeeds with whichever
// succeeded, left-biased. Both branches always run, even when the left one is
// expensive. Only when both fail is a combined AlternativesExhausted fault
// constructed; neither branch fault is discarded.
func (v Validator[T]) Or(alt Validator[T]) Validator[T] {
	return func(ctx context.Context, input any) Result[T] {
		left := v(ctx, input)
		right := alt(ctx, input)
		if left.IsOK() {
			return left
		}
		if right.IsOK() {
			return right
		}
		return Fail[T](AlternativesExhausted{Left: left.Fault(), Right: right.Fault()})
	}
}

// Pair carries the two results of Both.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Both runs both validators against the same input and succeeds with the
// pair of results only when both succeed. When both fail, the left fault is
// reported.
func Both[A, B any](left Validator[A], right Validator[B]) Validator[Pair[A, B]] {
	return func(ctx context.Context, input any) Result[Pair[A, B]] {
		rl := left(ctx, input)
		rr := right(ctx, input)
		if f := rl.Fault(); f != nil {
			return Fail[Pair[A, B]](f)
		}
		if f := rr.Fault(); f != nil {
			return Fail[Pair[A, B]](f)
		}
		return OK(Pair[A, B]{First: rl.Value(), Second: rr.Value()})
	}
}

// Compose feeds the successful output of first as the input of second,
// enabling conversion pipelines such as string -> number -> range check.
// Faults from either stage propagate untouched.
func Compose[A, B any](first Validator[A], second Validator[B]) Validator[B] {
	return func(ctx context.Context, input any) Result[B] {
		r := first(ctx, input)
		if f := r.Fault(); f != nil {
			return Fail[B](f)
		}
		return second(ctx, r.Value())
	}
}

// Recursive wraps a supplier so a validator may reference itself (or a
// validator that references it) inside its own definition. The supplier is
// invoked at run time only, once per matching substructure, so construction
// terminates even for infinitely-recursive type definitions and run-time
// recursion depth is bounded by the depth of the actual input.
//
// Cyclic input values are unsupported and will not terminate.
func Recursive[T any](supply func() Validator[T]) Validator[T] {
	return func(ctx context.Context, input any) Result[T] {
		return supply()(ctx, input)
	}
}

// Refine narrows an already-validated value by a boolean predicate. msg may
// be nil, in which case a generic template is used. Failure produces a
// PredicateMismatch carrying the offending value.
func (v Validator[T]) Refine(test func(T) bool, msg func(T) string) Validator[T] {
	return func(ctx context.Context, input any) Result[T] {
		r := v(ctx, input)
		if !r.IsOK() {
			return r
		}
		val := r.Value()
		if test(val) {
			return r
		}
		var m string
		if msg != nil {
			m = msg(val)
		} else {
			m = fmt.Sprintf("%s: %v", i18n.T(CodePredicateMismatch, nil), val)
		}
		return Fail[T](PredicateMismatch{Actual: val, Message: m})
	}
}
