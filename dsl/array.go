package dsl

import (
	"context"

	verdict "github.com/verdict-go/verdict"
)

// Array applies one element validator across every member of a sequence.
// Non-sequence input fails with NotASequence; the first failing element
// fails the whole sequence with ElementMismatch wrapping the inner fault and
// its position. Success is the projected element slice in input order,
// reflecting any per-element conversion.
func Array[E any](elem verdict.Validator[E]) verdict.Validator[[]E] {
	return func(ctx context.Context, v any) verdict.Result[[]E] {
		switch seq := v.(type) {
		case []E:
			out := make([]E, 0, len(seq))
			for i, e := range seq {
				r := elem(ctx, e)
				if fault := r.Fault(); fault != nil {
					return verdict.Fail[[]E](verdict.ElementMismatch{Sequence: v, Index: i, Element: e, Inner: fault})
				}
				out = append(out, r.Value())
			}
			return verdict.OK(out)
		case []any:
			out := make([]E, 0, len(seq))
			for i, e := range seq {
				r := elem(ctx, e)
				if fault := r.Fault(); fault != nil {
					return verdict.Fail[[]E](verdict.ElementMismatch{Sequence: v, Index: i, Element: e, Inner: fault})
				}
				out = append(out, r.Value())
			}
			return verdict.OK(out)
		default:
			return verdict.Fail[[]E](verdict.NotASequence{Actual: v})
		}
	}
}
