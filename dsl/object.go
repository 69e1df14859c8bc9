package dsl

import (
	"context"
	"sort"

	verdict "github.com/verdict-go/verdict"
)

// Object composes a fixed set of field accessors into a validator that
// checks the input is object-like and that every declared field validates.
// Accessors run in declaration order and the first failing field aborts the
// remaining checks, its fault returned verbatim.
//
// Success is a projection built from each field's validated (and possibly
// converted) value, never the raw input passed through; the input itself is
// never mutated. Undeclared input keys are ignored; use ObjectExact to
// reject them.
func Object(fields ...Field) verdict.Validator[map[string]any] {
	return objectOf(fields, false)
}

// ObjectExact behaves like Object and additionally enforces a closed shape:
// any input key not covered by a declared accessor fails with ExtraFields
// naming the offenders in sorted order.
func ObjectExact(fields ...Field) verdict.Validator[map[string]any] {
	return objectOf(fields, true)
}

func objectOf(fields []Field, closed bool) verdict.Validator[map[string]any] {
	return func(ctx context.Context, v any) verdict.Result[map[string]any] {
		src, ok := v.(map[string]any)
		if !ok {
			return verdict.Fail[map[string]any](verdict.TypeMismatch{Expected: verdict.KindObject, Actual: v})
		}
		out := make(map[string]any, len(fields))
		for _, f := range fields {
			member, present := src[f.name]
			if !present {
				if f.mode == fieldOptional {
					continue
				}
				return verdict.Fail[map[string]any](verdict.MissingField{Value: v, Name: f.name})
			}
			run := f.run
			if f.mode == fieldDependent {
				run = f.dep(out)
			}
			r := run(ctx, member)
			if fault := r.Fault(); fault != nil {
				return verdict.Fail[map[string]any](fault)
			}
			out[f.name] = r.Value()
		}
		if closed {
			if extras := undeclaredKeys(src, fields); len(extras) > 0 {
				return verdict.Fail[map[string]any](verdict.ExtraFields{Value: v, Names: extras})
			}
		}
		return verdict.OK(out)
	}
}

// undeclaredKeys returns the input keys not covered by any accessor, sorted
// for deterministic fault contents.
func undeclaredKeys(src map[string]any, fields []Field) []string {
	declared := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		declared[f.name] = struct{}{}
	}
	var extras []string
	for k := range src {
		if _, ok := declared[k]; !ok {
			extras = append(extras, k)
		}
	}
	sort.Strings(extras)
	return extras
}
