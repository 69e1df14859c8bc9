package dsl

import (
	"context"

	verdict "github.com/verdict-go/verdict"
)

type fieldMode int

const (
	fieldRequired fieldMode = iota
	fieldOptional
	fieldDependent
)

// AbsentValue is the explicit marker yielded by an optional accessor when
// the field is missing from the input. Object projections omit the key
// instead of storing the marker.
type AbsentValue struct{}

// Absent is the canonical AbsentValue instance.
var Absent = AbsentValue{}

// Field is a named accessor into an object-like value, paired with the
// validator for the member value. Fields are built by Required, Optional,
// and Dependent, and consumed by Object/ObjectExact.
type Field struct {
	name string
	mode fieldMode
	run  func(ctx context.Context, member any) verdict.Result[any]
	dep  func(seen map[string]any) func(ctx context.Context, member any) verdict.Result[any]
}

// Name returns the field name the accessor looks up.
func (f Field) Name() string { return f.name }

// erase adapts a typed validator to the any-typed form stored in Field,
// mirroring how heterogeneous field sets are held behind one element type.
func erase[T any](inner verdict.Validator[T]) func(context.Context, any) verdict.Result[any] {
	return func(ctx context.Context, v any) verdict.Result[any] {
		r := inner(ctx, v)
		if f := r.Fault(); f != nil {
			return verdict.Fail[any](f)
		}
		return verdict.OK[any](r.Value())
	}
}

// Required declares a field whose absence is a MissingField fault. Presence
// is existential: a key explicitly set to nil still counts as present and is
// handed to the inner validator.
func Required[T any](name string, inner verdict.Validator[T]) Field {
	return Field{name: name, mode: fieldRequired, run: erase(inner)}
}

// Optional declares a field whose absence yields the Absent marker instead
// of failing. A present field delegates to the inner validator exactly as a
// required one does.
func Optional[T any](name string, inner verdict.Validator[T]) Field {
	return Field{name: name, mode: fieldOptional, run: erase(inner)}
}

// Dependent declares a field whose validator is built from the sibling
// fields already validated. Inside Object, build receives the projection of
// the fields declared before this one; standalone, it receives the raw
// input object.
func Dependent[T any](name string, build func(seen map[string]any) verdict.Validator[T]) Field {
	return Field{
		name: name,
		mode: fieldDependent,
		dep: func(seen map[string]any) func(context.Context, any) verdict.Result[any] {
			return erase(build(seen))
		},
	}
}

// Validator runs the accessor standalone against an object-like value.
func (f Field) Validator() verdict.Validator[any] {
	return func(ctx context.Context, v any) verdict.Result[any] {
		obj, ok := v.(map[string]any)
		if !ok {
			return verdict.Fail[any](verdict.TypeMismatch{Expected: verdict.KindObject, Actual: v})
		}
		member, present := obj[f.name]
		if !present {
			if f.mode == fieldOptional {
				return verdict.OK[any](Absent)
			}
			return verdict.Fail[any](verdict.MissingField{Value: v, Name: f.name})
		}
		run := f.run
		if f.mode == fieldDependent {
			run = f.dep(obj)
		}
		return run(ctx, member)
	}
}
