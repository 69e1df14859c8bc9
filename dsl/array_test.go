package dsl_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	verdict "github.com/verdict-go/verdict"
	g "github.com/verdict-go/verdict/dsl"
)

func TestArray_ElementPropagation(t *testing.T) {
	ctx := context.Background()
	v := g.Array(g.String())

	// first failing element is reported with its position and inner fault
	r := verdict.Run(ctx, v, []any{"a", "b", 3})
	if r.IsOK() {
		t.Fatalf("expected element_mismatch")
	}
	em, ok := r.Fault().(verdict.ElementMismatch)
	if !ok {
		t.Fatalf("expected element_mismatch, got %v", r.Fault())
	}
	if em.Index != 2 || em.Element != 3 {
		t.Fatalf("wrong position: %+v", em)
	}
	inner, ok := em.Inner.(verdict.TypeMismatch)
	if !ok || inner.Expected != verdict.KindString || inner.Actual != 3 {
		t.Fatalf("inner fault must be the element's type_mismatch, got %v", em.Inner)
	}

	// all elements valid: projected slice in input order
	ro := verdict.Run(ctx, v, []any{"a", "b", "c"})
	if !ro.IsOK() {
		t.Fatalf("unexpected fault: %v", ro.Fault())
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, ro.Value()); diff != "" {
		t.Fatalf("order not preserved (-want +got):\n%s", diff)
	}
}

func TestArray_NotASequence(t *testing.T) {
	ctx := context.Background()
	v := g.Array(g.Number())

	for _, in := range []any{"abc", map[string]any{}, 42, nil} {
		r := verdict.Run(ctx, v, in)
		if r.IsOK() {
			t.Fatalf("%v must not validate as a sequence", in)
		}
		if _, ok := r.Fault().(verdict.NotASequence); !ok {
			t.Fatalf("expected not_a_sequence for %v, got %v", in, r.Fault())
		}
	}
}

func TestArray_TypedSliceInput(t *testing.T) {
	ctx := context.Background()
	v := g.Array(g.String().Refine(
		func(s string) bool { return s != "" },
		nil,
	))

	if r := verdict.Run(ctx, v, []string{"x", "y"}); !r.IsOK() {
		t.Fatalf("typed slices validate element-wise: %v", r.Fault())
	}
	r := verdict.Run(ctx, v, []string{"x", ""})
	if r.IsOK() || r.Fault().Code() != verdict.CodeElementMismatch {
		t.Fatalf("expected element_mismatch, got %+v", r)
	}
}

func TestArray_EmptySequence(t *testing.T) {
	ctx := context.Background()
	r := verdict.Run(ctx, g.Array(g.Bool()), []any{})
	if !r.IsOK() || len(r.Value()) != 0 {
		t.Fatalf("empty sequences are valid: %+v", r)
	}
}
