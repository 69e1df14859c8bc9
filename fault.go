package verdict

import (
	"errors"
	"fmt"
	"strings"

	"github.com/verdict-go/verdict/i18n"
)

// Fault codes (exported consts for IDE completion and type safety by convention)
const (
	CodeTypeMismatch          = "type_mismatch"
	CodePredicateMismatch     = "predicate_mismatch"
	CodeMissingField          = "missing_field"
	CodeExtraFields           = "extra_fields"
	CodeNotASequence          = "not_a_sequence"
	CodeElementMismatch       = "element_mismatch"
	CodeAlternativesExhausted = "alternatives_exhausted"
)

// Fault is the structured failure produced by a validator. Every variant
// carries enough context (the offending value, the expected shape) for a
// consumer to render it or dispatch on it programmatically; the Error()
// strings exist only as a convenience rendering via the i18n dictionary.
type Fault interface {
	error
	Code() string
}

// TypeMismatch reports an input whose runtime category differs from the
// expected Kind.
type TypeMismatch struct {
	Expected Kind
	Actual   any
}

func (f TypeMismatch) Code() string { return CodeTypeMismatch }

func (f TypeMismatch) Error() string {
	return fmt.Sprintf("%s: expected %s, got %v (%s)", i18n.T(CodeTypeMismatch, nil), f.Expected, f.Actual, KindOf(f.Actual))
}

// PredicateMismatch reports a value that passed its type check but failed a
// boolean refinement. Message is supplied by the refinement call site.
type PredicateMismatch struct {
	Actual  any
	Message string
}

func (f PredicateMismatch) Code() string { return CodePredicateMismatch }

func (f PredicateMismatch) Error() string {
	if f.Message != "" {
		return fmt.Sprintf("%s: %s", i18n.T(CodePredicateMismatch, nil), f.Message)
	}
	return fmt.Sprintf("%s: %v", i18n.T(CodePredicateMismatch, nil), f.Actual)
}

// MissingField reports a required field absent from an object-like value.
// Presence is existential: a field explicitly set to nil still counts as
// present and never produces this fault.
type MissingField struct {
	Value any
	Name  string
}

func (f MissingField) Code() string { return CodeMissingField }

func (f MissingField) Error() string {
	return fmt.Sprintf("%s: %q", i18n.T(CodeMissingField, nil), f.Name)
}

// ExtraFields reports input keys not covered by a closed object shape.
// Names is sorted for deterministic output.
type ExtraFields struct {
	Value any
	Names []string
}

func (f ExtraFields) Code() string { return CodeExtraFields }

func (f ExtraFields) Error() string {
	return fmt.Sprintf("%s: %s", i18n.T(CodeExtraFields, nil), strings.Join(f.Names, ", "))
}

// NotASequence reports an input that was expected to be an ordered sequence.
type NotASequence struct {
	Actual any
}

func (f NotASequence) Code() string { return CodeNotASequence }

func (f NotASequence) Error() string {
	return fmt.Sprintf("%s: got %v (%s)", i18n.T(CodeNotASequence, nil), f.Actual, KindOf(f.Actual))
}

// ElementMismatch wraps a child fault with its positional context inside a
// sequence. Only the first failing element is reported.
type ElementMismatch struct {
	Sequence any
	Index    int
	Element  any
	Inner    Fault
}

func (f ElementMismatch) Code() string { return CodeElementMismatch }

func (f ElementMismatch) Error() string {
	return fmt.Sprintf("%s at index %d: %v", i18n.T(CodeElementMismatch, nil), f.Index, f.Inner)
}

// Unwrap exposes the inner fault to errors.Is/errors.As.
func (f ElementMismatch) Unwrap() error { return f.Inner }

// AlternativesExhausted merges the failures of both branches of an Or. Both
// branch faults are preserved verbatim.
type AlternativesExhausted struct {
	Left  Fault
	Right Fault
}

func (f AlternativesExhausted) Code() string { return CodeAlternativesExhausted }

func (f AlternativesExhausted) Error() string {
	return fmt.Sprintf("%s: [%v] and [%v]", i18n.T(CodeAlternativesExhausted, nil), f.Left, f.Right)
}

// Unwrap exposes both branch faults to errors.Is/errors.As.
func (f AlternativesExhausted) Unwrap() []error { return []error{f.Left, f.Right} }

// AsFault extracts a Fault from an error using errors.As internally.
func AsFault(err error) (Fault, bool) {
	if err == nil {
		return nil, false
	}
	var f Fault
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
