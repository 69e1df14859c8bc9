// Package rules provides prebuilt refinements over the dsl primitives for
// the constraints that show up in nearly every schema: numeric ranges,
// string lengths, patterns, enumerations, and common identifier formats.
package rules

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/google/uuid"

	verdict "github.com/verdict-go/verdict"
	"github.com/verdict-go/verdict/dsl"
)

// NumberInRange validates a number within the inclusive range [min, max].
func NumberInRange(min, max float64) verdict.Validator[float64] {
	return dsl.Number().Refine(
		func(n float64) bool { return n >= min && n <= max },
		func(n float64) string { return fmt.Sprintf("number %v outside range [%v, %v]", n, min, max) },
	)
}

// StringLength validates a string whose rune count lies in [min, max].
func StringLength(min, max int) verdict.Validator[string] {
	return dsl.String().Refine(
		func(s string) bool {
			n := utf8.RuneCountInString(s)
			return n >= min && n <= max
		},
		func(s string) string {
			return fmt.Sprintf("string length %d outside range [%d, %d]", utf8.RuneCountInString(s), min, max)
		},
	)
}

// NonEmptyString validates a string with at least one rune.
func NonEmptyString() verdict.Validator[string] {
	return dsl.String().Refine(
		func(s string) bool { return s != "" },
		func(string) string { return "string must not be empty" },
	)
}

// Match validates a string against the given regular expression. The pattern
// is compiled at construction time and panics when invalid, mirroring
// regexp.MustCompile: a bad pattern is a programming error, not input.
func Match(pattern string) verdict.Validator[string] {
	re := regexp.MustCompile(pattern)
	return dsl.String().Refine(
		re.MatchString,
		func(s string) string { return fmt.Sprintf("%q does not match pattern %s", s, pattern) },
	)
}

// UUID validates a string holding an RFC 4122 UUID in any of the textual
// forms accepted by github.com/google/uuid.
func UUID() verdict.Validator[string] {
	return dsl.String().Refine(
		func(s string) bool {
			_, err := uuid.Parse(s)
			return err == nil
		},
		func(s string) string { return fmt.Sprintf("%q is not a valid UUID", s) },
	)
}

// OneOf refines base so only the allowed values pass.
func OneOf[T comparable](base verdict.Validator[T], allowed ...T) verdict.Validator[T] {
	set := make(map[T]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return base.Refine(
		func(v T) bool {
			_, ok := set[v]
			return ok
		},
		func(v T) string { return fmt.Sprintf("%v is not one of the allowed values %v", v, allowed) },
	)
}
