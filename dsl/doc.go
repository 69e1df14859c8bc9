// Package dsl provides the primitive predicates, field accessors, and
// structural combinators built on the verdict core algebra.
//
// Entry points
//   - String()/Number()/Bool()/ObjectAny()/Func()/Null()/BigInt(): validators
//     for each fundamental runtime category; Is(kind)/Not(kind) for the
//     untyped form and its complement.
//   - EqualTo(want): structural deep equality against a fixed value.
//   - Required(name, inner)/Optional(name, inner)/Dependent(name, build):
//     field accessors distinguishing "absence is a fault" from "absence
//     yields the Absent marker".
//   - Object(fields...)/ObjectExact(fields...): compose accessors into an
//     object validator, open or closed shape; fail-fast in declaration order.
//   - Array(elem): apply one element validator across a sequence.
//
// Everything here builds new Validator values; nothing executes until the
// validator is invoked. Refinements layer on via Validator.Refine, e.g.
//
//	octet := dsl.Number().Refine(
//	    func(n float64) bool { return n >= 0 && n <= 255 },
//	    func(n float64) string { return fmt.Sprintf("%v outside [0,255]", n) },
//	)
package dsl
