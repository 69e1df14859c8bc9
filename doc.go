package verdict

// Package verdict validates and decodes untyped values (decoded JSON/YAML,
// RPC payloads, interop data) into precisely-typed results, accumulating
// structured failure information when the value does not conform.
//
// It is a combinator library:
//
// - Validator[T] is a pure function from an unknown input to a Result[T].
// - Small validators compose into larger ones via Map/Chain/Apply/Or/Both/
//   Compose; Recursive closes the cycle for self-referential schemas.
// - Failures are a closed Fault taxonomy (TypeMismatch, MissingField, ...)
//   rather than strings, so callers can dispatch on error structure.
//
// Design policy:
// - Keep only the core algebra in the root package; primitives and the
//   object/array combinators live under dsl/, prebuilt refinements under
//   rules/, conversion pipelines under codec/, and input decoding under
//   source/.
// - Validation never raises: nonconformance is always an Err Result. The
//   only panicking surface is MustRun at the caller's boundary.
// - Validators are immutable and reentrant; the same value may be invoked
//   concurrently with no synchronization.
//
// Typical usage:
//
//	user := dsl.ObjectExact(
//	    dsl.Required("name", dsl.String()),
//	    dsl.Optional("age", rules.NumberInRange(0, 150)),
//	)
//	v, err := source.ParseJSON(ctx, user, data).Unwrap()
