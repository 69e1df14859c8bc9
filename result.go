package verdict

// Result represents the outcome of running a validator: a typed value on
// success, or a structured Fault on failure. Results are immutable and
// produced fresh by every validator invocation.
type Result[T any] struct {
	value T
	fault Fault
}

// OK constructs a successful Result carrying value.
func OK[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fail constructs a failed Result carrying the fault.
func Fail[T any](f Fault) Result[T] {
	return Result[T]{fault: f}
}

// IsOK reports whether the Result carries a value.
func (r Result[T]) IsOK() bool { return r.fault == nil }

// Value returns the carried value; the zero value when failed.
func (r Result[T]) Value() T { return r.value }

// Fault returns the carried fault, nil on success.
func (r Result[T]) Fault() Fault { return r.fault }

// Unwrap converts the Result to the conventional Go (value, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	if r.fault == nil {
		return r.value, nil
	}
	return r.value, r.fault
}

// MapResult transforms a successful value, propagating faults unchanged.
func MapResult[A, B any](r Result[A], fn func(A) B) Result[B] {
	if r.fault != nil {
		return Fail[B](r.fault)
	}
	return OK(fn(r.value))
}

// ChainResult sequences a fallible continuation, propagating faults unchanged.
func ChainResult[A, B any](r Result[A], fn func(A) Result[B]) Result[B] {
	if r.fault != nil {
		return Fail[B](r.fault)
	}
	return fn(r.value)
}
