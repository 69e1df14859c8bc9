package dsl

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"

	"github.com/google/go-cmp/cmp"

	verdict "github.com/verdict-go/verdict"
)

// String returns a validator for string inputs.
func String() verdict.Validator[string] {
	return func(ctx context.Context, v any) verdict.Result[string] {
		s, ok := v.(string)
		if !ok {
			return verdict.Fail[string](verdict.TypeMismatch{Expected: verdict.KindString, Actual: v})
		}
		return verdict.OK(s)
	}
}

// Bool returns a validator for boolean inputs.
func Bool() verdict.Validator[bool] {
	return func(ctx context.Context, v any) verdict.Result[bool] {
		b, ok := v.(bool)
		if !ok {
			return verdict.Fail[bool](verdict.TypeMismatch{Expected: verdict.KindBool, Actual: v})
		}
		return verdict.OK(b)
	}
}

// Number returns a validator for numeric inputs, normalized to float64.
// It accepts float64 (encoding/json default), json.Number (UseNumber
// decoders), and the Go integer kinds so values arriving from YAML or
// in-process interop classify uniformly.
func Number() verdict.Validator[float64] {
	return func(ctx context.Context, v any) verdict.Result[float64] {
		f, ok := numberOf(v)
		if !ok {
			return verdict.Fail[float64](verdict.TypeMismatch{Expected: verdict.KindNumber, Actual: v})
		}
		return verdict.OK(f)
	}
}

func numberOf(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// ObjectAny returns a validator that checks the input is object-like without
// inspecting any field. Use Object/ObjectExact for shape validation.
func ObjectAny() verdict.Validator[map[string]any] {
	return func(ctx context.Context, v any) verdict.Result[map[string]any] {
		m, ok := v.(map[string]any)
		if !ok {
			return verdict.Fail[map[string]any](verdict.TypeMismatch{Expected: verdict.KindObject, Actual: v})
		}
		return verdict.OK(m)
	}
}

// Func returns a validator for function values.
func Func() verdict.Validator[any] {
	return func(ctx context.Context, v any) verdict.Result[any] {
		if v == nil || reflect.ValueOf(v).Kind() != reflect.Func {
			return verdict.Fail[any](verdict.TypeMismatch{Expected: verdict.KindFunc, Actual: v})
		}
		return verdict.OK(v)
	}
}

// Null returns a validator that accepts only nil input.
func Null() verdict.Validator[any] {
	return func(ctx context.Context, v any) verdict.Result[any] {
		if v != nil {
			return verdict.Fail[any](verdict.TypeMismatch{Expected: verdict.KindNil, Actual: v})
		}
		return verdict.OK[any](nil)
	}
}

// BigInt returns a validator for arbitrary-width integers. It accepts
// *big.Int directly, the Go integer kinds, and integral json.Number values
// of any width (UseNumber decoders preserve the textual form, so no
// precision is lost on the way in).
func BigInt() verdict.Validator[*big.Int] {
	return func(ctx context.Context, v any) verdict.Result[*big.Int] {
		switch n := v.(type) {
		case *big.Int:
			return verdict.OK(new(big.Int).Set(n))
		case int:
			return verdict.OK(big.NewInt(int64(n)))
		case int64:
			return verdict.OK(big.NewInt(n))
		case json.Number:
			if i, ok := new(big.Int).SetString(n.String(), 10); ok {
				return verdict.OK(i)
			}
		}
		return verdict.Fail[*big.Int](verdict.TypeMismatch{Expected: verdict.KindBigInt, Actual: v})
	}
}

// Is returns a validator that checks the input's runtime category against
// one of the closed set of kinds, passing the value through untyped.
func Is(k verdict.Kind) verdict.Validator[any] {
	return func(ctx context.Context, v any) verdict.Result[any] {
		if verdict.KindOf(v) != k {
			return verdict.Fail[any](verdict.TypeMismatch{Expected: k, Actual: v})
		}
		return verdict.OK(v)
	}
}

// Not is the complement of Is: it succeeds when the input does not belong
// to the given kind.
func Not(k verdict.Kind) verdict.Validator[any] {
	return func(ctx context.Context, v any) verdict.Result[any] {
		if verdict.KindOf(v) == k {
			return verdict.Fail[any](verdict.PredicateMismatch{
				Actual:  v,
				Message: fmt.Sprintf("value must not be of kind %s", k),
			})
		}
		return verdict.OK(v)
	}
}

// EqualTo returns a validator that succeeds iff the input is structurally
// deep-equal to want (not reference equality). Intended for plain decoded
// values; struct values with unexported fields need a custom refinement.
func EqualTo(want any) verdict.Validator[any] {
	return func(ctx context.Context, v any) verdict.Result[any] {
		if !cmp.Equal(v, want) {
			return verdict.Fail[any](verdict.PredicateMismatch{
				Actual:  v,
				Message: fmt.Sprintf("expected value equal to %v, got %v", want, v),
			})
		}
		return verdict.OK(v)
	}
}
