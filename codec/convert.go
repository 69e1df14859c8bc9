// Package codec provides conversion validators built on verdict.Compose:
// the first stage validates the wire shape, the second decodes it into the
// domain representation. Faults from either stage propagate untouched.
package codec

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"time"

	verdict "github.com/verdict-go/verdict"
	"github.com/verdict-go/verdict/dsl"
)

// StringToNumber converts a decimal string into a float64.
func StringToNumber() verdict.Validator[float64] {
	return verdict.Compose(dsl.String(), numberFromString())
}

func numberFromString() verdict.Validator[float64] {
	return func(ctx context.Context, v any) verdict.Result[float64] {
		s, ok := v.(string)
		if !ok {
			return verdict.Fail[float64](verdict.TypeMismatch{Expected: verdict.KindString, Actual: v})
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return verdict.Fail[float64](verdict.PredicateMismatch{
				Actual:  s,
				Message: fmt.Sprintf("%q is not a decimal number", s),
			})
		}
		return verdict.OK(f)
	}
}

// StringToTime converts an RFC3339 string into a time.Time. Both the
// fractional-second and whole-second forms are accepted.
func StringToTime() verdict.Validator[time.Time] {
	return verdict.Compose(dsl.String(), timeFromString())
}

func timeFromString() verdict.Validator[time.Time] {
	return func(ctx context.Context, v any) verdict.Result[time.Time] {
		s, ok := v.(string)
		if !ok {
			return verdict.Fail[time.Time](verdict.TypeMismatch{Expected: verdict.KindString, Actual: v})
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
				return verdict.OK(t2)
			}
			return verdict.Fail[time.Time](verdict.PredicateMismatch{
				Actual:  s,
				Message: fmt.Sprintf("%q is not an RFC3339 timestamp", s),
			})
		}
		return verdict.OK(t)
	}
}

// StringToBigInt converts a base-10 string into a *big.Int of any width.
func StringToBigInt() verdict.Validator[*big.Int] {
	return verdict.Compose(dsl.String(), bigIntFromString())
}

func bigIntFromString() verdict.Validator[*big.Int] {
	return func(ctx context.Context, v any) verdict.Result[*big.Int] {
		s, ok := v.(string)
		if !ok {
			return verdict.Fail[*big.Int](verdict.TypeMismatch{Expected: verdict.KindString, Actual: v})
		}
		i, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return verdict.Fail[*big.Int](verdict.PredicateMismatch{
				Actual:  s,
				Message: fmt.Sprintf("%q is not a base-10 integer", s),
			})
		}
		return verdict.OK(i)
	}
}

// NumberToInt converts a number into an int64, rejecting fractional values
// and values outside the int64 range.
func NumberToInt() verdict.Validator[int64] {
	return verdict.Compose(dsl.Number(), intFromNumber())
}

func intFromNumber() verdict.Validator[int64] {
	return func(ctx context.Context, v any) verdict.Result[int64] {
		f, ok := v.(float64)
		if !ok {
			return verdict.Fail[int64](verdict.TypeMismatch{Expected: verdict.KindNumber, Actual: v})
		}
		if f != math.Trunc(f) {
			return verdict.Fail[int64](verdict.PredicateMismatch{
				Actual:  f,
				Message: fmt.Sprintf("%v is not an integer", f),
			})
		}
		if f < math.MinInt64 || f >= math.MaxInt64 {
			return verdict.Fail[int64](verdict.PredicateMismatch{
				Actual:  f,
				Message: fmt.Sprintf("%v overflows int64", f),
			})
		}
		return verdict.OK(int64(f))
	}
}
