package codec_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	verdict "github.com/verdict-go/verdict"
	"github.com/verdict-go/verdict/codec"
)

func TestStringToNumber(t *testing.T) {
	ctx := context.Background()
	v := codec.StringToNumber()

	r := verdict.Run(ctx, v, "3.25")
	require.True(t, r.IsOK())
	require.Equal(t, 3.25, r.Value())

	r = verdict.Run(ctx, v, "abc")
	require.False(t, r.IsOK())
	require.Equal(t, verdict.CodePredicateMismatch, r.Fault().Code())

	// the first stage rejects non-strings before conversion is attempted
	r = verdict.Run(ctx, v, 3.25)
	require.False(t, r.IsOK())
	require.Equal(t, verdict.CodeTypeMismatch, r.Fault().Code())
}

func TestStringToTime_RFC3339Forms(t *testing.T) {
	ctx := context.Background()
	v := codec.StringToTime()

	r := verdict.Run(ctx, v, "2024-06-01T12:30:00Z")
	require.True(t, r.IsOK())
	require.Equal(t, time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC), r.Value())

	r = verdict.Run(ctx, v, "2024-06-01T12:30:00.123456789Z")
	require.True(t, r.IsOK(), "fractional seconds are accepted")

	r = verdict.Run(ctx, v, "June 1st")
	require.False(t, r.IsOK())
	require.Equal(t, verdict.CodePredicateMismatch, r.Fault().Code())
}

func TestStringToBigInt(t *testing.T) {
	ctx := context.Background()
	v := codec.StringToBigInt()

	r := verdict.Run(ctx, v, "123456789012345678901234567890")
	require.True(t, r.IsOK())
	require.Equal(t, "123456789012345678901234567890", r.Value().String())

	r = verdict.Run(ctx, v, "12.5")
	require.False(t, r.IsOK())
	require.Equal(t, verdict.CodePredicateMismatch, r.Fault().Code())
}

func TestNumberToInt(t *testing.T) {
	ctx := context.Background()
	v := codec.NumberToInt()

	r := verdict.Run(ctx, v, float64(42))
	require.True(t, r.IsOK())
	require.Equal(t, int64(42), r.Value())

	r = verdict.Run(ctx, v, 1.5)
	require.False(t, r.IsOK())
	require.Equal(t, verdict.CodePredicateMismatch, r.Fault().Code())

	r = verdict.Run(ctx, v, 1e300)
	require.False(t, r.IsOK(), "values beyond int64 must be rejected")
}

func TestCompose_InsideObjectProjection(t *testing.T) {
	ctx := context.Background()

	// conversions declared on fields are reflected in the object projection
	v := verdict.Map(codec.StringToNumber(), func(f float64) float64 { return f * 2 })
	r := verdict.Run(ctx, v, "21")
	require.True(t, r.IsOK())
	require.Equal(t, float64(42), r.Value())
}
