package rules_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	verdict "github.com/verdict-go/verdict"
	"github.com/verdict-go/verdict/rules"
)

func TestNumberInRange_Boundaries(t *testing.T) {
	ctx := context.Background()
	octet := rules.NumberInRange(0, 255)

	for _, ok := range []float64{0, 255, 128} {
		r := verdict.Run(ctx, octet, ok)
		require.True(t, r.IsOK(), "%v must be in range", ok)
	}
	for _, bad := range []float64{-1, 256} {
		r := verdict.Run(ctx, octet, bad)
		require.False(t, r.IsOK(), "%v must be out of range", bad)
		require.Equal(t, verdict.CodePredicateMismatch, r.Fault().Code())
	}

	r := verdict.Run(ctx, octet, "200")
	require.False(t, r.IsOK())
	require.Equal(t, verdict.CodeTypeMismatch, r.Fault().Code(), "type check runs before the range predicate")
}

func TestStringLength_CountsRunes(t *testing.T) {
	ctx := context.Background()
	v := rules.StringLength(1, 3)

	require.True(t, verdict.Run(ctx, v, "日本語").IsOK(), "three runes, not nine bytes")
	require.False(t, verdict.Run(ctx, v, "").IsOK())
	require.False(t, verdict.Run(ctx, v, "abcd").IsOK())
}

func TestNonEmptyString(t *testing.T) {
	ctx := context.Background()
	require.True(t, verdict.Run(ctx, rules.NonEmptyString(), "x").IsOK())
	require.False(t, verdict.Run(ctx, rules.NonEmptyString(), "").IsOK())
}

func TestMatch(t *testing.T) {
	ctx := context.Background()
	hexColor := rules.Match(`^#[0-9a-f]{6}$`)

	require.True(t, verdict.Run(ctx, hexColor, "#a1b2c3").IsOK())

	r := verdict.Run(ctx, hexColor, "red")
	require.False(t, r.IsOK())
	require.Equal(t, verdict.CodePredicateMismatch, r.Fault().Code())
	require.Contains(t, r.Fault().Error(), "pattern")
}

func TestUUID(t *testing.T) {
	ctx := context.Background()
	v := rules.UUID()

	require.True(t, verdict.Run(ctx, v, uuid.NewString()).IsOK())
	require.False(t, verdict.Run(ctx, v, "not-a-uuid").IsOK())
	require.False(t, verdict.Run(ctx, v, 42).IsOK())
}

func TestOneOf(t *testing.T) {
	ctx := context.Background()
	v := rules.OneOf(rules.NonEmptyString(), "red", "green", "blue")

	require.True(t, verdict.Run(ctx, v, "green").IsOK())

	r := verdict.Run(ctx, v, "purple")
	require.False(t, r.IsOK())
	require.Equal(t, verdict.CodePredicateMismatch, r.Fault().Code())
}
