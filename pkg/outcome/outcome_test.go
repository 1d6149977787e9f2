package outcome

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf_Value(t *testing.T) {
	t.Parallel()

	o := Of(10)
	require.True(t, o.HasValue())
	assert.Equal(t, VariantValue, o.Variant())
	assert.Equal(t, MsgNothingToReport, o.Message())
	assert.NoError(t, o.Cause())
	assert.NotEqual(t, uuid.Nil, o.ID())
	assert.False(t, o.CreatedAt().IsZero())

	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, 10, v)
}

func TestOf_ZeroValueIsNotNil(t *testing.T) {
	t.Parallel()

	assert.True(t, Of(0).HasValue())
	assert.True(t, Of("").HasValue())
}

func TestOf_NilBecomesEmpty(t *testing.T) {
	t.Parallel()

	var p *int
	var m map[string]int
	var err error

	assert.True(t, Of(p).IsEmpty())
	assert.True(t, Of(m).IsEmpty())
	assert.True(t, Of(err).IsEmpty())
	assert.False(t, Of(p).HasValue())
	assertOutcomeEqual(t, Empty[*int](), Of(p))
	assert.Equal(t, MsgEmpty, Of(p).Message())
}

func TestOfPtr(t *testing.T) {
	t.Parallel()

	n := 7
	assert.True(t, OfPtr(&n).Contains(7))
	assert.True(t, OfPtr[int](nil).IsEmpty())
}

func TestZeroOutcomeIsEmpty(t *testing.T) {
	t.Parallel()

	var o Outcome[string]
	assert.True(t, o.IsEmpty())
	assert.True(t, o.IsSuccessful())
	assert.Equal(t, MsgEmpty, o.Message())
}

func TestValue_NilPanics(t *testing.T) {
	t.Parallel()

	err := recoverErr(t, func() { Value[*int](nil) })
	assert.ErrorIs(t, err, ErrNilArgument)

	assert.True(t, Value(5).HasValue())
}

func TestEmptyWith(t *testing.T) {
	t.Parallel()

	o := EmptyWith[int]("no rows for %s", "alice")
	assert.True(t, o.IsEmpty())
	assert.Equal(t, "no rows for alice", o.Message())
	assert.Equal(t, "No message available", EmptyWith[int]("").Message())
}

func TestFailure(t *testing.T) {
	t.Parallel()

	o := Failure[int]("I am error %s %s", "test1", "test2")
	assert.True(t, o.IsFailure())
	assert.False(t, o.IsSuccessful())
	assert.Equal(t, "I am error test1 test2", o.Message())
	assert.NoError(t, o.Cause())

	_, ok := o.Get()
	assert.False(t, ok)
}

func TestFailure_MalformedTemplate(t *testing.T) {
	t.Parallel()

	malformed := "bad %t"
	o := Failure[int](malformed, "x")
	assert.True(t, o.IsFailure())
	assert.Contains(t, o.Message(), "Unable to format message, reason: ")
}

func TestFailureOf(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")
	o := FailureOf[string](cause, "writing %s", "report.csv")
	assert.True(t, o.IsFailure())
	assert.Equal(t, "writing report.csv", o.Message())
	assert.ErrorIs(t, o.Cause(), cause)
}

func TestFromError(t *testing.T) {
	t.Parallel()

	assert.True(t, FromError(3, nil).Contains(3))

	cause := errors.New("nope")
	o := FromError(3, cause)
	assert.True(t, o.IsFailure())
	assert.Equal(t, "nope", o.Message())
	assert.Same(t, cause, o.Cause())
}

func TestOfFunc(t *testing.T) {
	t.Parallel()

	assert.True(t, OfFunc(func() string { return "test" }).Contains("test"))
	assert.True(t, OfFunc(func() *int { return nil }).IsEmpty())
}

func TestOfFunc_PanicBecomesFailure(t *testing.T) {
	t.Parallel()

	o := OfFunc(func() int { panic(errors.New("boom")) })
	require.True(t, o.IsFailure())
	assert.Equal(t, "boom", o.Message())
	assert.EqualError(t, o.Cause(), "boom")
}

func TestOfFunc_NonErrorPanic(t *testing.T) {
	t.Parallel()

	o := OfFunc(func() int { panic("boom") })
	require.True(t, o.IsFailure())
	assert.Equal(t, "boom", o.Message())

	var pe *PanicError
	require.ErrorAs(t, o.Cause(), &pe)
	assert.Equal(t, "boom", pe.Value)
}

func TestOfFunc_ErrorWithoutMessage(t *testing.T) {
	t.Parallel()

	o := OfFunc(func() int { panic(errors.New("")) })
	require.True(t, o.IsFailure())
	assert.Equal(t, "*errors.errorString was thrown without any message", o.Message())
}

func TestOfFunc_NilSupplierPanics(t *testing.T) {
	t.Parallel()

	err := recoverErr(t, func() { OfFunc[int](nil) })
	assert.ErrorIs(t, err, ErrNilArgument)
	assert.Contains(t, err.Error(), "supplier")
}

func TestOfTry(t *testing.T) {
	t.Parallel()

	assert.True(t, OfTry(func() (int, error) { return 4, nil }).Contains(4))

	o := OfTry(func() (int, error) { return 0, errors.New("parse error") })
	assert.True(t, o.IsFailure())
	assert.Equal(t, "parse error", o.Message())
}

func TestOfOutcome_ReturnsSuppliedOutcome(t *testing.T) {
	t.Parallel()

	inner := Failure[int]("inner")
	o := OfOutcome(func() Outcome[int] { return inner })
	assert.True(t, o.IsFailure())
	assert.Equal(t, "inner", o.Message())
	assert.Equal(t, inner.ID(), o.ID())

	nested := OfOutcome(func() Outcome[int] {
		return FlatMap(Value(123), func(x int) Outcome[int] { return Value(x) })
	})
	assert.True(t, nested.Contains(123))

	panicked := OfOutcome(func() Outcome[int] { panic(errors.New("test")) })
	assert.True(t, panicked.IsFailure())
	assert.Equal(t, "test", panicked.Message())
}

func TestOfTested(t *testing.T) {
	t.Parallel()

	accepted := OfTested(func(s *string) bool { return true }, nil)
	assert.True(t, accepted.IsEmpty())

	rejected := OfTested(func(s *string) bool { return false }, nil)
	assert.True(t, rejected.IsFailure())
	assert.Equal(t, MsgPredicateFailed, rejected.Message())

	valid := OfTested(func(n int) bool { return n > 0 }, 3)
	assert.True(t, valid.Contains(3))

	thrown := OfTested(func(s string) bool { panic(errors.New("test")) }, "x")
	assert.True(t, thrown.IsFailure())
	assert.Equal(t, "test", thrown.Message())
}

func TestVariant_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Value", VariantValue.String())
	assert.Equal(t, "Empty", VariantEmpty.String())
	assert.Equal(t, "Failure", VariantFailure.String())
	assert.Equal(t, "Unknown", Variant(42).String())
}
