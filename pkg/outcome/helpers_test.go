package outcome

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// recoverErr runs fn and returns the error it panicked with.
func recoverErr(t *testing.T, fn func()) (err error) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		e, ok := r.(error)
		require.True(t, ok, "expected an error panic, got %T", r)
		err = e
	}()

	fn()
	return nil
}

func assertOutcomeEqual[T any](t *testing.T, expected, actual Outcome[T]) {
	t.Helper()
	require.Truef(t, Equal(expected, actual), "expected %s(%s), got %s(%s)",
		expected.Variant(), expected, actual.Variant(), actual)
}
