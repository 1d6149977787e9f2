package format

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type port int

type boomStringer struct{}

func (boomStringer) String() string { panic(errors.New("boom")) }

func TestFormat_NoArgsReturnsTemplate(t *testing.T) {
	t.Parallel()

	var noArgs []any
	for _, template := range []string{"100% done", "test %s", "%!"} {
		assert.Equal(t, template, Format(template, noArgs...))
	}
}

func TestFormat_EmptyTemplate(t *testing.T) {
	t.Parallel()

	var empty string
	assert.Equal(t, NoMessageAvailable, Format(""))
	assert.Equal(t, NoMessageAvailable, Format(empty, "x"))
}

func TestFormat_Args(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "test x", Format("test %s", "x"))
	assert.Equal(t, "I am error test1 test2 someValue test3",
		Format("I am error %s %s %s %s", "test1", "test2", "someValue", "test3"))
	assert.Equal(t, "n=42 ok=true", Format("n=%d ok=%t", 42, true))
}

func TestFormat_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		args     []any
		reason   string
	}{
		{name: "wrong verb", template: "bad %t", args: []any{"x"}, reason: "%!t(string=x)"},
		{name: "missing operand", template: "%s and %d", args: []any{"x"}, reason: "%!d(MISSING)"},
		{name: "extra operand", template: "only %s", args: []any{"x", "y"}, reason: "%!(EXTRA string=y)"},
		{name: "panicking stringer", template: "value %v", args: []any{boomStringer{}}, reason: "PANIC=String method: boom"},
		{name: "wrong verb inside slice", template: "ids %t", args: []any{[]string{"a"}}, reason: "%!t(string=a)"},
		{name: "nil operand", template: "got %d", args: []any{nil}, reason: "%!d(<nil>)"},
		{name: "wrong verb for named int", template: "port %s", args: []any{port(80)}, reason: "%!s(format.port=80)"},
		{name: "diagnostic text with real mismatch", template: "%s %d", args: []any{"%!d(MISSING)"}, reason: "%!d(MISSING)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got string
			assert.NotPanics(t, func() { got = Format(tt.template, tt.args...) })
			assert.True(t, strings.HasPrefix(got, ErrorPrefix), got)
			assert.Contains(t, got, tt.reason)
		})
	}
}

func TestFormat_ArgumentTextLooksLikeDiagnostic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		args     []any
		expected string
	}{
		{name: "quoted", template: "rejected input %q", args: []any{"%!d(MISSING)"}, expected: `rejected input "%!d(MISSING)"`},
		{name: "plain", template: "rejected %s", args: []any{"%!t(string=x)"}, expected: "rejected %!t(string=x)"},
		{name: "error text", template: "cause: %v", args: []any{errors.New("%!(EXTRA int=1)")}, expected: "cause: %!(EXTRA int=1)"},
		{name: "inside slice", template: "inputs %v", args: []any{[]string{"%!s(PANIC=x)"}}, expected: "inputs [%!s(PANIC=x)]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Format(tt.template, tt.args...))
		})
	}
}

func TestFormat_FlagsWidthAndIndexes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		args     []any
		expected string
	}{
		{name: "star width", template: "[%*d]", args: []any{4, 7}, expected: "[   7]"},
		{name: "star precision", template: "%.*f", args: []any{2, 3.14159}, expected: "3.14"},
		{name: "explicit index", template: "%[2]s-%[1]s", args: []any{"a", "b"}, expected: "b-a"},
		{name: "padded string", template: "%-4s|", args: []any{"ab"}, expected: "ab  |"},
		{name: "bytes as string", template: "%s", args: []any{[]byte("hi")}, expected: "hi"},
		{name: "char from int", template: "%c%c", args: []any{37, 33}, expected: "%!"},
		{name: "pointer", template: "%T", args: []any{new(int)}, expected: "*int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Format(tt.template, tt.args...))
		})
	}
}
