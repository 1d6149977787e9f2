package outcome

import (
	"errors"
	"fmt"
)

var (
	// ErrNilArgument reports a nil function or payload where one is required.
	ErrNilArgument = errors.New("outcome: nil argument")
	// ErrNoValue is returned when a payload is requested from an outcome that has none.
	ErrNoValue = errors.New("outcome: no value present")
	// ErrTypeMismatch reports a flattened payload that is not of the requested type.
	ErrTypeMismatch = errors.New("outcome: payload type mismatch")
)

// PanicError carries a recovered panic value that was not itself an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprint(e.Value)
}

func nilArgument(name string) error {
	return fmt.Errorf("%w: %s cannot be nil", ErrNilArgument, name)
}

func requireNonNil(v any, name string) {
	if isNil(v) {
		panic(nilArgument(name))
	}
}

func errorFromPanic(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &PanicError{Value: r}
}

// causeMessage is the message a failure takes from the error that caused it.
func causeMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return thrownWithoutMessage(err)
}
