package outcome

import (
	"errors"

	"github.com/ib-77/outcome/pkg/outcome/format"
)

// Kind categorises a Failure. Values and Empties carry KindNone, and a
// Failure that was not given a category is KindErrorOccurred.
type Kind uint8

const (
	KindNone Kind = iota
	KindErrorOccurred
	KindNotFound
	KindUnauthorized
	KindUnprocessable
)

var (
	ErrNotFound      = errors.New("outcome: not found")
	ErrUnauthorized  = errors.New("outcome: unauthorized")
	ErrUnprocessable = errors.New("outcome: unprocessable")
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindErrorOccurred:
		return "ErrorOccurred"
	case KindNotFound:
		return "NotFound"
	case KindUnauthorized:
		return "Unauthorized"
	case KindUnprocessable:
		return "Unprocessable"
	default:
		return "Unknown"
	}
}

// Err returns the sentinel OrErr wraps for a Failure of kind k, or nil when
// the kind has none.
func (k Kind) Err() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindUnauthorized:
		return ErrUnauthorized
	case KindUnprocessable:
		return ErrUnprocessable
	default:
		return nil
	}
}

func (k Kind) defaultMessage() string {
	switch k {
	case KindNotFound:
		return MsgNotFound
	case KindUnauthorized:
		return MsgUnauthorized
	case KindUnprocessable:
		return MsgUnprocessable
	default:
		return MsgFailure
	}
}

// failureKind maps k onto a kind a Failure can carry.
func failureKind(k Kind) Kind {
	switch k {
	case KindNotFound, KindUnauthorized, KindUnprocessable:
		return k
	default:
		return KindErrorOccurred
	}
}

func kindFor(variant Variant) Kind {
	if variant == VariantFailure {
		return KindErrorOccurred
	}
	return KindNone
}

// NotFound returns a Failure of KindNotFound. An empty msg leaves the kind's
// default message in place.
func NotFound[T any](msg string, args ...any) Outcome[T] {
	return failureOfKind[T](KindNotFound, categoryMessage(msg, args...))
}

// Unauthorized returns a Failure of KindUnauthorized.
func Unauthorized[T any](msg string, args ...any) Outcome[T] {
	return failureOfKind[T](KindUnauthorized, categoryMessage(msg, args...))
}

// Unprocessable returns a Failure of KindUnprocessable.
func Unprocessable[T any](msg string, args ...any) Outcome[T] {
	return failureOfKind[T](KindUnprocessable, categoryMessage(msg, args...))
}

func failureOfKind[T any](kind Kind, message string) Outcome[T] {
	o := newOutcome(VariantFailure, *new(T), nil, message)
	o.kind = failureKind(kind)
	return o
}

func categoryMessage(msg string, args ...any) string {
	if msg == "" {
		return ""
	}
	return format.Format(msg, args...)
}

// Kind reports the failure category of o, KindNone unless o is a Failure.
func (o Outcome[T]) Kind() Kind {
	return o.kind
}
