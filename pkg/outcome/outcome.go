package outcome

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/outcome/pkg/outcome/format"
)

// Variant tags which of the three states an Outcome is in.
type Variant uint8

const (
	VariantEmpty Variant = iota
	VariantValue
	VariantFailure
)

func (v Variant) String() string {
	switch v {
	case VariantEmpty:
		return "Empty"
	case VariantValue:
		return "Value"
	case VariantFailure:
		return "Failure"
	default:
		return "Unknown"
	}
}

func (v Variant) defaultMessage() string {
	switch v {
	case VariantValue:
		return MsgNothingToReport
	case VariantFailure:
		return MsgFailure
	default:
		return MsgEmpty
	}
}

// Outcome is the result of a computation: a Value, an Empty or a Failure.
// The zero value is an Empty outcome.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	message   string
	cause     error
	variant   Variant
	kind      Kind
}

func newOutcome[T any](variant Variant, value T, cause error, message string) Outcome[T] {
	return Outcome[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     value,
		message:   message,
		cause:     cause,
		variant:   variant,
		kind:      kindFor(variant),
	}
}

// derive builds an outcome of the receiver's type that keeps its provenance.
func (o Outcome[T]) derive(variant Variant, cause error, message string) Outcome[T] {
	return Outcome[T]{
		id:        o.id,
		createdAt: o.createdAt,
		message:   message,
		cause:     cause,
		variant:   variant,
		kind:      kindFor(variant),
	}
}

// rebox re-types a payload-less outcome, keeping variant, message, cause and provenance.
func rebox[R any](n Nested) Outcome[R] {
	return Outcome[R]{
		id:        n.ID(),
		createdAt: n.CreatedAt(),
		message:   n.Message(),
		cause:     n.Cause(),
		variant:   n.Variant(),
		kind:      n.Kind(),
	}
}

// Of returns a Value holding v, or Empty when v is nil.
func Of[T any](v T) Outcome[T] {
	if isNil(v) {
		return Empty[T]()
	}
	return newOutcome(VariantValue, v, nil, "")
}

// OfPtr returns a Value holding *p, or Empty when p (or *p) is nil.
func OfPtr[T any](p *T) Outcome[T] {
	if p == nil {
		return Empty[T]()
	}
	return Of(*p)
}

// Value returns a Value holding v. It panics with ErrNilArgument when v is nil;
// use Of when the payload may legitimately be missing.
func Value[T any](v T) Outcome[T] {
	requireNonNil(v, "value")
	return newOutcome(VariantValue, v, nil, "")
}

// Empty returns an Empty outcome with the default message.
func Empty[T any]() Outcome[T] {
	return newOutcome(VariantEmpty, *new(T), nil, "")
}

// EmptyWith returns an Empty outcome whose message is format.Format(msg, args...).
func EmptyWith[T any](msg string, args ...any) Outcome[T] {
	return newOutcome(VariantEmpty, *new(T), nil, format.Format(msg, args...))
}

// Failure returns a Failure whose message is format.Format(msg, args...).
func Failure[T any](msg string, args ...any) Outcome[T] {
	return newOutcome(VariantFailure, *new(T), nil, format.Format(msg, args...))
}

// FailureOf returns a Failure caused by cause.
func FailureOf[T any](cause error, msg string, args ...any) Outcome[T] {
	return newOutcome(VariantFailure, *new(T), cause, format.Format(msg, args...))
}

func failureFrom[T any](err error) Outcome[T] {
	return newOutcome(VariantFailure, *new(T), err, causeMessage(err))
}

// FromError adapts the (value, error) convention: a non-nil err gives a
// Failure caused by err, otherwise the result is Of(v).
func FromError[T any](v T, err error) Outcome[T] {
	if err != nil {
		return failureFrom[T](err)
	}
	return Of(v)
}

// OfFunc calls supplier and wraps its result with Of. A panic inside supplier
// becomes a Failure carrying the panic as cause.
func OfFunc[T any](supplier func() T) (res Outcome[T]) {
	requireNonNil(supplier, "supplier")
	defer capture(&res)

	return Of(supplier())
}

// OfTry calls supplier and wraps its result with FromError.
func OfTry[T any](supplier func() (T, error)) (res Outcome[T]) {
	requireNonNil(supplier, "supplier")
	defer capture(&res)

	return FromError(supplier())
}

// OfOutcome returns the outcome produced by supplier as is, so a supplier of
// outcomes does not end up wrapped in another Value.
func OfOutcome[T any](supplier func() Outcome[T]) (res Outcome[T]) {
	requireNonNil(supplier, "supplier")
	defer capture(&res)

	return supplier()
}

// OfTested returns Of(v) when predicate accepts v and a Failure otherwise.
func OfTested[T any](predicate func(T) bool, v T) (res Outcome[T]) {
	requireNonNil(predicate, "predicate")
	defer capture(&res)

	if predicate(v) {
		return Of(v)
	}
	return Failure[T](MsgPredicateFailed)
}

// capture turns a panic in the surrounding function into a fresh Failure.
// It must be deferred directly.
func capture[T any](res *Outcome[T]) {
	if r := recover(); r != nil {
		*res = failureFrom[T](errorFromPanic(r))
	}
}

// captureInto turns a panic into a Failure that keeps the provenance of o.
func (o Outcome[T]) captureInto(res *Outcome[T]) {
	if r := recover(); r != nil {
		err := errorFromPanic(r)
		*res = o.derive(VariantFailure, err, causeMessage(err))
	}
}

func (o Outcome[T]) Variant() Variant {
	return o.variant
}

// HasValue reports whether o is a Value.
func (o Outcome[T]) HasValue() bool {
	return o.variant == VariantValue
}

func (o Outcome[T]) IsEmpty() bool {
	return o.variant == VariantEmpty
}

func (o Outcome[T]) IsFailure() bool {
	return o.variant == VariantFailure
}

// IsSuccessful reports whether o is not a Failure. An Empty outcome is successful.
func (o Outcome[T]) IsSuccessful() bool {
	return o.variant != VariantFailure
}

// Get returns the payload and true for a Value, the zero T and false otherwise.
func (o Outcome[T]) Get() (T, bool) {
	if o.HasValue() {
		return o.value, true
	}
	var zero T
	return zero, false
}

func (o Outcome[T]) Message() string {
	if o.message == "" {
		if o.variant == VariantFailure {
			return o.kind.defaultMessage()
		}
		return o.variant.defaultMessage()
	}
	return o.message
}

// Cause returns the error a Failure was produced from, if any.
func (o Outcome[T]) Cause() error {
	return o.cause
}

// ID identifies the computation the outcome stems from. Outcomes that are
// passed through or re-typed keep the ID of their source.
func (o Outcome[T]) ID() uuid.UUID {
	return o.id
}

// CreatedAt is the UTC creation time of the source outcome.
func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}
