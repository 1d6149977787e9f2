package outcome

import (
	"fmt"

	"github.com/ib-77/outcome/pkg/outcome/format"
)

// Map applies mapper to the payload of a Value. The result goes through Of,
// so a nil result is Empty. A panic in mapper becomes a Failure. Empty and
// Failure pass through re-typed, message and cause intact, and mapper is not
// called.
func Map[T, R any](o Outcome[T], mapper func(T) R) (res Outcome[R]) {
	requireNonNil(mapper, "mapper")
	if !o.HasValue() {
		return rebox[R](o)
	}
	defer capture(&res)

	return Of(mapper(o.value))
}

// TryMap is Map for mappers that follow the (value, error) convention.
func TryMap[T, R any](o Outcome[T], mapper func(T) (R, error)) (res Outcome[R]) {
	requireNonNil(mapper, "mapper")
	if !o.HasValue() {
		return rebox[R](o)
	}
	defer capture(&res)

	return FromError(mapper(o.value))
}

// FlatMap applies mapper to the payload of a Value and returns its outcome.
// Together with Value as unit it satisfies the monad laws.
func FlatMap[T, R any](o Outcome[T], mapper func(T) Outcome[R]) (res Outcome[R]) {
	requireNonNil(mapper, "mapper")
	if !o.HasValue() {
		return rebox[R](o)
	}
	defer capture(&res)

	return mapper(o.value)
}

// FlatMapDeep flattens n down to its innermost result before binding mapper.
// See Flatten for the contract on the innermost payload type.
func FlatMapDeep[R, U any](n Nested, mapper func(R) Outcome[U]) Outcome[U] {
	return FlatMap(Flatten[R](n), mapper)
}

// Fold reduces o to a single value with the handler matching its variant.
func Fold[T, R any](o Outcome[T],
	onValue func(T) R,
	onEmpty func(message string) R,
	onFailure func(cause error, message string) R) R {

	requireNonNil(onValue, "onValue")
	requireNonNil(onEmpty, "onEmpty")
	requireNonNil(onFailure, "onFailure")

	switch o.variant {
	case VariantValue:
		return onValue(o.value)
	case VariantFailure:
		return onFailure(o.cause, o.Message())
	default:
		return onEmpty(o.Message())
	}
}

// Test keeps a Value whose payload satisfies predicate and turns it into a
// Failure otherwise. The failure message names the predicate function.
// Empty and Failure are returned unchanged.
func (o Outcome[T]) Test(predicate func(T) bool) Outcome[T] {
	requireNonNil(predicate, "predicate")
	return o.test(predicate, KindErrorOccurred, func() string { return predicateFailed(funcName(predicate)) })
}

// TestWith is Test with a custom failure message. An empty msg keeps the
// message Test would use.
func (o Outcome[T]) TestWith(predicate func(T) bool, msg string, args ...any) Outcome[T] {
	requireNonNil(predicate, "predicate")
	return o.test(predicate, KindErrorOccurred, func() string {
		if msg == "" {
			return predicateFailed(funcName(predicate))
		}
		return format.Format(msg, args...)
	})
}

// TestAs is Test for a rejection of a given kind. The Failure carries kind
// and its default message; KindNone is treated as KindErrorOccurred.
func (o Outcome[T]) TestAs(predicate func(T) bool, kind Kind) Outcome[T] {
	requireNonNil(predicate, "predicate")
	kind = failureKind(kind)
	return o.test(predicate, kind, func() string { return kind.defaultMessage() })
}

func (o Outcome[T]) test(predicate func(T) bool, kind Kind, failureMessage func() string) (res Outcome[T]) {
	if !o.HasValue() {
		return o
	}
	defer o.captureInto(&res)

	if predicate(o.value) {
		return o
	}
	failed := o.derive(VariantFailure, nil, failureMessage())
	failed.kind = kind
	return failed
}

// Or returns o when it is a Value and other otherwise.
func (o Outcome[T]) Or(other Outcome[T]) Outcome[T] {
	if o.HasValue() {
		return o
	}
	return other
}

// OrGet is Or with a lazily supplied alternative.
func (o Outcome[T]) OrGet(supplier func() Outcome[T]) Outcome[T] {
	requireNonNil(supplier, "supplier")
	if o.HasValue() {
		return o
	}
	return supplier()
}

// OrElse returns the payload of a Value and def otherwise.
func (o Outcome[T]) OrElse(def T) T {
	if o.HasValue() {
		return o.value
	}
	return def
}

// OrElseGet is OrElse with a lazily supplied default.
func (o Outcome[T]) OrElseGet(supplier func() T) T {
	requireNonNil(supplier, "supplier")
	if o.HasValue() {
		return o.value
	}
	return supplier()
}

// OrErr returns the payload of a Value. Otherwise it returns an error that
// wraps ErrNoValue, the sentinel of the failure kind and, when present, the cause.
func (o Outcome[T]) OrErr() (T, error) {
	if o.HasValue() {
		return o.value, nil
	}
	var zero T
	return zero, o.noValueErr()
}

// OrElseErr returns the payload of a Value and the error produced by
// errSupplier otherwise. A nil error from errSupplier falls back to OrErr.
func (o Outcome[T]) OrElseErr(errSupplier func() error) (T, error) {
	requireNonNil(errSupplier, "errSupplier")
	if o.HasValue() {
		return o.value, nil
	}
	var zero T
	if err := errSupplier(); err != nil {
		return zero, err
	}
	return zero, o.noValueErr()
}

// MustGet returns the payload of a Value and panics with the OrErr error otherwise.
func (o Outcome[T]) MustGet() T {
	v, err := o.OrErr()
	if err != nil {
		panic(err)
	}
	return v
}

func (o Outcome[T]) noValueErr() error {
	base := ErrNoValue
	if kindErr := o.kind.Err(); kindErr != nil {
		base = fmt.Errorf("%w: %w", ErrNoValue, kindErr)
	}
	if o.cause != nil {
		return fmt.Errorf("%w: %s: %s: %w", base, o.variant, o.Message(), o.cause)
	}
	return fmt.Errorf("%w: %s: %s", base, o.variant, o.Message())
}

// ThenAccept hands the payload of a Value to consumer and returns o.
// A panic in consumer turns the result into a Failure.
func (o Outcome[T]) ThenAccept(consumer func(T)) (res Outcome[T]) {
	requireNonNil(consumer, "consumer")
	if !o.HasValue() {
		return o
	}
	defer o.captureInto(&res)

	consumer(o.value)
	return o
}

// ThenTry is ThenAccept for consumers that report errors.
func (o Outcome[T]) ThenTry(consumer func(T) error) (res Outcome[T]) {
	requireNonNil(consumer, "consumer")
	if !o.HasValue() {
		return o
	}
	defer o.captureInto(&res)

	if err := consumer(o.value); err != nil {
		return o.derive(VariantFailure, err, causeMessage(err))
	}
	return o
}

// ThenRun calls action unless o is a Failure.
func (o Outcome[T]) ThenRun(action func()) (res Outcome[T]) {
	requireNonNil(action, "action")
	if o.IsFailure() {
		return o
	}
	defer o.captureInto(&res)

	action()
	return o
}
