package outcome

import (
	"time"

	"github.com/google/uuid"
)

// Nested is satisfied by every Outcome, whatever its type parameter. It lets
// Flatten, Retype and Equal work across type parameters. The interface is
// sealed: only this package can implement it.
type Nested interface {
	Variant() Variant
	Kind() Kind
	HasValue() bool
	Message() string
	Cause() error
	ID() uuid.UUID
	CreatedAt() time.Time
	String() string

	payload() (any, bool)
}

func (o Outcome[T]) payload() (any, bool) {
	if o.HasValue() {
		return o.value, true
	}
	return nil, false
}

var _ Nested = Outcome[int]{}
