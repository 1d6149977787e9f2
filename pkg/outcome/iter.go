package outcome

import "iter"

// All returns a sequence that yields the payload once for a Value and nothing
// otherwise. The sequence can be ranged over any number of times.
func (o Outcome[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.HasValue() {
			yield(o.value)
		}
	}
}

// Slice returns the payload as a one-element slice, or an empty slice.
func (o Outcome[T]) Slice() []T {
	if o.HasValue() {
		return []T{o.value}
	}
	return []T{}
}
