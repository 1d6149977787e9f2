package outcome

import "fmt"

// Flatten unwraps a chain of Value(Outcome) layers and returns the innermost
// result as an Outcome[R]:
//   - a Value with a payload of type R becomes Value[R]
//   - a Failure keeps its cause and message
//   - an Empty stays Empty
//
// A Value whose innermost payload is not an R is a programming error and
// panics with an error wrapping ErrTypeMismatch.
func Flatten[R any](n Nested) Outcome[R] {
	requireNonNil(n, "outcome")

	for {
		p, ok := n.payload()
		if !ok {
			return rebox[R](n)
		}

		if inner, nested := p.(Nested); nested {
			n = inner
			continue
		}

		v, ok := p.(R)
		if !ok {
			panic(fmt.Errorf("%w: cannot flatten %T into Outcome[%s]", ErrTypeMismatch, p, typeName[R]()))
		}

		return Outcome[R]{
			id:        n.ID(),
			createdAt: n.CreatedAt(),
			value:     v,
			message:   n.Message(),
			variant:   VariantValue,
		}
	}
}

// Depth reports how many Value(Outcome) layers wrap the innermost result.
func Depth(n Nested) int {
	depth := 0
	for {
		p, ok := n.payload()
		if !ok {
			return depth
		}
		inner, nested := p.(Nested)
		if !nested {
			return depth
		}
		n = inner
		depth++
	}
}

// Retype converts n to an Outcome[R] without flattening, keeping variant,
// message, cause and provenance. A payload that is not an R is dropped and
// the result is Empty.
func Retype[R any](n Nested) Outcome[R] {
	requireNonNil(n, "outcome")

	p, ok := n.payload()
	if !ok {
		return rebox[R](n)
	}

	v, ok := p.(R)
	if !ok {
		return Outcome[R]{
			id:        n.ID(),
			createdAt: n.CreatedAt(),
			message:   fmt.Sprintf("payload of type %T dropped while retyping to %s", p, typeName[R]()),
			variant:   VariantEmpty,
		}
	}

	return Outcome[R]{
		id:        n.ID(),
		createdAt: n.CreatedAt(),
		value:     v,
		message:   n.Message(),
		variant:   VariantValue,
	}
}
