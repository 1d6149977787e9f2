package outcome

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/mitchellh/hashstructure/v2"
)

// Equal reports whether a and b hold equal payloads. Outcomes without a
// payload are equal to each other whatever their variant; message, cause and
// provenance never take part.
func Equal(a, b Nested) bool {
	pa, okA := a.payload()
	pb, okB := b.payload()
	if okA != okB {
		return false
	}
	return !okA || deepEqual(pa, pb)
}

// EqualValue reports whether n is a Value whose payload equals v.
func EqualValue(n Nested, v any) bool {
	p, ok := n.payload()
	return ok && deepEqual(p, v)
}

// Equal is the typed form of the package level Equal.
func (o Outcome[T]) Equal(other Outcome[T]) bool {
	return Equal(o, other)
}

// Contains reports whether o is a Value whose payload equals v.
func (o Outcome[T]) Contains(v T) bool {
	return o.HasValue() && deepEqual(o.value, v)
}

// exportAll lets cmp compare unexported fields the way reflect.DeepEqual does.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// deepEqual compares payloads with cmp, so Equal methods (time.Time, nested
// outcomes, user types) are honoured at every level.
func deepEqual(a, b any) bool {
	return cmp.Equal(a, b, exportAll)
}

// Hash returns a hash of the payload that is consistent with Equal: equal
// outcomes hash alike. Outcomes without a payload hash to 0.
func (o Outcome[T]) Hash() uint64 {
	if !o.HasValue() {
		return 0
	}
	h, err := hashstructure.Hash(canonical(reflect.ValueOf(o.value), 0), hashstructure.FormatV2, nil)
	if err != nil {
		return 0
	}
	return h
}

const maxHashDepth = 16

// mapEntries holds key/value pairs of a map; the set tag makes their order irrelevant.
type mapEntries struct {
	Entries []any `hash:"set"`
}

// canonical rewrites v into plain data that hashes alike whenever deepEqual
// reports equality. A value whose Equal method cmp would call is reduced to
// what that method is known to compare (the instant of a time.Time, the
// payload of an outcome) or else to its type name.
func canonical(v reflect.Value, depth int) any {
	if !v.IsValid() || depth > maxHashDepth {
		return nil
	}

	t := v.Type()
	if usesEqualMethod(t) {
		if v.CanInterface() {
			switch x := v.Interface().(type) {
			case time.Time:
				return x.UnixNano()
			case Nested:
				p, ok := x.payload()
				if !ok {
					return nil
				}
				return canonical(reflect.ValueOf(p), depth+1)
			}
		}
		return t.String()
	}

	switch v.Kind() {
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return unsignedZero(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		return []float64{unsignedZero(real(c)), unsignedZero(imag(c))}
	case reflect.String:
		return v.String()
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return canonical(v.Elem(), depth+1)
	case reflect.Slice, reflect.Array:
		elems := make([]any, v.Len())
		for i := range elems {
			elems[i] = canonical(v.Index(i), depth+1)
		}
		return elems
	case reflect.Map:
		entries := make([]any, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			entries = append(entries, []any{canonical(iter.Key(), depth+1), canonical(iter.Value(), depth+1)})
		}
		return mapEntries{Entries: entries}
	case reflect.Struct:
		fields := make([]any, v.NumField())
		for i := range fields {
			fields[i] = canonical(v.Field(i), depth+1)
		}
		return fields
	default:
		// funcs, chans and unsafe pointers only hash their type
		return t.String()
	}
}

// unsignedZero folds -0 into +0; the two compare equal.
func unsignedZero(f float64) float64 {
	if f == 0 {
		return 0
	}
	return f
}

// usesEqualMethod reports whether cmp.Equal defers to an Equal method of t:
// a method of the form (T) Equal(I) bool where T is assignable to I.
func usesEqualMethod(t reflect.Type) bool {
	if t.Kind() == reflect.Interface {
		return false
	}
	m, ok := t.MethodByName("Equal")
	if !ok {
		return false
	}
	mt := m.Type
	return mt.NumIn() == 2 && mt.NumOut() == 1 &&
		mt.Out(0) == reflect.TypeFor[bool]() && mt.In(0).AssignableTo(mt.In(1))
}

// String renders the payload with %v, or EmptyString when there is none.
func (o Outcome[T]) String() string {
	if !o.HasValue() {
		return EmptyString
	}
	return fmt.Sprintf("%v", o.value)
}

// MarshalJSON encodes the payload, or null when there is none.
func (o Outcome[T]) MarshalJSON() ([]byte, error) {
	if !o.HasValue() {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as Empty and anything else as Of(payload).
func (o *Outcome[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = Empty[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decode outcome payload: %w", err)
	}
	*o = Of(v)
	return nil
}

// MarshalYAML encodes the payload, or null when there is none.
func (o Outcome[T]) MarshalYAML() (any, error) {
	if !o.HasValue() {
		return nil, nil
	}
	return o.value, nil
}
