package format

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

// Verbs fmt accepts for method-less values of the basic kinds.
const (
	boolVerbs   = "tv"
	intVerbs    = "bcdoOqxXUv"
	floatVerbs  = "bgGeEfFxXv"
	stringVerbs = "sqxXv"
	bytesVerbs  = "sqxX" + intVerbs
)

// operand stands in for an argument during the checking pass.
type operand struct {
	arg any
}

func (o *operand) Format(st fmt.State, verb rune) {
	if !fits(o.arg, fmt.FormatString(st, verb), verb) {
		writeMismatch(st, verb)
	}
}

// intOperand stands in for integers, which may also feed a * width or
// precision. fmt only accepts those from values of an integer kind.
type intOperand int

func (intOperand) Format(st fmt.State, verb rune) {
	if !strings.ContainsRune(intVerbs, verb) {
		writeMismatch(st, verb)
	}
}

func writeMismatch(st fmt.State, verb rune) {
	fmt.Fprintf(st, "%%!%c(MISMATCH)", verb)
}

func operandOf(arg any) any {
	if arg == nil {
		return &operand{}
	}

	v := reflect.ValueOf(arg)
	if v.Type().NumMethod() == 0 {
		switch v.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return intOperand(v.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			if v.Uint() <= math.MaxInt {
				return intOperand(v.Uint())
			}
		}
	}
	return &operand{arg: arg}
}

// fits reports whether directive renders arg without a fmt diagnostic.
func fits(arg any, directive string, verb rune) bool {
	if arg == nil {
		return verb == 'v'
	}

	t := reflect.TypeOf(arg)
	if t.NumMethod() == 0 {
		if verbs, ok := basicVerbs(t); ok {
			return strings.ContainsRune(verbs, verb)
		}
	}

	rendered := fmt.Sprintf(directive, arg)
	if t.NumMethod() > 0 && strings.HasPrefix(rendered, "%!"+string(verb)+"(PANIC=") {
		return false
	}
	// Composite values apply the verb to their elements; a diagnostic the
	// plain %v rendering does not have came from the verb.
	return len(badVerb.FindAllString(rendered, -1)) <= len(badVerb.FindAllString(fmt.Sprint(arg), -1))
}

func basicVerbs(t reflect.Type) (string, bool) {
	switch t.Kind() {
	case reflect.Bool:
		return boolVerbs, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return intVerbs, true
	case reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return floatVerbs, true
	case reflect.String:
		return stringVerbs, true
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 && t.Elem().NumMethod() == 0 {
			return bytesVerbs, true
		}
	}
	return "", false
}
