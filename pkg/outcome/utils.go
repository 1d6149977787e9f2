package outcome

import (
	"reflect"
	"runtime"
)

// isNil reports whether v is nil or a nil value of a nilable kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan,
		reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// funcName returns the symbol name of a function value, e.g.
// "github.com/acme/app/users.isAdult" or "main.main.func1" for closures.
func funcName(fn any) string {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return "<nil>"
	}
	if f := runtime.FuncForPC(rv.Pointer()); f != nil {
		return f.Name()
	}
	return rv.Type().String()
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
