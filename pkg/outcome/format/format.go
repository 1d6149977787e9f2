package format

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	NoMessageAvailable = "No message available"
	ErrorPrefix        = "Unable to format message, reason: "
)

var errMalformed = errors.New("template does not match its arguments")

// fmt reports operand problems inline, e.g. %!t(string=x), %!d(MISSING),
// %!(EXTRA string=x), %!v(PANIC=String method: boom).
var badVerb = regexp.MustCompile(`%!.?\((?:[^()]|\([^()]*\))*\)`)

// Format applies args to template with fmt.Sprintf semantics.
// Without args the template is returned untouched, so a literal % in a
// free-form message is never interpreted.
func Format(template string, args ...any) string {
	if template == "" {
		return NoMessageAvailable
	}
	if len(args) == 0 {
		return template
	}

	formatted, err := sprintf(template, args...)
	if err != nil {
		return ErrorPrefix + err.Error()
	}
	return formatted
}

// sprintf renders template twice. The first pass replaces every argument
// with an operand that prints nothing but a marker of its own when its verb
// does not fit the argument, so any %!...(...) left in that output was put
// there by fmt or an operand and never by argument text. Only a clean first
// pass renders the real arguments.
func sprintf(template string, args ...any) (res string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	operands := make([]any, len(args))
	for i, arg := range args {
		operands[i] = operandOf(arg)
	}

	res = fmt.Sprintf(template, args...)
	if !badVerb.MatchString(fmt.Sprintf(template, operands...)) {
		return res, nil
	}

	if markers := badVerb.FindAllString(res, -1); len(markers) > 0 {
		return "", errors.New(strings.Join(markers, ", "))
	}
	return "", errMalformed
}
