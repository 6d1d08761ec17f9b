package viewfmt

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrInvalidArgument reports a helper call outside its input domain.
var ErrInvalidArgument = errors.New("invalid argument")

// Softwrap joins items with sep, perLine items to a line. Every line but the
// last ends with lineEnding and a newline, and lines after the first are
// indented by indent spaces.
//
//	Softwrap([]string{"a", "b", "c", "d"}, 2, ",", ";", 2) == "a,b;\n  c,d"
func Softwrap(items []string, perLine int, sep, lineEnding string, indent int) (string, error) {
	if perLine <= 0 {
		return "", fmt.Errorf("softwrap per line %d: %w", perLine, ErrInvalidArgument)
	}
	if indent < 0 {
		return "", fmt.Errorf("softwrap indent %d: %w", indent, ErrInvalidArgument)
	}
	count := len(items)
	if count == 0 {
		return "", nil
	}

	breakLine := lineEnding + "\n" + strings.Repeat(" ", indent)
	var b strings.Builder
	for i, item := range items {
		b.WriteString(item)

		last := i+1 == count
		endsLine := (i+1)%perLine == 0
		switch {
		case i == 0 && count > 1 && perLine == 1:
			b.WriteString(breakLine)
		case !last && !endsLine:
			b.WriteString(sep)
		case i > 0 && !last && endsLine:
			b.WriteString(breakLine)
		}
	}
	return b.String(), nil
}

// SoftwrapValues is Softwrap over any slice or array, rendering each element
// with fmt.Sprint. A nil value wraps to the empty string.
func SoftwrapValues(items any, perLine int, sep, lineEnding string, indent int) (string, error) {
	values, err := stringsOf(items)
	if err != nil {
		return "", err
	}
	return Softwrap(values, perLine, sep, lineEnding, indent)
}

func stringsOf(items any) ([]string, error) {
	switch typed := items.(type) {
	case nil:
		return nil, nil
	case []string:
		return typed, nil
	}
	rv := reflect.ValueOf(items)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("softwrap items of type %T: %w", items, ErrInvalidArgument)
	}
	values := make([]string, rv.Len())
	for i := range values {
		values[i] = fmt.Sprint(rv.Index(i).Interface())
	}
	return values, nil
}
