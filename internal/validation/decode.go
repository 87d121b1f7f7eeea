package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// DecodeViolation translates a json type mismatch into a field violation, so
// a well-formed body carrying a wrong-typed field (a numeric name, a quoted
// quantity) is reported like any other failing field instead of as a parse
// failure. Anything that is not a type mismatch stays a parse failure.
func DecodeViolation(err error) (Violation, bool) {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Field == "" {
		return Violation{}, false
	}

	return Violation{
		Field:   typeErr.Field,
		Message: fmt.Sprintf("%s must be %s", leafField(typeErr.Field), jsonTypeName(typeErr.Type)),
	}, true
}

func leafField(path string) string {
	if idx := strings.LastIndex(path, "."); idx >= 0 {
		return path[idx+1:]
	}
	return path
}

func jsonTypeName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return "an object"
	}
}
