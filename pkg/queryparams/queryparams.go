// Package queryparams flattens form output data into query string
// parameters.
package queryparams

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
)

// FromData converts form data into parameters. Scalars are stringified,
// slices and arrays are joined with ",", and nil or empty values are omitted.
// Every key is prefixed with prefix.
func FromData(data map[string]any, prefix string) map[string]string {
	out := make(map[string]string, len(data))
	for key, value := range data {
		if encoded, ok := encodeValue(value); ok {
			out[prefix+key] = encoded
		}
	}
	return out
}

// Values is FromData returned as url.Values.
func Values(data map[string]any, prefix string) url.Values {
	values := make(url.Values, len(data))
	for key, value := range FromData(data, prefix) {
		values.Set(key, value)
	}
	return values
}

// Encode renders the parameters as a query string sorted by key.
func Encode(data map[string]any, prefix string) string {
	return Values(data, prefix).Encode()
}

func encodeValue(value any) (string, bool) {
	if value == nil {
		return "", false
	}
	switch typed := value.(type) {
	case string:
		return typed, typed != ""
	case []string:
		return joinNonEmpty(typed, len(typed))
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return "", false
		}
		items := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			items = append(items, stringify(rv.Index(i).Interface()))
		}
		return joinNonEmpty(items, rv.Len())
	case reflect.Pointer:
		if rv.IsNil() {
			return "", false
		}
		return encodeValue(rv.Elem().Interface())
	default:
		return stringify(value), true
	}
}

func joinNonEmpty(items []string, length int) (string, bool) {
	if length == 0 {
		return "", false
	}
	return strings.Join(items, ","), true
}

func stringify(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}
