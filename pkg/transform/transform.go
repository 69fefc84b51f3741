package transform

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-formstate/pkg/formstate"
)

// Identity returns a transformer that passes values through unchanged.
func Identity() formstate.Transformer {
	return formstate.TransformerFuncs{}
}

// RFC3339 converts between RFC3339 strings and time.Time. Output is
// normalised to UTC with trailing zero fractions trimmed. Unparseable input
// and nil become the zero time, which is emitted as "".
func RFC3339() formstate.Transformer {
	return timeTransformer{parse: parseRFC3339, format: formatRFC3339Canonical}
}

// Date converts between strings in the given layout and time.Time, for
// example Date(time.DateOnly) for "date" inputs.
func Date(layout string) formstate.Transformer {
	return timeTransformer{
		parse: func(s string) (time.Time, error) {
			return time.Parse(layout, s)
		},
		format: func(t time.Time) string {
			return t.Format(layout)
		},
	}
}

type timeTransformer struct {
	parse  func(string) (time.Time, error)
	format func(time.Time) string
}

func (t timeTransformer) ToModelValue(input any) any {
	switch typed := input.(type) {
	case time.Time:
		return typed
	case *time.Time:
		if typed != nil {
			return *typed
		}
	case string:
		trimmed := strings.TrimSpace(typed)
		if trimmed == "" {
			return time.Time{}
		}
		parsed, err := t.parse(trimmed)
		if err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func (t timeTransformer) ToOutputValue(value any) any {
	instant, ok := value.(time.Time)
	if !ok || instant.IsZero() {
		return ""
	}
	return t.format(instant)
}

func parseRFC3339(s string) (time.Time, error) {
	// RFC3339Nano accepts inputs without fractional seconds as well.
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func formatRFC3339Canonical(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// Number converts numeric strings and Go numbers to float64. The output is
// the shortest decimal string; unparseable input becomes 0.
func Number() formstate.Transformer {
	return formstate.TransformerFuncs{
		ToModel: func(input any) any {
			value, _ := toFloat(input)
			return value
		},
		ToOutput: func(value any) any {
			number, ok := toFloat(value)
			if !ok {
				return ""
			}
			return strconv.FormatFloat(number, 'f', -1, 64)
		},
	}
}

// Integer converts numeric strings and Go numbers to int, truncating
// fractions. The output is the decimal string.
func Integer() formstate.Transformer {
	return formstate.TransformerFuncs{
		ToModel: func(input any) any {
			value, _ := toFloat(input)
			return int(math.Trunc(value))
		},
		ToOutput: func(value any) any {
			number, ok := toFloat(value)
			if !ok {
				return ""
			}
			return strconv.Itoa(int(math.Trunc(number)))
		},
	}
}

func toFloat(input any) (float64, bool) {
	switch typed := input.(type) {
	case float64:
		return typed, true
	case float32:
		return float64(typed), true
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	case fmt.Stringer:
		return toFloat(typed.String())
	case nil:
		return 0, false
	}

	// Remaining sized integer kinds, including named types over them.
	value := reflect.ValueOf(input)
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(value.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(value.Uint()), true
	case reflect.Float32, reflect.Float64:
		return value.Float(), true
	default:
		return 0, false
	}
}

// Bool converts checkbox style inputs to bool. Strings accepted by
// strconv.ParseBool plus "on"/"yes" are true; everything else false. Output
// is "true" or "false".
func Bool() formstate.Transformer {
	return formstate.TransformerFuncs{
		ToModel: func(input any) any {
			return toBool(input)
		},
		ToOutput: func(value any) any {
			return strconv.FormatBool(toBool(value))
		},
	}
}

func toBool(input any) bool {
	switch typed := input.(type) {
	case bool:
		return typed
	case string:
		switch strings.ToLower(strings.TrimSpace(typed)) {
		case "on", "yes":
			return true
		}
		parsed, err := strconv.ParseBool(strings.TrimSpace(typed))
		return err == nil && parsed
	default:
		return false
	}
}

// CommaList converts a comma separated string to a []string of trimmed,
// non-empty items and back.
func CommaList() formstate.Transformer {
	return formstate.TransformerFuncs{
		ToModel: func(input any) any {
			switch typed := input.(type) {
			case []string:
				return append([]string{}, typed...)
			case []any:
				out := make([]string, 0, len(typed))
				for _, item := range typed {
					if item == nil {
						continue
					}
					out = append(out, fmt.Sprint(item))
				}
				return out
			case string:
				out := []string{}
				for _, part := range strings.Split(typed, ",") {
					if trimmed := strings.TrimSpace(part); trimmed != "" {
						out = append(out, trimmed)
					}
				}
				return out
			default:
				return []string{}
			}
		},
		ToOutput: func(value any) any {
			items, _ := value.([]string)
			return strings.Join(items, ",")
		},
	}
}
