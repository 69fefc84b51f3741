// Package cleaninput normalises raw user input before it reaches a form
// store: strings are trimmed and blank strings become nil, recursively.
// Markup can optionally be stripped with a bluemonday policy first.
package cleaninput

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
)

type options struct {
	policy *bluemonday.Policy
}

// Option configures Clean.
type Option func(*options)

// WithSanitizer runs every string through policy before trimming.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(o *options) {
		o.policy = policy
	}
}

// WithStrictHTML strips all markup using bluemonday's strict policy.
func WithStrictHTML() Option {
	return WithSanitizer(strictSanitizer())
}

func strictSanitizer() *bluemonday.Policy {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}

// Clean returns a cleaned copy of input. Nested map[string]any values and
// slices are walked; other values are kept as is. The input is not mutated.
func Clean(input map[string]any, opts ...Option) map[string]any {
	if input == nil {
		return nil
	}
	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cleanMap(input, cfg)
}

// String applies the cleaning rules to a single string. The second result is
// false when the string is blank and should be treated as nil.
func String(value string, opts ...Option) (string, bool) {
	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	cleaned := cleanString(value, cfg)
	if cleaned == nil {
		return "", false
	}
	return cleaned.(string), true
}

func cleanMap(input map[string]any, cfg options) map[string]any {
	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = cleanValue(value, cfg)
	}
	return out
}

func cleanValue(value any, cfg options) any {
	switch typed := value.(type) {
	case string:
		return cleanString(typed, cfg)
	case map[string]any:
		return cleanMap(typed, cfg)
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = cleanValue(item, cfg)
		}
		return out
	default:
		return value
	}
}

func cleanString(value string, cfg options) any {
	if cfg.policy != nil {
		value = cfg.policy.Sanitize(value)
	}
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return trimmed
}
