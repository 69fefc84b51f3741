package formstate

import (
	"sort"
)

// DefaultKind is applied to declarations that do not name an input kind.
const DefaultKind = "text"

// Common input kinds. Kind is descriptive only and any string is accepted.
const (
	KindText          = "text"
	KindEmail         = "email"
	KindPassword      = "password"
	KindNumber        = "number"
	KindDate          = "date"
	KindDateTimeLocal = "datetime-local"
	KindTextArea      = "textarea"
	KindSelect        = "select"
	KindCheckbox      = "checkbox"
	KindHidden        = "hidden"
)

// FormError is a validation message attached to a field or to the form root.
// Value carries the offending value when the reporter supplied one.
type FormError struct {
	Message string `json:"message" yaml:"message"`
	Value   any    `json:"value,omitempty" yaml:"value,omitempty"`
}

// Rule is one declared validation rule. The store never evaluates rules; it
// keeps them for renderers and external validators.
type Rule struct {
	Name   string `json:"name" yaml:"name"`
	Params any    `json:"params,omitempty" yaml:"params,omitempty"`
}

// Rules is the ordered rule declaration of a field.
type Rules []Rule

// RuleNames declares parameterless rules in order.
func RuleNames(names ...string) Rules {
	out := make(Rules, 0, len(names))
	for _, name := range names {
		out = append(out, Rule{Name: name})
	}
	return out
}

// RuleMap declares rules from a name to parameters mapping, ordered by name.
func RuleMap(rules map[string]any) Rules {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make(Rules, 0, len(names))
	for _, name := range names {
		out = append(out, Rule{Name: name, Params: rules[name]})
	}
	return out
}

// Names returns the rule names in declaration order.
func (r Rules) Names() []string {
	out := make([]string, 0, len(r))
	for _, rule := range r {
		out = append(out, rule.Name)
	}
	return out
}

// Choice is a selectable value offered by select-like fields.
type Choice struct {
	Key   string `json:"key,omitempty" yaml:"key,omitempty"`
	Value any    `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// FieldSchema declares one input. Only Key and Label are required; the rest
// fall back to the documented defaults when the store is built.
type FieldSchema struct {
	Key   string
	Label string
	// Name is the output name used by Data. Empty means Key.
	Name string
	// Kind defaults to DefaultKind.
	Kind string
	// Value is the declared default in domain form.
	Value    any
	Required bool
	Rules    Rules
	// ErrorPaths lists the violation paths routed to this field. Nil means
	// DefaultErrorPaths(Key).
	ErrorPaths  []Path
	Transformer Transformer
	Choices     []Choice
	// ChoicesFunc computes choices lazily and wins over Choices when set.
	ChoicesFunc func() []Choice
}

// Schema is an ordered list of declarations. Order drives Keys and prompt
// iteration only.
type Schema []FieldSchema

// SchemaFromMap builds a Schema from a key to declaration mapping, ordered by
// key. Map keys overwrite any Key set on the declaration.
func SchemaFromMap(fields map[string]FieldSchema) Schema {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make(Schema, 0, len(keys))
	for _, key := range keys {
		decl := fields[key]
		decl.Key = key
		out = append(out, decl)
	}
	return out
}

// Field is the live state of one declared input. Values returned by the
// store are snapshots; mutate state through Store methods.
type Field struct {
	Key          string
	Name         string
	Label        string
	Kind         string
	Required     bool
	Rules        Rules
	ErrorPaths   []Path
	Transformer  Transformer
	InitialValue any
	Value        any
	Errors       []FormError

	choices     []Choice
	choicesFunc func() []Choice
}

// EffectivePaths returns the declared error paths or the defaults.
func (f *Field) EffectivePaths() []Path {
	if f.ErrorPaths != nil {
		return f.ErrorPaths
	}
	return DefaultErrorPaths(f.Key)
}

// HasChanged reports whether the current value differs from the initial one.
func (f *Field) HasChanged() bool {
	return !valuesEqual(f.Value, f.InitialValue)
}

func (f *Field) snapshot() Field {
	clone := *f
	clone.Rules = append(Rules{}, f.Rules...)
	if f.ErrorPaths != nil {
		clone.ErrorPaths = append([]Path(nil), f.ErrorPaths...)
	}
	clone.Errors = append([]FormError{}, f.Errors...)
	clone.choices = append([]Choice(nil), f.choices...)
	return clone
}

func (f *Field) toModel(value any) any {
	if f.Transformer == nil {
		return value
	}
	return f.Transformer.ToModelValue(value)
}

func (f *Field) toOutput(value any) any {
	if f.Transformer == nil {
		return value
	}
	return f.Transformer.ToOutputValue(value)
}
