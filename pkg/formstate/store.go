package formstate

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// Store owns the state of every declared field plus the errors that could
// not be attributed to one. Fields are fixed at construction. A Store is not
// safe for concurrent use; callers sharing one must synchronise externally.
type Store struct {
	order      []string
	fields     map[string]*Field
	rootErrors []FormError
	logger     *slog.Logger
}

// New materialises a Store from the schema. Declarations with an empty or
// duplicate key, a duplicate output name, or (under NamePolicyMatchKey) a
// Name differing from the key fail with a *SchemaError.
func New(schema Schema, opts ...Option) (*Store, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	store := &Store{
		order:  make([]string, 0, len(schema)),
		fields: make(map[string]*Field, len(schema)),
		logger: logger,
	}

	names := make(map[string]string, len(schema))
	for _, decl := range schema {
		key := decl.Key
		if strings.TrimSpace(key) == "" {
			return nil, &SchemaError{Reason: "field key is required"}
		}
		if _, exists := store.fields[key]; exists {
			return nil, &SchemaError{Key: key, Reason: "duplicate field key"}
		}
		if decl.Name != "" && decl.Name != key && cfg.namePolicy == NamePolicyMatchKey {
			return nil, &SchemaError{
				Key:    key,
				Reason: fmt.Sprintf("name %q must be equal to the key when specified", decl.Name),
			}
		}
		field := materialise(decl)
		if owner, taken := names[field.Name]; taken {
			return nil, &SchemaError{
				Key:    key,
				Reason: fmt.Sprintf("output name %q is already used by field %q", field.Name, owner),
			}
		}
		names[field.Name] = key
		store.fields[key] = field
		store.order = append(store.order, key)
	}

	return store, nil
}

// MustNew panics if the schema is invalid. Useful for package level forms.
func MustNew(schema Schema, opts ...Option) *Store {
	store, err := New(schema, opts...)
	if err != nil {
		panic(err)
	}
	return store
}

func materialise(decl FieldSchema) *Field {
	field := &Field{
		Key:         decl.Key,
		Name:        decl.Name,
		Label:       decl.Label,
		Kind:        decl.Kind,
		Required:    decl.Required,
		Rules:       append(Rules{}, decl.Rules...),
		Transformer: decl.Transformer,
		Errors:      []FormError{},
		choices:     append([]Choice(nil), decl.Choices...),
		choicesFunc: decl.ChoicesFunc,
	}
	if field.Name == "" {
		field.Name = decl.Key
	}
	if field.Kind == "" {
		field.Kind = DefaultKind
	}
	if decl.ErrorPaths != nil {
		field.ErrorPaths = append([]Path{}, decl.ErrorPaths...)
	}

	value := decl.Value
	if value == nil {
		if decl.Transformer != nil {
			value = decl.Transformer.ToModelValue(nil)
		}
		if value == nil {
			value = ""
		}
	}
	field.InitialValue = value
	field.Value = value
	return field
}

// Keys returns the field keys in declaration order.
func (s *Store) Keys() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.order...)
}

// Field returns a snapshot of the field state.
func (s *Store) Field(key string) (Field, error) {
	field, err := s.lookup(key, "read")
	if err != nil {
		return Field{}, err
	}
	return field.snapshot(), nil
}

// Get returns the current domain value of the field.
func (s *Store) Get(key string) (any, error) {
	field, err := s.lookup(key, "get value of")
	if err != nil {
		return nil, err
	}
	return field.Value, nil
}

// Set overwrites the current domain value. The transformer is not applied and
// neither the initial value nor the errors are touched.
func (s *Store) Set(key string, value any) error {
	field, err := s.lookup(key, "set value of")
	if err != nil {
		return err
	}
	field.Value = value
	return nil
}

// SetOutput converts an external representation through the field's
// transformer and stores the result as the current value.
func (s *Store) SetOutput(key string, value any) error {
	field, err := s.lookup(key, "set value of")
	if err != nil {
		return err
	}
	field.Value = field.toModel(value)
	return nil
}

// Initialise establishes the baseline state from external values. Each known
// key is converted to its domain form and written to both the initial and the
// current value. Unknown keys are logged and skipped.
func (s *Store) Initialise(values map[string]any) {
	if s == nil || len(values) == 0 {
		return
	}
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		field, ok := s.fields[key]
		if !ok {
			s.logger.Warn("formstate: skipping unknown field during initialise", "key", key)
			continue
		}
		value := field.toModel(values[key])
		field.InitialValue = value
		field.Value = value
	}
}

// Data projects every field into its output name and external form. The map
// is rebuilt on every call.
func (s *Store) Data() map[string]any {
	if s == nil {
		return nil
	}
	out := make(map[string]any, len(s.order))
	for _, key := range s.order {
		field := s.fields[key]
		out[field.Name] = field.toOutput(field.Value)
	}
	return out
}

// HasChanged reports whether any field's current value differs from its
// initial value.
func (s *Store) HasChanged() bool {
	if s == nil {
		return false
	}
	for _, key := range s.order {
		if s.fields[key].HasChanged() {
			return true
		}
	}
	return false
}

// Changed lists the keys of fields whose value differs from the initial one.
func (s *Store) Changed() []string {
	if s == nil {
		return nil
	}
	var out []string
	for _, key := range s.order {
		if s.fields[key].HasChanged() {
			out = append(out, key)
		}
	}
	return out
}

// HasErrors reports root errors or any field error.
func (s *Store) HasErrors() bool {
	if s == nil {
		return false
	}
	if len(s.rootErrors) > 0 {
		return true
	}
	for _, key := range s.order {
		if len(s.fields[key].Errors) > 0 {
			return true
		}
	}
	return false
}

// RootErrors returns errors not attributed to any field.
func (s *Store) RootErrors() []FormError {
	if s == nil {
		return nil
	}
	return append([]FormError{}, s.rootErrors...)
}

// Errors returns the field errors keyed by field key. Fields without errors
// are omitted.
func (s *Store) Errors() map[string][]FormError {
	if s == nil {
		return nil
	}
	out := make(map[string][]FormError)
	for _, key := range s.order {
		if errs := s.fields[key].Errors; len(errs) > 0 {
			out[key] = append([]FormError(nil), errs...)
		}
	}
	return out
}

// ClearErrors empties the root errors and every field's errors.
func (s *Store) ClearErrors() {
	if s == nil {
		return
	}
	for _, key := range s.order {
		s.fields[key].Errors = []FormError{}
	}
	s.rootErrors = []FormError{}
}

// Choices returns the selectable values declared for the field.
func (s *Store) Choices(key string) ([]Choice, error) {
	field, err := s.lookup(key, "list choices of")
	if err != nil {
		return nil, err
	}
	if field.choicesFunc != nil {
		return field.choicesFunc(), nil
	}
	return append([]Choice(nil), field.choices...), nil
}

func (s *Store) lookup(key, op string) (*Field, error) {
	if s == nil {
		return nil, &UnknownFieldError{Key: key, Op: op}
	}
	field, ok := s.fields[key]
	if !ok {
		return nil, &UnknownFieldError{Key: key, Op: op}
	}
	return field, nil
}
