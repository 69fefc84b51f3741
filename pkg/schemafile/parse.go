package schemafile

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formstate/pkg/formstate"
	"github.com/goliatone/go-formstate/pkg/transform"
)

// Definition is a parsed schema document.
type Definition struct {
	Title       string
	Description string
	// StrictNames requests NamePolicyMatchKey for stores built from it.
	StrictNames bool
	Schema      formstate.Schema
}

// NewStore builds a store from the definition. StrictNames is applied
// before opts so callers can override it.
func (d *Definition) NewStore(opts ...formstate.Option) (*formstate.Store, error) {
	if d == nil {
		return nil, errors.New("schemafile: definition is nil")
	}
	all := make([]formstate.Option, 0, len(opts)+1)
	if d.StrictNames {
		all = append(all, formstate.WithStrictNames())
	}
	all = append(all, opts...)
	return formstate.New(d.Schema, all...)
}

type parseOptions struct {
	transformers *transform.Registry
	logger       *slog.Logger
}

// ParseOption configures Parse.
type ParseOption func(*parseOptions)

// WithTransformers resolves transformer names against reg instead of the
// built-in registry.
func WithTransformers(reg *transform.Registry) ParseOption {
	return func(o *parseOptions) {
		if reg != nil {
			o.transformers = reg
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) ParseOption {
	return func(o *parseOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

var (
	compiledOnce sync.Once
	compiled     *jsonschema.Schema
	compileErr   error
)

func documentSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("formstate-schema.json", strings.NewReader(metaSchema)); err != nil {
			compileErr = fmt.Errorf("schemafile: add meta schema: %w", err)
			return
		}
		compiled, compileErr = compiler.Compile("formstate-schema.json")
	})
	return compiled, compileErr
}

// Parse validates and decodes a document. JSON documents are accepted since
// they are valid YAML.
func Parse(doc Document, opts ...ParseOption) (*Definition, error) {
	cfg := parseOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.transformers == nil {
		cfg.transformers = transform.NewRegistry()
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("schemafile: document is empty")
	}

	if err := validateShape(raw, doc.Location()); err != nil {
		return nil, err
	}

	var decoded document
	if err := yaml.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("schemafile: decode %s: %w", doc.Location(), err)
	}

	def := &Definition{
		Title:       decoded.Title,
		Description: decoded.Description,
		StrictNames: decoded.StrictNames,
		Schema:      make(formstate.Schema, 0, len(decoded.Fields)),
	}
	for idx, field := range decoded.Fields {
		decl, err := field.toSchema(cfg.transformers)
		if err != nil {
			return nil, &ValidationError{
				Location: doc.Location(),
				Issues:   []Issue{{Path: fmt.Sprintf("/fields/%d", idx), Message: err.Error()}},
			}
		}
		def.Schema = append(def.Schema, decl)
	}
	cfg.logger.Debug("schemafile: parsed document", "location", doc.Location(), "fields", len(def.Schema))
	return def, nil
}

// ParseBytes is Parse for an in-memory payload.
func ParseBytes(raw []byte, opts ...ParseOption) (*Definition, error) {
	doc, err := NewDocument(SourceFromFS("inline"), raw)
	if err != nil {
		return nil, err
	}
	return Parse(doc, opts...)
}

func validateShape(raw []byte, location string) error {
	var generic any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return fmt.Errorf("schemafile: decode %s: %w", location, err)
	}
	// Round trip through JSON so the validator only sees JSON value types.
	encoded, err := json.Marshal(generic)
	if err != nil {
		return fmt.Errorf("schemafile: normalise %s: %w", location, err)
	}
	var instance any
	if err := json.Unmarshal(encoded, &instance); err != nil {
		return fmt.Errorf("schemafile: normalise %s: %w", location, err)
	}

	schema, err := documentSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(instance); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return &ValidationError{Location: location, Issues: collectIssues(validationErr)}
		}
		return fmt.Errorf("schemafile: validate %s: %w", location, err)
	}
	return nil
}

func collectIssues(err *jsonschema.ValidationError) []Issue {
	var issues []Issue
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 && e.Message != "" {
			issues = append(issues, Issue{Path: e.InstanceLocation, Message: e.Message})
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(err)
	if len(issues) == 0 {
		issues = append(issues, Issue{Path: err.InstanceLocation, Message: err.Message})
	}
	return issues
}

type document struct {
	Title       string          `yaml:"title"`
	Description string          `yaml:"description"`
	StrictNames bool            `yaml:"strictNames"`
	Fields      []fieldDocument `yaml:"fields"`
}

type fieldDocument struct {
	Key         string             `yaml:"key"`
	Name        string             `yaml:"name"`
	Label       string             `yaml:"label"`
	Kind        string             `yaml:"kind"`
	Value       any                `yaml:"value"`
	Required    bool               `yaml:"required"`
	Rules       rulesDocument      `yaml:"rules"`
	ErrorPaths  []pathDocument     `yaml:"errorPaths"`
	Transformer string             `yaml:"transformer"`
	Choices     []formstate.Choice `yaml:"choices"`
}

func (f fieldDocument) toSchema(reg *transform.Registry) (formstate.FieldSchema, error) {
	decl := formstate.FieldSchema{
		Key:      f.Key,
		Name:     f.Name,
		Label:    f.Label,
		Kind:     f.Kind,
		Value:    f.Value,
		Required: f.Required,
		Rules:    formstate.Rules(f.Rules),
		Choices:  f.Choices,
	}
	if f.ErrorPaths != nil {
		decl.ErrorPaths = make([]formstate.Path, 0, len(f.ErrorPaths))
		for _, path := range f.ErrorPaths {
			decl.ErrorPaths = append(decl.ErrorPaths, path.path)
		}
	}
	if name := strings.TrimSpace(f.Transformer); name != "" {
		transformer, err := reg.Get(name)
		if err != nil {
			return formstate.FieldSchema{}, fmt.Errorf("field %q: %w", f.Key, err)
		}
		decl.Transformer = transformer
		if decl.Value != nil {
			// Declared defaults are written in external form.
			decl.Value = transformer.ToModelValue(decl.Value)
		}
	}
	return decl, nil
}

// rulesDocument accepts either a list of rule names or a mapping of rule
// names to parameters.
type rulesDocument formstate.Rules

func (r *rulesDocument) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var names []string
		if err := node.Decode(&names); err != nil {
			return err
		}
		*r = rulesDocument(formstate.RuleNames(names...))
	case yaml.MappingNode:
		var mapped map[string]any
		if err := node.Decode(&mapped); err != nil {
			return err
		}
		*r = rulesDocument(formstate.RuleMap(mapped))
	default:
		return fmt.Errorf("rules must be a list or a mapping (line %d)", node.Line)
	}
	return nil
}

// pathDocument accepts a dotted string, a JSON pointer string, or a list of
// segments.
type pathDocument struct {
	path formstate.Path
}

func (p *pathDocument) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		p.path = formstate.ParsePath(node.Value)
	case yaml.SequenceNode:
		var segments []string
		if err := node.Decode(&segments); err != nil {
			return err
		}
		p.path = formstate.SegmentPath(segments)
	default:
		return fmt.Errorf("error path must be a string or a list (line %d)", node.Line)
	}
	return nil
}
