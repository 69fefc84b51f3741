package schemafile

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formstate/pkg/formstate"
)

type encodedDocument struct {
	Title       string         `yaml:"title,omitempty"`
	Description string         `yaml:"description,omitempty"`
	StrictNames bool           `yaml:"strictNames,omitempty"`
	Fields      []encodedField `yaml:"fields"`
}

type encodedField struct {
	Key         string             `yaml:"key"`
	Name        string             `yaml:"name,omitempty"`
	Label       string             `yaml:"label"`
	Kind        string             `yaml:"kind,omitempty"`
	Value       any                `yaml:"value,omitempty"`
	Required    bool               `yaml:"required,omitempty"`
	Rules       any                `yaml:"rules,omitempty"`
	ErrorPaths  []any              `yaml:"errorPaths,omitempty"`
	Transformer string             `yaml:"transformer,omitempty"`
	Choices     []formstate.Choice `yaml:"choices,omitempty"`
}

// Encode writes def as a YAML schema document. transformers maps field keys
// to registry names; fields with a transformer but no name are rejected since
// the document could not be read back. Default values are written in
// external form.
func Encode(def *Definition, transformers map[string]string) ([]byte, error) {
	if def == nil {
		return nil, errors.New("schemafile: definition is nil")
	}
	out := encodedDocument{
		Title:       def.Title,
		Description: def.Description,
		StrictNames: def.StrictNames,
		Fields:      make([]encodedField, 0, len(def.Schema)),
	}
	for _, decl := range def.Schema {
		field := encodedField{
			Key:      decl.Key,
			Label:    decl.Label,
			Kind:     decl.Kind,
			Value:    decl.Value,
			Required: decl.Required,
			Rules:    encodeRules(decl.Rules),
			Choices:  decl.Choices,
		}
		if decl.Name != decl.Key {
			field.Name = decl.Name
		}
		if decl.Transformer != nil {
			name := transformers[decl.Key]
			if name == "" {
				return nil, fmt.Errorf("schemafile: field %q has a transformer without a registry name", decl.Key)
			}
			field.Transformer = name
			if decl.Value != nil {
				field.Value = decl.Transformer.ToOutputValue(decl.Value)
			}
		}
		for _, path := range decl.ErrorPaths {
			switch typed := path.(type) {
			case formstate.SegmentPath:
				field.ErrorPaths = append(field.ErrorPaths, []string(typed))
			case formstate.DottedPath:
				field.ErrorPaths = append(field.ErrorPaths, string(typed))
			case formstate.PointerPath:
				field.ErrorPaths = append(field.ErrorPaths, string(typed))
			case nil:
			default:
				field.ErrorPaths = append(field.ErrorPaths, typed.Canonical())
			}
		}
		out.Fields = append(out.Fields, field)
	}
	return yaml.Marshal(out)
}

func encodeRules(rules formstate.Rules) any {
	if len(rules) == 0 {
		return nil
	}
	for _, rule := range rules {
		if rule.Params != nil {
			mapped := make(map[string]any, len(rules))
			for _, r := range rules {
				if r.Params == nil {
					mapped[r.Name] = true
					continue
				}
				mapped[r.Name] = r.Params
			}
			return mapped
		}
	}
	return rules.Names()
}
