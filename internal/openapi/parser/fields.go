package parser

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formstate/pkg/formstate"
	pkgopenapi "github.com/goliatone/go-formstate/pkg/openapi"
	"github.com/goliatone/go-formstate/pkg/transform"
)

var builtins = transform.NewRegistry()

// fieldsFromSchema maps the top-level properties of an object schema to
// declarations sorted by property name. Read-only and nested object
// properties are skipped. The second result maps field keys to the registry
// name of their transformer.
func fieldsFromSchema(schema *openapi3.Schema) (formstate.Schema, map[string]string) {
	transformers := map[string]string{}
	if schema == nil || len(schema.Properties) == 0 {
		return formstate.Schema{}, transformers
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(formstate.Schema, 0, len(names))
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil || ref.Value.ReadOnly {
			continue
		}
		if firstSchemaType(ref.Value.Type) == openapi3.TypeObject {
			continue
		}
		decl, transformerName := fieldFromProperty(name, ref.Value, required[name])
		if transformerName != "" {
			transformers[name] = transformerName
		}
		out = append(out, decl)
	}
	return out, transformers
}

func fieldFromProperty(name string, prop *openapi3.Schema, required bool) (formstate.FieldSchema, string) {
	decl := formstate.FieldSchema{
		Key:      name,
		Label:    prop.Title,
		Required: required,
		Rules:    rulesFor(prop, required),
	}
	if decl.Label == "" {
		decl.Label = humanise(name)
	}

	var transformerName string
	decl.Kind, transformerName = kindFor(prop)
	if transformerName != "" {
		decl.Transformer, _ = builtins.Get(transformerName)
	}
	if len(prop.Enum) > 0 {
		decl.Kind = formstate.KindSelect
		decl.Choices = make([]formstate.Choice, 0, len(prop.Enum))
		for _, value := range prop.Enum {
			label := fmt.Sprint(value)
			decl.Choices = append(decl.Choices, formstate.Choice{Value: value, Label: label})
		}
	}

	if prop.Default != nil {
		decl.Value = prop.Default
		if decl.Transformer != nil {
			decl.Value = decl.Transformer.ToModelValue(prop.Default)
		}
	}

	if paths := errorPathsExtension(prop.Extensions); paths != nil {
		decl.ErrorPaths = paths
	}
	return decl, transformerName
}

// kindFor picks the input kind and the registry name of the transformer
// for a property.
func kindFor(prop *openapi3.Schema) (string, string) {
	switch firstSchemaType(prop.Type) {
	case openapi3.TypeBoolean:
		return formstate.KindCheckbox, transform.NameBool
	case openapi3.TypeNumber:
		return formstate.KindNumber, transform.NameNumber
	case openapi3.TypeInteger:
		return formstate.KindNumber, transform.NameInteger
	case openapi3.TypeArray:
		return formstate.KindText, transform.NameCommaList
	}

	switch prop.Format {
	case "email":
		return formstate.KindEmail, ""
	case "password":
		return formstate.KindPassword, ""
	case "date":
		return formstate.KindDate, transform.NameDate
	case "date-time":
		return formstate.KindDateTimeLocal, transform.NameRFC3339
	}
	if prop.MaxLength != nil && *prop.MaxLength > 255 {
		return formstate.KindTextArea, ""
	}
	return formstate.KindText, ""
}

func rulesFor(prop *openapi3.Schema, required bool) formstate.Rules {
	var rules formstate.Rules
	if required {
		rules = append(rules, formstate.Rule{Name: "required"})
	}
	switch prop.Format {
	case "email":
		rules = append(rules, formstate.Rule{Name: "email"})
	}
	if prop.MinLength != 0 {
		rules = append(rules, formstate.Rule{Name: "minLength", Params: prop.MinLength})
	}
	if prop.MaxLength != nil {
		rules = append(rules, formstate.Rule{Name: "maxLength", Params: *prop.MaxLength})
	}
	if prop.Min != nil {
		rules = append(rules, formstate.Rule{Name: "min", Params: *prop.Min})
	}
	if prop.Max != nil {
		rules = append(rules, formstate.Rule{Name: "max", Params: *prop.Max})
	}
	if prop.Pattern != "" {
		rules = append(rules, formstate.Rule{Name: "pattern", Params: prop.Pattern})
	}
	return rules
}

func errorPathsExtension(ext map[string]any) []formstate.Path {
	raw, ok := ext[pkgopenapi.ErrorPathsExtension]
	if !ok {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	paths := make([]formstate.Path, 0, len(items))
	for _, item := range items {
		switch typed := item.(type) {
		case string:
			paths = append(paths, formstate.ParsePath(typed))
		case []any:
			segments := make([]string, 0, len(typed))
			for _, segment := range typed {
				segments = append(segments, fmt.Sprint(segment))
			}
			paths = append(paths, formstate.SegmentPath(segments))
		}
	}
	return paths
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// humanise turns "firstName" or "first_name" into "First name".
func humanise(name string) string {
	var words []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, strings.ToLower(current.String()))
			current.Reset()
		}
	}
	runes := []rune(name)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.':
			flush()
		case unicode.IsUpper(r) && i > 0 && !unicode.IsUpper(runes[i-1]):
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()
	if len(words) == 0 {
		return name
	}
	first := []rune(words[0])
	first[0] = unicode.ToUpper(first[0])
	words[0] = string(first)
	return strings.Join(words, " ")
}
