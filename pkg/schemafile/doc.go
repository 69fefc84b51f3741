// Package schemafile reads declarative form schemas from YAML or JSON
// documents. Documents are checked against an embedded JSON Schema before
// they are decoded, and transformers are referenced by registry name.
package schemafile
