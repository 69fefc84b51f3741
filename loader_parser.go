// Package formstate wires the schema file loader and the OpenAPI parser to
// the store in pkg/formstate. The concrete implementations live under
// internal/ and are only reachable through these constructors.
package formstate

import (
	"context"
	"errors"

	internalParser "github.com/goliatone/go-formstate/internal/openapi/parser"
	internalLoader "github.com/goliatone/go-formstate/internal/schemafile/loader"
	pkgformstate "github.com/goliatone/go-formstate/pkg/formstate"
	pkgopenapi "github.com/goliatone/go-formstate/pkg/openapi"
	"github.com/goliatone/go-formstate/pkg/schemafile"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...schemafile.LoaderOption) schemafile.Loader {
	cfg := schemafile.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs an OpenAPI parser backed by the internal implementation.
func NewParser(options ...pkgopenapi.ParserOption) pkgopenapi.Parser {
	cfg := pkgopenapi.NewParserOptions(options...)
	return internalParser.New(cfg)
}

// LoadDefinition loads and parses a schema document.
func LoadDefinition(ctx context.Context, loader schemafile.Loader, src schemafile.Source, opts ...schemafile.ParseOption) (*schemafile.Definition, error) {
	if loader == nil {
		return nil, errors.New("formstate: loader is nil")
	}
	doc, err := loader.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	return schemafile.Parse(doc, opts...)
}

// LoadStore loads a schema document and builds a store from it.
func LoadStore(ctx context.Context, loader schemafile.Loader, src schemafile.Source, opts ...pkgformstate.Option) (*pkgformstate.Store, error) {
	def, err := LoadDefinition(ctx, loader, src)
	if err != nil {
		return nil, err
	}
	return def.NewStore(opts...)
}

// LoadOperation loads an OpenAPI document and returns the operation with the
// given operationId.
func LoadOperation(ctx context.Context, loader schemafile.Loader, src schemafile.Source, operationID string, opts ...pkgopenapi.ParserOption) (pkgopenapi.Operation, error) {
	if loader == nil {
		return pkgopenapi.Operation{}, errors.New("formstate: loader is nil")
	}
	doc, err := loader.Load(ctx, src)
	if err != nil {
		return pkgopenapi.Operation{}, err
	}
	ops, err := NewParser(opts...).Operations(ctx, doc)
	if err != nil {
		return pkgopenapi.Operation{}, err
	}
	return pkgopenapi.Lookup(ops, operationID)
}

// FieldsFromOperation derives a store schema from the request body of the
// operation with the given operationId in raw.
func FieldsFromOperation(ctx context.Context, raw []byte, operationID string) (pkgformstate.Schema, error) {
	doc, err := schemafile.NewDocument(schemafile.SourceFromFS("inline"), raw)
	if err != nil {
		return nil, err
	}
	ops, err := NewParser().Operations(ctx, doc)
	if err != nil {
		return nil, err
	}
	op, err := pkgopenapi.Lookup(ops, operationID)
	if err != nil {
		return nil, err
	}
	return op.Fields, nil
}
