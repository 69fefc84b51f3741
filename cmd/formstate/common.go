package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	formstate "github.com/goliatone/go-formstate"
	"github.com/goliatone/go-formstate/pkg/cleaninput"
	pkgformstate "github.com/goliatone/go-formstate/pkg/formstate"
	"github.com/goliatone/go-formstate/pkg/queryparams"
	"github.com/goliatone/go-formstate/pkg/schemafile"
)

const (
	formatJSON  = "json"
	formatQuery = "query"
	formatYAML  = "yaml"

	remoteTimeout = 30 * time.Second
)

// errFormInvalid makes the process exit non-zero when errors were reported.
var errFormInvalid = errors.New("form has validation errors")

func parseSource(raw string) (schemafile.Source, error) {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil, errors.New("source is required")
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return schemafile.SourceFromURL(path)
	}
	return schemafile.SourceFromFile(path), nil
}

func (a *app) loader() schemafile.Loader {
	return formstate.NewLoader(schemafile.WithHTTPFallback(remoteTimeout))
}

func (a *app) storeOptions() []pkgformstate.Option {
	opts := []pkgformstate.Option{pkgformstate.WithLogger(a.logger)}
	if a.config.GetBool("strict_names") {
		opts = append(opts, pkgformstate.WithStrictNames())
	}
	return opts
}

func (a *app) loadDefinition(ctx context.Context, location string) (*schemafile.Definition, error) {
	src, err := parseSource(location)
	if err != nil {
		return nil, err
	}
	return formstate.LoadDefinition(ctx, a.loader(), src, schemafile.WithLogger(a.logger))
}

func (a *app) loadStore(ctx context.Context, location string) (*pkgformstate.Store, error) {
	def, err := a.loadDefinition(ctx, location)
	if err != nil {
		return nil, err
	}
	return def.NewStore(a.storeOptions()...)
}

// readInitial reads a JSON object of external values and runs it through
// cleaninput.
func readInitial(path string, opts ...cleaninput.Option) (map[string]any, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read initial values: %w", err)
	}
	var values map[string]any
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("decode initial values: %w", err)
	}
	return cleaninput.Clean(values, opts...), nil
}

func writeData(w io.Writer, format string, data map[string]any, prefix string) error {
	switch strings.ToLower(format) {
	case "", formatJSON:
		return writeJSON(w, data)
	case formatQuery:
		_, err := fmt.Fprintln(w, queryparams.Encode(data, prefix))
		return err
	case formatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(data); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported format %q (want json, query or yaml)", format)
	}
}

func writeJSON(w io.Writer, value any) error {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(encoded))
	return err
}
