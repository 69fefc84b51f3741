package formstate_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	formstate "github.com/goliatone/go-formstate"
	pkgformstate "github.com/goliatone/go-formstate/pkg/formstate"
	pkgopenapi "github.com/goliatone/go-formstate/pkg/openapi"
	"github.com/goliatone/go-formstate/pkg/schemafile"
	"github.com/goliatone/go-formstate/pkg/testsupport"
)

const profileSchema = `
title: Profile
fields:
  - key: name
    label: Name
  - key: email
    label: E-mail
    kind: email
    errorPaths: [contact.email]
`

const profileOpenAPI = `
openapi: 3.0.3
info: {title: Profile, version: "1"}
paths:
  /profile:
    put:
      operationId: updateProfile
      requestBody:
        content:
          application/json:
            schema:
              type: object
              required: [name]
              properties:
                name: {type: string}
                age: {type: integer}
      responses:
        "204": {description: updated}
`

func memoryLoader() schemafile.Loader {
	return formstate.NewLoader(schemafile.WithFileSystem(fstest.MapFS{
		"profile.yaml": {Data: []byte(profileSchema)},
		"openapi.yaml": {Data: []byte(profileOpenAPI)},
		"broken.yaml":  {Data: []byte("fields: 3\n")},
	}))
}

func TestLoadStore(t *testing.T) {
	store, err := formstate.LoadStore(testsupport.Context(), memoryLoader(), schemafile.SourceFromFS("profile.yaml"))
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	if diff := cmp.Diff([]string{"name", "email"}, store.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}

	store.ApplyServerValidationError(&pkgformstate.ServerValidationError{
		Violations: []pkgformstate.Violation{{Path: []string{"contact", "email"}, Message: "taken"}},
	})
	want := map[string][]pkgformstate.FormError{"email": {{Message: "taken"}}}
	if diff := cmp.Diff(want, store.Errors()); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadStore_Errors(t *testing.T) {
	ctx := testsupport.Context()
	if _, err := formstate.LoadStore(ctx, nil, schemafile.SourceFromFS("profile.yaml")); err == nil {
		t.Fatalf("expected nil loader error")
	}
	if _, err := formstate.LoadStore(ctx, memoryLoader(), schemafile.SourceFromFS("missing.yaml")); err == nil {
		t.Fatalf("expected missing document error")
	}
	_, err := formstate.LoadStore(ctx, memoryLoader(), schemafile.SourceFromFS("broken.yaml"))
	var validationErr *schemafile.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLoadOperation(t *testing.T) {
	op, err := formstate.LoadOperation(testsupport.Context(), memoryLoader(), schemafile.SourceFromFS("openapi.yaml"), "updateProfile")
	if err != nil {
		t.Fatalf("load operation: %v", err)
	}
	if op.Method != "PUT" || len(op.Fields) != 2 {
		t.Fatalf("unexpected operation %+v", op)
	}

	_, err = formstate.LoadOperation(testsupport.Context(), memoryLoader(), schemafile.SourceFromFS("openapi.yaml"), "deleteProfile")
	if !errors.Is(err, pkgopenapi.ErrOperationNotFound) {
		t.Fatalf("expected ErrOperationNotFound, got %v", err)
	}
}

func TestFieldsFromOperation(t *testing.T) {
	fields, err := formstate.FieldsFromOperation(testsupport.Context(), []byte(profileOpenAPI), "updateProfile")
	if err != nil {
		t.Fatalf("fields: %v", err)
	}
	store, err := pkgformstate.New(fields)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"age": "0", "name": ""}, store.Data()); diff != "" {
		t.Fatalf("data mismatch (-want +got):\n%s", diff)
	}
}
