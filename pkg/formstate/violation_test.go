package formstate_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formstate/pkg/formstate"
)

func TestDecodeServerValidationError_PathShapes(t *testing.T) {
	payload := []byte(`{
		"message": "Invalid input",
		"violations": [
			{"path": ["input", "name"], "message": "Name is required!", "value": null},
			{"path": "input.email", "message": "Email invalid", "value": "joe@"},
			{"path": "/input/age", "message": "Too young", "value": 3},
			{"path": {"weird": true}, "message": "Malformed"},
			{"message": "No path"}
		]
	}`)

	got, err := formstate.DecodeServerValidationError(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := &formstate.ServerValidationError{
		Message: "Invalid input",
		Violations: []formstate.Violation{
			{Path: []string{"input", "name"}, Message: "Name is required!"},
			{Path: []string{"input.email"}, Message: "Email invalid", Value: "joe@"},
			{Path: []string{"input", "age"}, Message: "Too young", Value: float64(3)},
			{Message: "Malformed"},
			{Message: "No path"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("decoded mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeServerValidationError_RoutesThroughStore(t *testing.T) {
	payload := []byte(`{"message":"Invalid input","violations":[
		{"path":"input.name","message":"Name is required!"},
		{"path":{"bad":1},"message":"Malformed"}
	]}`)
	serverErr, err := formstate.DecodeServerValidationError(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	store := nameForm(t)
	store.ApplyServerValidationError(serverErr)

	if diff := cmp.Diff([]formstate.FormError{{Message: "Name is required!"}}, fieldErrors(t, store, "name")); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]formstate.FormError{{Message: "Malformed"}}, store.RootErrors()); diff != "" {
		t.Fatalf("malformed paths must fall back to root (-want +got):\n%s", diff)
	}
}

func TestDecodeServerValidationError_Invalid(t *testing.T) {
	if _, err := formstate.DecodeServerValidationError(nil); err == nil {
		t.Fatalf("expected error for empty payload")
	}
	_, err := formstate.DecodeServerValidationError([]byte(`{"message":`))
	if err == nil || !strings.Contains(err.Error(), "decode server validation error") {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestServerValidationError_Error(t *testing.T) {
	cases := []struct {
		err  *formstate.ServerValidationError
		want string
	}{
		{err: &formstate.ServerValidationError{Message: "Invalid input"}, want: "Invalid input"},
		{err: &formstate.ServerValidationError{}, want: "server validation failed"},
		{
			err: &formstate.ServerValidationError{
				Message:    "Invalid input",
				Violations: []formstate.Violation{{Message: "a"}, {Message: "b"}},
			},
			want: "Invalid input (2 violations)",
		},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}
