package cleaninput_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formstate/pkg/cleaninput"
)

func TestClean_TrimsAndNullsStrings(t *testing.T) {
	input := map[string]any{
		"name":    "  Joe Bloggs ",
		"empty":   "",
		"blank":   "   ",
		"age":     42,
		"enabled": true,
		"nothing": nil,
		"address": map[string]any{
			"street": " 1 Main St ",
			"unit":   " ",
		},
		"tags": []any{" a ", "", 3},
	}

	got := cleaninput.Clean(input)
	want := map[string]any{
		"name":    "Joe Bloggs",
		"empty":   nil,
		"blank":   nil,
		"age":     42,
		"enabled": true,
		"nothing": nil,
		"address": map[string]any{
			"street": "1 Main St",
			"unit":   nil,
		},
		"tags": []any{"a", nil, 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("cleaned mismatch (-want +got):\n%s", diff)
	}

	if input["name"] != "  Joe Bloggs " {
		t.Fatalf("input must not be mutated")
	}
}

func TestClean_ArrayHandling(t *testing.T) {
	input := map[string]any{
		"nested": []any{[]any{" x ", " "}, map[string]any{"k": " v "}},
		"typed":  []string{" kept ", ""},
	}

	got := cleaninput.Clean(input)
	want := map[string]any{
		"nested": []any{[]any{"x", nil}, map[string]any{"k": "v"}},
		"typed":  []string{" kept ", ""},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("cleaned mismatch (-want +got):\n%s", diff)
	}
}

func TestClean_Nil(t *testing.T) {
	if got := cleaninput.Clean(nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestClean_StrictHTML(t *testing.T) {
	got := cleaninput.Clean(map[string]any{
		"bio":    "<b>Hello</b> <script>alert(1)</script>",
		"markup": "  <i></i> ",
	}, cleaninput.WithStrictHTML())

	want := map[string]any{
		"bio":    "Hello",
		"markup": nil,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sanitised mismatch (-want +got):\n%s", diff)
	}
}

func TestClean_CustomPolicy(t *testing.T) {
	policy := bluemonday.NewPolicy()
	policy.AllowElements("b")

	got := cleaninput.Clean(map[string]any{"bio": " <b>bold</b><i>x</i> "}, cleaninput.WithSanitizer(policy))
	if diff := cmp.Diff(map[string]any{"bio": "<b>bold</b>x"}, got); diff != "" {
		t.Fatalf("sanitised mismatch (-want +got):\n%s", diff)
	}
}

func TestString(t *testing.T) {
	if got, ok := cleaninput.String("  hi "); !ok || got != "hi" {
		t.Fatalf("expected hi, got %q (ok=%v)", got, ok)
	}
	if _, ok := cleaninput.String("   "); ok {
		t.Fatalf("blank strings should report false")
	}
}
