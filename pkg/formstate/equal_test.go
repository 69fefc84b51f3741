package formstate

import (
	"testing"
	"time"
)

func TestValuesEqual(t *testing.T) {
	instant := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	shifted := instant.In(time.FixedZone("CET", 3600))
	tags := []string{"a", "b"}
	attrs := map[string]any{"k": "v"}

	type withSlice struct {
		Items []int
	}

	cases := []struct {
		name string
		a, b any
		want bool
	}{
		{name: "nil nil", a: nil, b: nil, want: true},
		{name: "nil vs empty string", a: nil, b: "", want: false},
		{name: "strings", a: "x", b: "x", want: true},
		{name: "int vs float", a: 1, b: 1.0, want: false},
		{name: "same time value", a: instant, b: instant, want: true},
		{name: "same instant other location", a: instant, b: shifted, want: false},
		{name: "same slice", a: tags, b: tags, want: true},
		{name: "equal contents distinct slices", a: []string{"a", "b"}, b: []string{"a", "b"}, want: false},
		{name: "same map", a: attrs, b: attrs, want: true},
		{name: "distinct maps", a: map[string]any{"k": "v"}, b: map[string]any{"k": "v"}, want: false},
		{name: "struct with slice", a: withSlice{Items: []int{1}}, b: withSlice{Items: []int{1}}, want: true},
		{name: "interface holding slice", a: struct{ V any }{V: []int{1}}, b: struct{ V any }{V: []int{1}}, want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := valuesEqual(tc.a, tc.b); got != tc.want {
				t.Fatalf("valuesEqual(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestHasChanged_TimeInstancesAreNotNormalised(t *testing.T) {
	instant := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := MustNew(Schema{{Key: "at", Label: "At", Value: instant}})

	if err := store.Set("at", instant.In(time.FixedZone("CET", 3600))); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !store.HasChanged() {
		t.Fatalf("a time value in another location must count as a change")
	}
}
