package prompt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formstate/pkg/formstate"
	"github.com/goliatone/go-formstate/pkg/transform"
)

type stubDriver struct {
	inputs    []string
	passwords []string
	confirm   []bool
	selectIdx []int
	textAreas []string
	err       error

	inputConfigs  []InputConfig
	selectConfigs []SelectConfig
	inputPos      int
	passPos       int
	confirmPos    int
	selectPos     int
	textPos       int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.inputConfigs = append(s.inputConfigs, cfg)
	if s.err != nil {
		return "", s.err
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, _ InputConfig) (string, error) {
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selectConfigs = append(s.selectConfigs, cfg)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func signupStore(t *testing.T) *formstate.Store {
	t.Helper()
	store, err := formstate.New(formstate.Schema{
		{Key: "id", Label: "ID", Kind: formstate.KindHidden, Value: "u-1"},
		{Key: "name", Label: "Name", Required: true, Rules: formstate.RuleNames("required")},
		{Key: "secret", Label: "Password", Kind: formstate.KindPassword},
		{Key: "born", Label: "Born", Kind: formstate.KindDate, Transformer: transform.Date(time.DateOnly)},
		{Key: "news", Label: "Newsletter", Kind: formstate.KindCheckbox, Transformer: transform.Bool()},
		{Key: "plan", Label: "Plan", Kind: formstate.KindSelect, Value: "basic", Choices: []formstate.Choice{
			{Value: "basic", Label: "Basic"},
			{Value: "pro", Label: "Professional"},
		}},
		{Key: "bio", Label: "Bio", Kind: formstate.KindTextArea},
	})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func TestFill_WalksFieldsInOrder(t *testing.T) {
	store := signupStore(t)
	driver := &stubDriver{
		inputs:    []string{"Joe", "1990-05-17"},
		passwords: []string{"hunter2"},
		confirm:   []bool{true},
		selectIdx: []int{1},
		textAreas: []string{"Hello"},
	}

	if err := Fill(context.Background(), store, driver); err != nil {
		t.Fatalf("fill: %v", err)
	}

	want := map[string]any{
		"id":     "u-1",
		"name":   "Joe",
		"secret": "hunter2",
		"born":   "1990-05-17",
		"news":   "true",
		"plan":   "pro",
		"bio":    "Hello",
	}
	if diff := cmp.Diff(want, store.Data()); diff != "" {
		t.Fatalf("data mismatch (-want +got):\n%s", diff)
	}

	if got := driver.inputConfigs[0].Message; got != "Name *" {
		t.Fatalf("expected required marker, got %q", got)
	}
	if driver.inputConfigs[0].Help != "required" {
		t.Fatalf("expected rule names as help, got %q", driver.inputConfigs[0].Help)
	}
	if err := driver.inputConfigs[0].Validator("  "); !errors.Is(err, ErrRequired) {
		t.Fatalf("expected required validator, got %v", err)
	}
	if driver.inputConfigs[1].Validator != nil {
		t.Fatalf("optional fields should not be validated")
	}
	if got := driver.selectConfigs[0].DefaultIndex; got != 0 {
		t.Fatalf("expected current choice as default, got %d", got)
	}
}

func TestFill_AcceptedDefaultsStayUnchanged(t *testing.T) {
	store := formstate.MustNew(formstate.Schema{
		{Key: "tags", Label: "Tags", Transformer: transform.CommaList()},
		{Key: "news", Label: "Newsletter", Kind: formstate.KindCheckbox, Transformer: transform.Bool()},
		{Key: "bio", Label: "Bio", Kind: formstate.KindTextArea},
	})
	store.Initialise(map[string]any{"tags": []string{"a", "b"}, "news": true, "bio": "Hello"})

	driver := &stubDriver{inputs: []string{"a,b"}, confirm: []bool{true}, textAreas: []string{"Hello"}}
	if err := Fill(context.Background(), store, driver); err != nil {
		t.Fatalf("fill: %v", err)
	}
	if store.HasChanged() {
		t.Fatalf("accepting defaults must not mark fields changed, got %v", store.Changed())
	}
	if got := driver.inputConfigs[0].Default; got != "a,b" {
		t.Fatalf("expected current output as default, got %q", got)
	}

	edit := &stubDriver{inputs: []string{"a,c"}, confirm: []bool{false}, textAreas: []string{"Hello"}}
	if err := Fill(context.Background(), store, edit); err != nil {
		t.Fatalf("fill: %v", err)
	}
	if diff := cmp.Diff([]string{"tags", "news"}, store.Changed()); diff != "" {
		t.Fatalf("changed mismatch (-want +got):\n%s", diff)
	}
}

func TestFill_HiddenFields(t *testing.T) {
	store := formstate.MustNew(formstate.Schema{
		{Key: "id", Label: "ID", Kind: formstate.KindHidden},
	})
	driver := &stubDriver{inputs: []string{"42"}}

	if err := Fill(context.Background(), store, driver); err != nil {
		t.Fatalf("fill: %v", err)
	}
	if driver.inputPos != 0 {
		t.Fatalf("hidden fields should be skipped by default")
	}

	if err := Fill(context.Background(), store, driver, WithHiddenFields()); err != nil {
		t.Fatalf("fill: %v", err)
	}
	if got, _ := store.Get("id"); got != "42" {
		t.Fatalf("expected hidden field to be filled, got %v", got)
	}
}

func TestFill_Errors(t *testing.T) {
	store := formstate.MustNew(formstate.Schema{{Key: "name", Label: "Name"}})

	aborting := &stubDriver{err: ErrAborted}
	if err := Fill(context.Background(), store, aborting); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Fill(ctx, store, &stubDriver{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	if err := Fill(context.Background(), nil, &stubDriver{}); err == nil {
		t.Fatalf("expected error for nil store")
	}
	if err := Fill(context.Background(), store, nil); err == nil {
		t.Fatalf("expected error for nil driver")
	}

	choices := formstate.MustNew(formstate.Schema{{Key: "plan", Label: "Plan", Choices: []formstate.Choice{{Value: "a", Label: "A"}}}})
	if err := Fill(context.Background(), choices, &stubDriver{selectIdx: []int{5}}); err == nil {
		t.Fatalf("expected out of range selection error")
	}
}

func TestTranslateSurveyErr(t *testing.T) {
	other := errors.New("boom")
	if got := translateSurveyErr(other); got != other {
		t.Fatalf("expected passthrough, got %v", got)
	}
}
