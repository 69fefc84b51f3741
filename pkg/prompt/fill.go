// Package prompt fills a form store interactively, one field at a time, in
// declaration order.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/goliatone/go-formstate/pkg/formstate"
)

type options struct {
	logger     *slog.Logger
	skipHidden bool
	pageSize   int
}

// Option configures Fill.
type Option func(*options)

// WithLogger sets the logger used for per-field debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithHiddenFields prompts for hidden fields too. They are skipped by default.
func WithHiddenFields() Option {
	return func(o *options) {
		o.skipHidden = false
	}
}

// WithPageSize limits the number of visible choices in select prompts.
func WithPageSize(size int) Option {
	return func(o *options) {
		o.pageSize = size
	}
}

// Fill prompts for every field and writes the answers into store. Text
// answers go through SetOutput so transformers decode them; select answers
// set the chosen domain value directly. The store is left partially filled
// when an error or ErrAborted is returned.
func Fill(ctx context.Context, store *formstate.Store, driver PromptDriver, opts ...Option) error {
	if store == nil {
		return errors.New("prompt: store is nil")
	}
	if driver == nil {
		return errors.New("prompt: driver is nil")
	}
	cfg := options{logger: slog.Default(), skipHidden: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	for _, key := range store.Keys() {
		if err := ctx.Err(); err != nil {
			return err
		}
		field, err := store.Field(key)
		if err != nil {
			return err
		}
		if cfg.skipHidden && field.Kind == formstate.KindHidden {
			continue
		}
		if err := fillField(ctx, store, driver, field, cfg); err != nil {
			return fmt.Errorf("prompt: field %q: %w", key, err)
		}
		cfg.logger.Debug("prompt: field filled", "key", key)
	}
	return nil
}

func fillField(ctx context.Context, store *formstate.Store, driver PromptDriver, field formstate.Field, cfg options) error {
	message := field.Label
	if field.Required {
		message += " *"
	}
	help := strings.Join(field.Rules.Names(), ", ")
	current := outputString(field)

	choices, err := store.Choices(field.Key)
	if err != nil {
		return err
	}
	if len(choices) > 0 {
		labels := make([]string, len(choices))
		defaultIndex := -1
		for i, choice := range choices {
			labels[i] = choice.Label
			if fmt.Sprint(choice.Value) == fmt.Sprint(field.Value) {
				defaultIndex = i
			}
		}
		idx, err := driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      labels,
			DefaultIndex: defaultIndex,
			Help:         help,
			PageSize:     cfg.pageSize,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(choices) {
			return fmt.Errorf("selection %d out of range", idx)
		}
		return store.Set(field.Key, choices[idx].Value)
	}

	switch field.Kind {
	case formstate.KindCheckbox:
		answer, err := driver.Confirm(ctx, ConfirmConfig{
			Message: message,
			Default: current == "true",
			Help:    help,
		})
		if err != nil {
			return err
		}
		if answer == (current == "true") {
			return nil
		}
		return store.SetOutput(field.Key, answer)
	case formstate.KindTextArea:
		answer, err := driver.TextArea(ctx, TextAreaConfig{Message: message, Default: current, Help: help})
		if err != nil {
			return err
		}
		return setAnswer(store, field.Key, current, answer)
	}

	input := InputConfig{
		Message:   message,
		Default:   current,
		Help:      help,
		Validator: validatorFor(field),
	}
	var answer string
	if field.Kind == formstate.KindPassword {
		answer, err = driver.Password(ctx, input)
	} else {
		answer, err = driver.Input(ctx, input)
	}
	if err != nil {
		return err
	}
	return setAnswer(store, field.Key, current, answer)
}

// setAnswer leaves the field untouched when the user kept the default, so a
// re-parsed slice never reads as a change.
func setAnswer(store *formstate.Store, key, current, answer string) error {
	if answer == current {
		return nil
	}
	return store.SetOutput(key, answer)
}

func validatorFor(field formstate.Field) func(string) error {
	if !field.Required {
		return nil
	}
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return ErrRequired
		}
		return nil
	}
}

func outputString(field formstate.Field) string {
	var value any = field.Value
	if field.Transformer != nil {
		value = field.Transformer.ToOutputValue(field.Value)
	}
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}
