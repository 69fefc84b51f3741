package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrRequired is returned by the default validator for required fields
	// left blank.
	ErrRequired = errors.New("prompt: a value is required")
)
