package formstate

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownField matches every UnknownFieldError through errors.Is.
	ErrUnknownField = errors.New("formstate: unknown field")
	// ErrSchema matches every SchemaError through errors.Is.
	ErrSchema = errors.New("formstate: invalid schema")
)

// UnknownFieldError reports a Get/Set/Field call referencing a key the store
// was not constructed with. It signals a wiring bug in the caller.
type UnknownFieldError struct {
	Key string
	Op  string
}

func (e *UnknownFieldError) Error() string {
	op := e.Op
	if op == "" {
		op = "access"
	}
	return fmt.Sprintf("formstate: unable to %s field %q because it is not defined in the form", op, e.Key)
}

// Is allows errors.Is(err, ErrUnknownField).
func (e *UnknownFieldError) Is(target error) bool {
	return target == ErrUnknownField
}

// SchemaError reports an inconsistent field declaration detected at
// construction time.
type SchemaError struct {
	Key    string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Key == "" {
		return "formstate: invalid schema: " + e.Reason
	}
	return fmt.Sprintf("formstate: invalid schema: field %q: %s", e.Key, e.Reason)
}

// Is allows errors.Is(err, ErrSchema).
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}
