package formstate

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// Violation is one server-reported rule failure. Path locates the offending
// input as ordered segments.
type Violation struct {
	Path    []string `json:"path"`
	Message string   `json:"message"`
	Value   any      `json:"value,omitempty"`
}

// CanonicalPath joins the segments with ".".
func (v Violation) CanonicalPath() string {
	return SegmentPath(v.Path).Canonical()
}

// UnmarshalJSON accepts the path either as an array of segments or as a
// string in dotted or JSON pointer notation. Paths of any other shape decode
// as empty and therefore never match a field.
func (v *Violation) UnmarshalJSON(data []byte) error {
	var raw struct {
		Path    json.RawMessage `json:"path"`
		Message string          `json:"message"`
		Value   any             `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v.Message = raw.Message
	v.Value = raw.Value
	v.Path = decodeViolationPath(raw.Path)
	return nil
}

func decodeViolationPath(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var segments []string
	if err := json.Unmarshal(raw, &segments); err == nil {
		return segments
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil || text == "" {
		return nil
	}
	switch path := ParsePath(text).(type) {
	case PointerPath:
		return path.Segments()
	default:
		return []string{text}
	}
}

// ServerValidationError is raised by the transport layer when a remote API
// rejects a submission. It is consumed by Store.ApplyServerValidationError.
type ServerValidationError struct {
	Message    string      `json:"message"`
	Violations []Violation `json:"violations"`
	// Cause is the transport error that carried the payload, if any.
	Cause error `json:"-"`
}

func (e *ServerValidationError) Error() string {
	message := e.Message
	if message == "" {
		message = "server validation failed"
	}
	if len(e.Violations) == 0 {
		return message
	}
	return fmt.Sprintf("%s (%d violations)", message, len(e.Violations))
}

// Unwrap exposes the transport cause.
func (e *ServerValidationError) Unwrap() error {
	return e.Cause
}

// DecodeServerValidationError parses a JSON error payload.
func DecodeServerValidationError(data []byte) (*ServerValidationError, error) {
	if len(data) == 0 {
		return nil, errors.New("formstate: server validation payload is empty")
	}
	var out ServerValidationError
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("formstate: decode server validation error: %w", err)
	}
	return &out, nil
}

// AsServerValidationError unwraps err looking for a ServerValidationError.
func AsServerValidationError(err error) (*ServerValidationError, bool) {
	var target *ServerValidationError
	if errors.As(err, &target) && target != nil {
		return target, true
	}
	return nil, false
}
