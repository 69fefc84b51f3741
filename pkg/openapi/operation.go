package openapi

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-formstate/pkg/formstate"
)

// ErrOperationNotFound is returned when an operationId is not present.
var ErrOperationNotFound = errors.New("openapi: operation not found")

// ErrorPathsExtension lists extra error paths on a request body property.
// Values are strings (dotted or JSON pointer) or lists of segments.
const ErrorPathsExtension = "x-formstate-error-paths"

// Operation is a request operation together with the form schema derived
// from its request body.
type Operation struct {
	ID           string
	Method       string
	Path         string
	Summary      string
	Description  string
	Fields       formstate.Schema
	// Transformers maps field keys to the transform registry name of the
	// transformer attached to that field.
	Transformers map[string]string
}

// NewStore builds a store over the operation's fields.
func (o Operation) NewStore(opts ...formstate.Option) (*formstate.Store, error) {
	return formstate.New(o.Fields, opts...)
}

// Lookup finds id in ops.
func Lookup(ops map[string]Operation, id string) (Operation, error) {
	op, ok := ops[id]
	if !ok {
		return Operation{}, fmt.Errorf("%w: %q", ErrOperationNotFound, id)
	}
	return op, nil
}
