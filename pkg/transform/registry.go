// Package transform provides the built-in field transformers and a
// registry that resolves them by name.
package transform

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-formstate/pkg/formstate"
)

// Built-in transformer names registered by NewRegistry.
const (
	NameIdentity  = "identity"
	NameRFC3339   = "rfc3339"
	NameDate      = "date"
	NameNumber    = "number"
	NameInteger   = "integer"
	NameBool      = "bool"
	NameCommaList = "csv"
)

// Registry resolves transformers by name so declarative schemas can refer to
// them. Lookups are case insensitive.
type Registry struct {
	mu           sync.RWMutex
	transformers map[string]formstate.Transformer
}

// NewRegistry constructs a registry with the built-in transformers.
func NewRegistry() *Registry {
	reg := &Registry{transformers: make(map[string]formstate.Transformer)}
	reg.MustRegister(NameIdentity, Identity())
	reg.MustRegister(NameRFC3339, RFC3339())
	reg.MustRegister(NameDate, Date(time.DateOnly))
	reg.MustRegister(NameNumber, Number())
	reg.MustRegister(NameInteger, Integer())
	reg.MustRegister(NameBool, Bool())
	reg.MustRegister(NameCommaList, CommaList())
	return reg
}

// Register adds a transformer under name. Duplicate names return an error.
func (r *Registry) Register(name string, transformer formstate.Transformer) error {
	if transformer == nil {
		return fmt.Errorf("transform: transformer is required")
	}
	key := normaliseName(name)
	if key == "" {
		return fmt.Errorf("transform: transformer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.transformers[key]; exists {
		return fmt.Errorf("transform: transformer %q already registered", key)
	}
	r.transformers[key] = transformer
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name string, transformer formstate.Transformer) {
	if err := r.Register(name, transformer); err != nil {
		panic(err)
	}
}

// Get retrieves a transformer by name.
func (r *Registry) Get(name string) (formstate.Transformer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	transformer, ok := r.transformers[normaliseName(name)]
	if !ok {
		return nil, fmt.Errorf("transform: transformer %q not found", name)
	}
	return transformer, nil
}

// List returns registered names sorted alphabetically.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.transformers))
	for name := range r.transformers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normaliseName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
