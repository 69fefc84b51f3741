package formstate

// Transformer converts a field value between its domain representation (what
// Get/Set hold) and its external representation (what Data emits and what
// Initialise receives). Both directions must be pure.
type Transformer interface {
	// ToModelValue accepts either representation, or nil, and returns the
	// domain value.
	ToModelValue(input any) any
	// ToOutputValue converts a domain value, or nil, into the external form.
	ToOutputValue(value any) any
}

// TransformerFuncs adapts a pair of functions into a Transformer. A nil
// function behaves as identity.
type TransformerFuncs struct {
	ToModel  func(any) any
	ToOutput func(any) any
}

// ToModelValue implements Transformer.
func (t TransformerFuncs) ToModelValue(input any) any {
	if t.ToModel == nil {
		return input
	}
	return t.ToModel(input)
}

// ToOutputValue implements Transformer.
func (t TransformerFuncs) ToOutputValue(value any) any {
	if t.ToOutput == nil {
		return value
	}
	return t.ToOutput(value)
}
