// Package formstate holds the state of a declaratively described form: the
// current and initial value of every field, change detection, and the
// validation errors reported for it.
//
// A Store is built once from a Schema. Values move between two
// representations: the domain value returned by Get and stored by Set, and
// the external value emitted by Data and accepted by Initialise. A field's
// Transformer converts between them; fields without one use identity.
//
// Validation is not performed here. Remote APIs report failures as a
// ServerValidationError and ApplyServerValidationError routes each violation
// to the fields whose error paths contain the violation path, falling back
// to root errors so nothing is dropped:
//
//	store, err := formstate.New(formstate.Schema{
//		{Key: "name", Label: "Your name", ErrorPaths: formstate.Paths("input.name")},
//	})
//	...
//	store.ApplyServerValidationError(&formstate.ServerValidationError{
//		Message: "Invalid input",
//		Violations: []formstate.Violation{
//			{Path: []string{"input", "name"}, Message: "Name is required!"},
//		},
//	})
package formstate
