package schemafile

import (
	"fmt"
	"strings"
)

// Issue is one problem found in a schema document.
type Issue struct {
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

// ValidationError lists the issues that made a document invalid.
type ValidationError struct {
	Location string
	Issues   []Issue
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	if e.Location != "" {
		fmt.Fprintf(&b, "schemafile: %s is invalid", e.Location)
	} else {
		b.WriteString("schemafile: document is invalid")
	}
	for _, issue := range e.Issues {
		path := issue.Path
		if path == "" {
			path = "(root)"
		}
		fmt.Fprintf(&b, "\n  - %s: %s", path, issue.Message)
	}
	return b.String()
}
