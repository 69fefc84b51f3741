package formstate

// ApplyServerValidationError routes server-reported violations onto fields.
//
// Without violations the summary message becomes a single root error. Each
// violation otherwise attaches to every field whose effective paths contain
// the violation's canonical path; violations matching no field are appended
// to the root errors after all violations have been processed. Existing
// errors are kept, so repeated calls accumulate.
func (s *Store) ApplyServerValidationError(serverErr *ServerValidationError) {
	if s == nil || serverErr == nil {
		return
	}
	if len(serverErr.Violations) == 0 {
		s.rootErrors = append(s.rootErrors, FormError{Message: serverErr.Message})
		return
	}

	index := s.pathIndex()
	var unmapped []Violation
	for _, violation := range serverErr.Violations {
		record := FormError{Message: violation.Message, Value: violation.Value}
		path := violation.CanonicalPath()

		matched := false
		if path != "" {
			for _, key := range index[path] {
				field := s.fields[key]
				field.Errors = append(field.Errors, record)
				matched = true
			}
		}
		if !matched {
			unmapped = append(unmapped, violation)
		}
	}

	for _, violation := range unmapped {
		s.rootErrors = append(s.rootErrors, FormError{Message: violation.Message, Value: violation.Value})
	}
}

// ApplyError applies err when it wraps a ServerValidationError and reports
// whether it did.
func (s *Store) ApplyError(err error) bool {
	serverErr, ok := AsServerValidationError(err)
	if !ok {
		return false
	}
	s.ApplyServerValidationError(serverErr)
	return true
}

// pathIndex maps each canonical path to the keys of the fields accepting it,
// in declaration order.
func (s *Store) pathIndex() map[string][]string {
	index := make(map[string][]string)
	for _, key := range s.order {
		for path := range canonicalPaths(s.fields[key].EffectivePaths()) {
			index[path] = append(index[path], key)
		}
	}
	return index
}
