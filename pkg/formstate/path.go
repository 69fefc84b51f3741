package formstate

import (
	"strings"
)

// Path identifies where a server-reported violation points. Three notations
// are accepted and all compare through their canonical dotted form:
//
//	DottedPath("input.name")
//	SegmentPath{"input", "name"}
//	PointerPath("/input/name")
//
// Segments are joined with "." without escaping, so SegmentPath{"a.b"} and
// DottedPath("a.b") are the same path.
type Path interface {
	// Canonical returns the dotted representation used for matching.
	Canonical() string
}

// DottedPath is a path written as dot separated segments.
type DottedPath string

// Canonical implements Path.
func (p DottedPath) Canonical() string {
	return string(p)
}

// SegmentPath is a path given as an ordered list of segments.
type SegmentPath []string

// Canonical implements Path.
func (p SegmentPath) Canonical() string {
	return strings.Join(p, ".")
}

// PointerPath is an RFC 6901 JSON pointer such as "/input/name". The escapes
// "~1" and "~0" are decoded per segment.
type PointerPath string

// Canonical implements Path.
func (p PointerPath) Canonical() string {
	return strings.Join(p.Segments(), ".")
}

// Segments decodes the pointer into its reference tokens. A leading "#" (URI
// fragment form) is tolerated; the empty pointer yields no segments.
func (p PointerPath) Segments() []string {
	raw := strings.TrimPrefix(string(p), "#")
	if raw == "" {
		return nil
	}
	raw = strings.TrimPrefix(raw, "/")
	parts := strings.Split(raw, "/")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.ReplaceAll(part, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

// ParsePath picks a notation for a textual path. Strings starting with "/" or
// "#/" are JSON pointers, anything else is dotted.
func ParsePath(raw string) Path {
	if strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "#/") {
		return PointerPath(raw)
	}
	return DottedPath(raw)
}

// Paths is a convenience constructor for declaring error paths inline. Each
// argument may be a string (see ParsePath), a []string, or a Path. Other
// values are ignored.
func Paths(values ...any) []Path {
	out := make([]Path, 0, len(values))
	for _, value := range values {
		switch typed := value.(type) {
		case Path:
			out = append(out, typed)
		case string:
			out = append(out, ParsePath(typed))
		case []string:
			out = append(out, SegmentPath(typed))
		}
	}
	return out
}

// DefaultErrorPaths returns the implicit paths used when a field declares no
// error paths: the bare key and the key nested under "input".
func DefaultErrorPaths(key string) []Path {
	return []Path{
		SegmentPath{key},
		SegmentPath{"input", key},
	}
}

func canonicalPaths(paths []Path) map[string]struct{} {
	out := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		if path == nil {
			continue
		}
		if canonical := path.Canonical(); canonical != "" {
			out[canonical] = struct{}{}
		}
	}
	return out
}
