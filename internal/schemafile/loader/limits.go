package loader

import (
	"fmt"
	"io"
	"path"
	"strings"
)

// DefaultMaxDocumentSize caps schema documents when LoaderOptions leaves
// MaxDocumentSize unset.
const DefaultMaxDocumentSize int64 = 1 << 20

var documentExtensions = map[string]bool{
	"":      true,
	".yaml": true,
	".yml":  true,
	".json": true,
}

// checkExtension rejects local documents that are clearly not YAML or JSON.
// Names without an extension are accepted.
func checkExtension(name string) error {
	ext := strings.ToLower(path.Ext(name))
	if !documentExtensions[ext] {
		return fmt.Errorf("schemafile loader: unsupported document extension %q for %s", ext, name)
	}
	return nil
}

func checkSize(size, limit int64, location string) error {
	if size > limit {
		return fmt.Errorf("schemafile loader: %s is %d bytes, limit is %d", location, size, limit)
	}
	return nil
}

// readLimited reads at most limit bytes and fails when r holds more.
func readLimited(r io.Reader, limit int64, location string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("schemafile loader: %s exceeds the %d byte limit", location, limit)
	}
	return data, nil
}
