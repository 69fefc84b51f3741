package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
)

func loadFromFS(ctx context.Context, filesystem fs.FS, name string, limit int64) ([]byte, error) {
	if filesystem == nil {
		return nil, errors.New("schemafile loader: filesystem is not configured")
	}
	if name == "" {
		return nil, errors.New("schemafile loader: fs path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkExtension(name); err != nil {
		return nil, err
	}

	f, err := filesystem.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("schemafile loader: %s is a directory", name)
	}
	if err := checkSize(info.Size(), limit, name); err != nil {
		return nil, err
	}
	return readLimited(f, limit, name)
}
