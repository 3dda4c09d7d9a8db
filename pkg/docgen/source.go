package docgen

import (
	"context"
	"fmt"
	"io/fs"
	"os"
)

// Source resolves a stored template path into template bytes.
type Source interface {
	ReadTemplate(ctx context.Context, path string) ([]byte, error)
}

// OSSource reads template bytes from the local filesystem. It is the
// default source; stored template paths are host paths.
type OSSource struct{}

// ReadTemplate implements Source.
func (OSSource) ReadTemplate(_ context.Context, path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("docgen: read template %q: %w", path, err)
	}
	return raw, nil
}

// FSSource reads template bytes from an fs.FS. Useful for embedded template
// sets and tests.
type FSSource struct {
	FS fs.FS
}

// ReadTemplate implements Source.
func (s FSSource) ReadTemplate(_ context.Context, path string) ([]byte, error) {
	raw, err := fs.ReadFile(s.FS, path)
	if err != nil {
		return nil, fmt.Errorf("docgen: read template %q: %w", path, err)
	}
	return raw, nil
}
