package render

import (
	"context"
)

// Renderer merges a structured context into raw template bytes and produces
// the final document bytes. Rendering is deterministic in its inputs and has
// no side effects; a failure means the template or the context is malformed.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, template []byte, data map[string]any) ([]byte, error)
}
