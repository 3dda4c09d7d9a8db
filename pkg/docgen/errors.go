package docgen

import (
	"fmt"
)

// RenderError reports that the renderer rejected the template or the
// context. Rendering is deterministic in its inputs, so the call is never
// retried; the caller has to fix the template or the context.
type RenderError struct {
	Renderer string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("docgen: render with %s: %v", e.Renderer, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
