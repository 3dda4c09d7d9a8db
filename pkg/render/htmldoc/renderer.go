// Package htmldoc renders HTML documents, sanitizing the merged output so a
// hostile context value cannot smuggle active content into a document served
// to browsers.
package htmldoc

import (
	"context"
	"fmt"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-docgen/pkg/render"
)

// Name is the registry name of this renderer.
const Name = "html"

// Renderer merges the context through an inner renderer, then applies a
// bluemonday UGC policy to the result.
type Renderer struct {
	inner  render.Renderer
	policy *bluemonday.Policy
}

// New wraps inner, typically the pongo text renderer.
func New(inner render.Renderer) *Renderer {
	return &Renderer{
		inner:  inner,
		policy: bluemonday.UGCPolicy(),
	}
}

// Name identifies the renderer in the registry.
func (r *Renderer) Name() string { return Name }

// ContentType reports the media type of rendered output.
func (r *Renderer) ContentType() string { return "text/html; charset=utf-8" }

// Render merges data into template and sanitizes the resulting markup.
func (r *Renderer) Render(ctx context.Context, template []byte, data map[string]any) ([]byte, error) {
	out, err := r.inner.Render(ctx, template, data)
	if err != nil {
		return nil, fmt.Errorf("htmldoc: %w", err)
	}
	return r.policy.SanitizeBytes(out), nil
}
