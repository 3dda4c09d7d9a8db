// Package pongo renders text templates using pongo2, the Go take on
// jinja-style templating used throughout stored templates.
package pongo

import (
	"context"
	"fmt"

	"github.com/flosch/pongo2/v6"
)

// Name is the registry name of this renderer.
const Name = "text"

// Renderer compiles template bytes per call and merges the document context
// into them. It holds no per-call state and is safe for concurrent use.
type Renderer struct {
	set *pongo2.TemplateSet
}

// New constructs a Renderer with its own template set so filter and global
// registration on other sets cannot leak in.
func New() *Renderer {
	return &Renderer{
		set: pongo2.NewSet("docgen", pongo2.MustNewLocalFileSystemLoader("")),
	}
}

// Name identifies the renderer in the registry.
func (r *Renderer) Name() string { return Name }

// ContentType reports the media type of rendered output.
func (r *Renderer) ContentType() string { return "text/plain; charset=utf-8" }

// Render parses template and executes it with data. Parse and execution
// failures both mean malformed input; neither is retryable.
func (r *Renderer) Render(_ context.Context, template []byte, data map[string]any) ([]byte, error) {
	tmpl, err := r.set.FromString(string(template))
	if err != nil {
		return nil, fmt.Errorf("pongo: parse template: %w", err)
	}

	out, err := tmpl.ExecuteBytes(pongo2.Context(data))
	if err != nil {
		return nil, fmt.Errorf("pongo: execute template: %w", err)
	}
	return out, nil
}
