// Package docgen orchestrates template resolution and rendering. It owns no
// mutable state; every call re-resolves its template so tenant isolation and
// template updates never depend on cache coherence.
package docgen

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-docgen/internal/store"
	"github.com/goliatone/go-docgen/pkg/render"
	"github.com/goliatone/go-docgen/pkg/render/htmldoc"
	"github.com/goliatone/go-docgen/pkg/render/pongo"
)

// GenerationRequest carries the inputs of one document generation call.
type GenerationRequest struct {
	TemplateID int64
	TenantID   uuid.UUID
	// Context is the structured value merged into the template. An empty or
	// nil map is legal and renders the template as-is.
	Context map[string]any
}

// Option customises the generator configuration.
type Option func(*Generator)

// WithSource injects a custom template source.
func WithSource(source Source) Option {
	return func(g *Generator) {
		g.source = source
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(g *Generator) {
		g.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when the template path
// does not select one.
func WithDefaultRenderer(name string) Option {
	return func(g *Generator) {
		g.defaultRenderer = name
	}
}

// WithLogger injects a logger. The generator only logs at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

// Generator coordinates the lookup + render path. It applies sensible
// defaults (filesystem source, pongo and html renderers) while remaining
// open to dependency injection.
type Generator struct {
	store           store.TemplateStore
	source          Source
	registry        *render.Registry
	defaultRenderer string
	log             *zap.Logger
}

// New constructs a Generator over templates, applying any provided options.
// Missing dependencies are initialised with the built-in implementations.
func New(templates store.TemplateStore, options ...Option) *Generator {
	g := &Generator{
		store:           templates,
		defaultRenderer: pongo.Name,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

func (g *Generator) applyDefaults() {
	if g.source == nil {
		g.source = OSSource{}
	}
	if g.log == nil {
		g.log = zap.NewNop()
	}
	if g.registry == nil {
		registry := render.NewRegistry()
		text := pongo.New()
		registry.MustRegister(text)
		registry.MustRegister(htmldoc.New(text))
		g.registry = registry
	}
}

// Generate resolves the template scoped to the tenant, reads its bytes and
// merges the request context into it. The rendered bytes pass through
// unmodified; success and failure are mutually exclusive outcomes.
//
// Absence of a matching template surfaces store.ErrNotFound; renderer
// rejections surface as *RenderError. Neither is retried.
func (g *Generator) Generate(ctx context.Context, req GenerationRequest) ([]byte, error) {
	template, err := g.store.FindTemplate(ctx, req.TemplateID, req.TenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("docgen: template %d for tenant %s: %w", req.TemplateID, req.TenantID, store.ErrNotFound)
		}
		return nil, fmt.Errorf("docgen: resolve template: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.log.Debug("Generating document",
		zap.Int64("template_id", template.ID),
		zap.String("tenant_id", template.TenantID.String()),
		zap.String("path", template.Path))

	raw, err := g.source.ReadTemplate(ctx, template.Path)
	if err != nil {
		return nil, err
	}

	renderer, err := g.registry.Get(g.rendererFor(template.Path))
	if err != nil {
		return nil, fmt.Errorf("docgen: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	document, err := renderer.Render(ctx, raw, req.Context)
	if err != nil {
		return nil, &RenderError{Renderer: renderer.Name(), Err: err}
	}
	return document, nil
}

// rendererFor selects a renderer from the template path extension. HTML
// templates go through the sanitizing renderer; everything else uses the
// configured default.
func (g *Generator) rendererFor(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".html") {
		return htmldoc.Name
	}
	return g.defaultRenderer
}
