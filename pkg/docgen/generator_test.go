package docgen_test

import (
	"context"
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-docgen/internal/store"
	"github.com/goliatone/go-docgen/pkg/docgen"
	"github.com/goliatone/go-docgen/pkg/render/pongo"
)

type fakeStore struct {
	templates map[string]*store.Template
}

func newFakeStore(templates ...*store.Template) *fakeStore {
	s := &fakeStore{templates: make(map[string]*store.Template)}
	for _, template := range templates {
		s.templates[storeKey(template.ID, template.TenantID)] = template
	}
	return s
}

func storeKey(id int64, tenantID uuid.UUID) string {
	return fmt.Sprintf("%d/%s", id, tenantID)
}

func (s *fakeStore) FindTemplate(_ context.Context, id int64, tenantID uuid.UUID) (*store.Template, error) {
	template, ok := s.templates[storeKey(id, tenantID)]
	if !ok {
		return nil, store.ErrNotFound
	}
	return template, nil
}

func (s *fakeStore) CreateTemplate(_ context.Context, template *store.Template) error {
	template.ID = int64(len(s.templates) + 1)
	s.templates[storeKey(template.ID, template.TenantID)] = template
	return nil
}

func (s *fakeStore) DeleteTemplate(_ context.Context, id int64, tenantID uuid.UUID) error {
	key := storeKey(id, tenantID)
	if _, ok := s.templates[key]; !ok {
		return store.ErrNotFound
	}
	delete(s.templates, key)
	return nil
}

var tenantA = uuid.MustParse("11111111-1111-1111-1111-111111111111")
var tenantB = uuid.MustParse("22222222-2222-2222-2222-222222222222")

func newGenerator(t *testing.T, templates map[string]string, rows ...*store.Template) *docgen.Generator {
	t.Helper()

	fsys := fstest.MapFS{}
	for path, content := range templates {
		fsys[path] = &fstest.MapFile{Data: []byte(content)}
	}
	return docgen.New(newFakeStore(rows...), docgen.WithSource(docgen.FSSource{FS: fsys}))
}

func TestGenerate_Success(t *testing.T) {
	g := newGenerator(t,
		map[string]string{"invoice.tpl": "Dear {{ name }}, total {{ total }}."},
		&store.Template{ID: 7, TenantID: tenantA, Path: "invoice.tpl"})

	document, err := g.Generate(context.Background(), docgen.GenerationRequest{
		TemplateID: 7,
		TenantID:   tenantA,
		Context:    map[string]any{"name": "Bob", "total": "$300"},
	})
	require.NoError(t, err)
	require.Equal(t, "Dear Bob, total $300.", string(document))
}

func TestGenerate_PayloadMatchesDirectRender(t *testing.T) {
	template := "Hello {{ name }}"
	data := map[string]any{"name": "Ada"}

	g := newGenerator(t,
		map[string]string{"hello.tpl": template},
		&store.Template{ID: 1, TenantID: tenantA, Path: "hello.tpl"})

	document, err := g.Generate(context.Background(), docgen.GenerationRequest{
		TemplateID: 1, TenantID: tenantA, Context: data,
	})
	require.NoError(t, err)

	direct, err := pongo.New().Render(context.Background(), []byte(template), data)
	require.NoError(t, err)
	require.Equal(t, direct, document)
}

func TestGenerate_TemplateNotFound(t *testing.T) {
	g := newGenerator(t, nil)

	_, err := g.Generate(context.Background(), docgen.GenerationRequest{
		TemplateID: 42, TenantID: tenantA,
	})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestGenerate_TenantIsolation(t *testing.T) {
	g := newGenerator(t,
		map[string]string{"invoice.tpl": "x"},
		&store.Template{ID: 7, TenantID: tenantA, Path: "invoice.tpl"})

	_, err := g.Generate(context.Background(), docgen.GenerationRequest{
		TemplateID: 7, TenantID: tenantB,
	})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestGenerate_RenderFailure(t *testing.T) {
	g := newGenerator(t,
		map[string]string{"broken.tpl": "{% for %}"},
		&store.Template{ID: 3, TenantID: tenantA, Path: "broken.tpl"})

	_, err := g.Generate(context.Background(), docgen.GenerationRequest{
		TemplateID: 3, TenantID: tenantA,
	})

	var renderErr *docgen.RenderError
	require.ErrorAs(t, err, &renderErr)
	require.Equal(t, pongo.Name, renderErr.Renderer)
}

func TestGenerate_HTMLTemplateSanitized(t *testing.T) {
	g := newGenerator(t,
		map[string]string{"doc.html": "<p>{{ name }}</p><script>alert(1)</script>"},
		&store.Template{ID: 5, TenantID: tenantA, Path: "doc.html"})

	document, err := g.Generate(context.Background(), docgen.GenerationRequest{
		TemplateID: 5, TenantID: tenantA, Context: map[string]any{"name": "Bob"},
	})
	require.NoError(t, err)
	require.Contains(t, string(document), "<p>Bob</p>")
	require.NotContains(t, string(document), "<script>")
}

func TestGenerate_EmptyContext(t *testing.T) {
	g := newGenerator(t,
		map[string]string{"static.tpl": "fixed content"},
		&store.Template{ID: 9, TenantID: tenantA, Path: "static.tpl"})

	document, err := g.Generate(context.Background(), docgen.GenerationRequest{
		TemplateID: 9, TenantID: tenantA,
	})
	require.NoError(t, err)
	require.Equal(t, "fixed content", string(document))
}

func TestGenerate_Idempotent(t *testing.T) {
	g := newGenerator(t,
		map[string]string{"invoice.tpl": "total {{ total }}"},
		&store.Template{ID: 7, TenantID: tenantA, Path: "invoice.tpl"})

	req := docgen.GenerationRequest{
		TemplateID: 7, TenantID: tenantA, Context: map[string]any{"total": "$300"},
	}

	first, err := g.Generate(context.Background(), req)
	require.NoError(t, err)
	second, err := g.Generate(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestGenerate_CanceledContext(t *testing.T) {
	g := newGenerator(t,
		map[string]string{"invoice.tpl": "x"},
		&store.Template{ID: 7, TenantID: tenantA, Path: "invoice.tpl"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Generate(ctx, docgen.GenerationRequest{TemplateID: 7, TenantID: tenantA})
	require.ErrorIs(t, err, context.Canceled)
}
