// Package store defines the template metadata store consumed by the
// document generator.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no template matches an (id, tenant) pair.
var ErrNotFound = errors.New("store: template not found")

// Template is one row of stored template metadata. Rows are created by an
// administrative path and read-only for the request path.
type Template struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	TenantID  uuid.UUID `db:"tenant_id"`
	Path      string    `db:"path"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// TemplateStore resolves template metadata. Lookups are always scoped by
// both template id and owning tenant; an id alone never resolves.
// Implementations must be safe for concurrent use across the worker pool.
type TemplateStore interface {
	FindTemplate(ctx context.Context, id int64, tenantID uuid.UUID) (*Template, error)
	CreateTemplate(ctx context.Context, template *Template) error
	DeleteTemplate(ctx context.Context, id int64, tenantID uuid.UUID) error
}
