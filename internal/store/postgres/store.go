// Package postgres implements the template store on Postgres.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/goliatone/go-docgen/internal/store"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Store implements store.TemplateStore for Postgres. The underlying sqlx
// handle checks a connection out of its pool per call, so one Store is
// shared safely across all request workers.
type Store struct {
	db *sqlx.DB
}

// Open connects to the database at dsn and configures the connection pool.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return NewStore(db), nil
}

// NewStore wraps an existing database handle.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// FindTemplate resolves a template by id, scoped to the owning tenant.
func (s *Store) FindTemplate(ctx context.Context, id int64, tenantID uuid.UUID) (*store.Template, error) {
	query, args, err := psql.
		Select("id", "name", "tenant_id", "path", "created_at", "updated_at").
		From("templates").
		Where(sq.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("postgres: build find query: %w", err)
	}

	var template store.Template
	if err := s.db.GetContext(ctx, &template, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("postgres: find template: %w", err)
	}
	return &template, nil
}

// CreateTemplate inserts a row; the store assigns id and timestamps.
func (s *Store) CreateTemplate(ctx context.Context, template *store.Template) error {
	query, args, err := psql.
		Insert("templates").
		Columns("name", "tenant_id", "path").
		Values(template.Name, template.TenantID, template.Path).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("postgres: build insert query: %w", err)
	}

	err = s.db.QueryRowxContext(ctx, query, args...).
		Scan(&template.ID, &template.CreatedAt, &template.UpdatedAt)
	if err != nil {
		return fmt.Errorf("postgres: create template: %w", err)
	}
	return nil
}

// DeleteTemplate removes a row, scoped to the owning tenant.
func (s *Store) DeleteTemplate(ctx context.Context, id int64, tenantID uuid.UUID) error {
	query, args, err := psql.
		Delete("templates").
		Where(sq.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("postgres: build delete query: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("postgres: delete template: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("postgres: rows affected: %w", err)
	}
	if rows == 0 {
		return store.ErrNotFound
	}
	return nil
}
