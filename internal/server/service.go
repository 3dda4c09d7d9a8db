// Package server binds the document generator to the gRPC surface: request
// translation, status mapping, worker admission and transport security.
package server

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	docgenv1 "github.com/goliatone/go-docgen/api/docgen/v1"
	"github.com/goliatone/go-docgen/internal/store"
	"github.com/goliatone/go-docgen/pkg/docgen"
)

// Service implements DocumentService. It is stateless per call; one
// instance is shared by every worker.
type Service struct {
	docgenv1.UnimplementedDocumentServiceServer

	generator *docgen.Generator
	log       *zap.Logger
}

// NewService creates a Service that delegates generation to generator.
func NewService(generator *docgen.Generator, log *zap.Logger) *Service {
	return &Service{generator: generator, log: log}
}

// GenerateDocument resolves and renders one document. Domain failures are
// resolved here into status codes; nothing propagates to the caller as a raw
// internal fault.
func (s *Service) GenerateDocument(ctx context.Context, req *docgenv1.GenerateDocumentRequest) (*docgenv1.GenerateDocumentResponse, error) {
	s.log.Info("Received document generation request",
		zap.Int64("template_id", req.GetTemplateId()),
		zap.String("tenant_id", req.GetTenantId()))

	tenantID, err := uuid.Parse(req.GetTenantId())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "tenant_id %q is not a valid UUID", req.GetTenantId())
	}

	document, err := s.generator.Generate(ctx, docgen.GenerationRequest{
		TemplateID: req.GetTemplateId(),
		TenantID:   tenantID,
		Context:    req.GetContext().AsMap(),
	})
	if err != nil {
		return nil, s.statusFromError(req, err)
	}

	return &docgenv1.GenerateDocumentResponse{Document: document}, nil
}

func (s *Service) statusFromError(req *docgenv1.GenerateDocumentRequest, err error) error {
	var renderErr *docgen.RenderError

	switch {
	case errors.Is(err, store.ErrNotFound):
		s.log.Info("Template not found",
			zap.Int64("template_id", req.GetTemplateId()),
			zap.String("tenant_id", req.GetTenantId()))
		return status.Errorf(codes.NotFound,
			"Template with id %d and tenant %s not found.", req.GetTemplateId(), req.GetTenantId())

	case errors.As(err, &renderErr):
		// Deterministic in template + context; the caller owns the fix.
		s.log.Warn("Render failure",
			zap.Int64("template_id", req.GetTemplateId()),
			zap.Error(renderErr.Err))
		return status.Errorf(codes.InvalidArgument, "rendering failed: %v", renderErr.Err)

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()

	default:
		// Log the cause, never leak it.
		s.log.Error("Document generation failed", zap.Error(err))
		return status.Error(codes.Internal, "document generation failed")
	}
}
