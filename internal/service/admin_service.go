package service

import (
	"context"
	"fmt"

	"github.com/campuskit/claritycore/internal/domain"
	"github.com/campuskit/claritycore/internal/repository"
)

// AdminService manages the document corpus and exposes system stats.
// Documents are only ever created and edited here; retrieval never writes.
type AdminService struct {
	documentRepo    *repository.DocumentRepository
	interactionRepo *repository.InteractionRepository
	insights        *InsightService
}

// NewAdminService creates a new admin service
func NewAdminService(
	documentRepo *repository.DocumentRepository,
	interactionRepo *repository.InteractionRepository,
	insights *InsightService,
) *AdminService {
	return &AdminService{
		documentRepo:    documentRepo,
		interactionRepo: interactionRepo,
		insights:        insights,
	}
}

// CreateDocument creates a policy or procedure
func (s *AdminService) CreateDocument(ctx context.Context, req *domain.CreateDocumentRequest) (*domain.Document, error) {
	if err := validateKindContent(req.Kind, req.Content, req.Steps); err != nil {
		return nil, err
	}

	doc := &domain.Document{
		Code:         req.Code,
		Title:        req.Title,
		Domain:       req.Domain,
		Kind:         req.Kind,
		Content:      req.Content,
		Steps:        req.Steps,
		OwningOffice: req.OwningOffice,
	}

	if err := s.documentRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// ListDocuments returns the full corpus
func (s *AdminService) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	return s.documentRepo.List(ctx)
}

// GetDocument returns one document, nil when absent
func (s *AdminService) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	return s.documentRepo.Get(ctx, id)
}

// UpdateDocument applies an admin edit, bumping the version
func (s *AdminService) UpdateDocument(ctx context.Context, id string, req *domain.UpdateDocumentRequest) (*domain.Document, error) {
	doc, err := s.documentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}

	if req.Title != "" {
		doc.Title = req.Title
	}
	if req.Domain != "" {
		doc.Domain = req.Domain
	}
	if req.Content != "" {
		doc.Content = req.Content
	}
	if req.Steps != nil {
		doc.Steps = req.Steps
	}
	if req.OwningOffice != "" {
		doc.OwningOffice = req.OwningOffice
	}

	if err := s.documentRepo.Update(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// DeleteDocument removes a document
func (s *AdminService) DeleteDocument(ctx context.Context, id string) error {
	return s.documentRepo.Delete(ctx, id)
}

// Stats returns corpus size, log size, and the overall PCI
func (s *AdminService) Stats(ctx context.Context) (*domain.Stats, error) {
	docs, err := s.documentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	interactions, err := s.interactionRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	pci, err := s.insights.OverallPCI(ctx, nil)
	if err != nil {
		return nil, err
	}

	return &domain.Stats{
		TotalDocuments:    docs,
		TotalInteractions: interactions,
		OverallPCI:        pci,
	}, nil
}

func validateKindContent(kind domain.DocumentKind, content string, steps []string) error {
	switch kind {
	case domain.KindPolicy:
		if content == "" {
			return fmt.Errorf("%w: policy requires content", domain.ErrInvalidRequest)
		}
	case domain.KindProcedure:
		if len(steps) == 0 {
			return fmt.Errorf("%w: procedure requires steps", domain.ErrInvalidRequest)
		}
	default:
		return fmt.Errorf("%w: unknown document kind %q", domain.ErrInvalidRequest, kind)
	}
	return nil
}
