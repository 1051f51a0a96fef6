package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/campuskit/claritycore/internal/clarity"
	"github.com/campuskit/claritycore/internal/domain"
	"github.com/campuskit/claritycore/internal/repository"
)

// AskService answers student queries: it classifies intent, retrieves the
// best-matching document, and appends an interaction log entry.
type AskService struct {
	engine          *clarity.Engine
	classifier      *clarity.IntentClassifier
	interactionRepo *repository.InteractionRepository
	logger          *zap.Logger
}

// NewAskService creates a new ask service
func NewAskService(
	engine *clarity.Engine,
	classifier *clarity.IntentClassifier,
	interactionRepo *repository.InteractionRepository,
	logger *zap.Logger,
) *AskService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AskService{
		engine:          engine,
		classifier:      classifier,
		interactionRepo: interactionRepo,
		logger:          logger,
	}
}

// Ask handles one student query. Intent classification and retrieval are
// independent signals and may disagree. A corpus read failure degrades to the
// no-match response so the student-facing flow never crashes; the interaction
// is logged either way.
func (s *AskService) Ask(ctx context.Context, req *domain.AskRequest) (*domain.AskResponse, error) {
	intent := s.classifier.Classify(req.Query)

	match, err := s.engine.Retrieve(ctx, req.Query)
	if err != nil {
		s.logger.Error("retrieval unavailable, answering with no match",
			zap.String("query", req.Query), zap.Error(err))
		match = nil
	}

	confidence := intent.Confidence
	entry := &domain.Interaction{
		UserID:       req.UserID,
		DepartmentID: req.DepartmentID,
		Role:         req.Role,
		Intent:       intent.Intent,
		AIConfidence: &confidence,
		FollowUp:     req.FollowUp,
	}

	resp := &domain.AskResponse{
		Intent:     intent.Intent,
		Confidence: intent.Confidence,
	}

	if match != nil {
		doc := match.Document
		resp.Document = &doc
		switch doc.Kind {
		case domain.KindProcedure:
			entry.ProcedureCode = doc.Code
		default:
			entry.PolicyCode = doc.Code
		}
	}

	// The answer still stands if the append fails; losing one log entry is
	// preferable to failing the student.
	if err := s.interactionRepo.Create(ctx, entry); err != nil {
		s.logger.Error("failed to append interaction", zap.Error(err))
	}

	return resp, nil
}
