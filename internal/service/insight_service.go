package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/campuskit/claritycore/internal/clarity"
	"github.com/campuskit/claritycore/internal/domain"
	"github.com/campuskit/claritycore/internal/repository"
)

// InsightRow is one leaderboard entry: an aggregate annotated with its
// remediation suggestion.
type InsightRow struct {
	clarity.Aggregate
	Suggestion string `json:"suggestion"`
}

// InsightService computes clarity leaderboards over the interaction log.
// Everything is recomputed from the raw log on each call; there is no cache.
type InsightService struct {
	documentRepo    *repository.DocumentRepository
	interactionRepo *repository.InteractionRepository
	lexicon         *clarity.Lexicon
	logger          *zap.Logger
}

// NewInsightService creates a new insight service
func NewInsightService(
	documentRepo *repository.DocumentRepository,
	interactionRepo *repository.InteractionRepository,
	lexicon *clarity.Lexicon,
	logger *zap.Logger,
) *InsightService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InsightService{
		documentRepo:    documentRepo,
		interactionRepo: interactionRepo,
		lexicon:         lexicon,
		logger:          logger,
	}
}

// DomainLeaderboard ranks domains worst-first using the domain PCI variant.
// Every lexicon domain plus GENERAL is always present, defaulting to PCI 100
// when it attracted no queries. An interaction's domain is the matched
// document's domain; unmatched interactions roll up to GENERAL.
func (s *InsightService) DomainLeaderboard(ctx context.Context, filter *domain.InteractionFilter) ([]InsightRow, error) {
	interactions, err := s.interactionRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	domainByCode, err := s.domainIndex(ctx)
	if err != nil {
		return nil, err
	}

	key := func(in domain.Interaction) string {
		code := in.PolicyCode
		if code == "" {
			code = in.ProcedureCode
		}
		if d, ok := domainByCode[code]; ok {
			return d
		}
		return domain.DomainGeneral
	}

	known := append(s.lexicon.Domains(), domain.DomainGeneral)
	aggs := clarity.GroupPCI(interactions, key, clarity.ComputeDomainPCI, known)
	return annotate(aggs), nil
}

// DepartmentLeaderboard ranks departments worst-first with the base PCI.
// Interactions without a department are skipped.
func (s *InsightService) DepartmentLeaderboard(ctx context.Context, filter *domain.InteractionFilter) ([]InsightRow, error) {
	interactions, err := s.interactionRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	key := func(in domain.Interaction) string { return in.DepartmentID }
	aggs := clarity.GroupPCI(interactions, key, clarity.ComputePCI, nil)
	return annotate(aggs), nil
}

// DocumentLeaderboard ranks matched documents worst-first with the base PCI.
// Documents that no interaction matched are omitted; there is nothing to rank.
func (s *InsightService) DocumentLeaderboard(ctx context.Context, filter *domain.InteractionFilter) ([]InsightRow, error) {
	interactions, err := s.interactionRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	key := func(in domain.Interaction) string {
		if in.PolicyCode != "" {
			return in.PolicyCode
		}
		return in.ProcedureCode
	}
	aggs := clarity.GroupPCI(interactions, key, clarity.ComputePCI, nil)
	return annotate(aggs), nil
}

// OverallPCI computes the flat PCI over the whole (filtered) log.
func (s *InsightService) OverallPCI(ctx context.Context, filter *domain.InteractionFilter) (int, error) {
	interactions, err := s.interactionRepo.List(ctx, filter)
	if err != nil {
		return 0, err
	}
	return clarity.AggregatePCI(interactions), nil
}

func (s *InsightService) domainIndex(ctx context.Context) (map[string]string, error) {
	docs, err := s.documentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[string]string, len(docs))
	for _, d := range docs {
		index[d.Code] = d.Domain
	}
	return index, nil
}

func annotate(aggs []clarity.Aggregate) []InsightRow {
	rows := make([]InsightRow, len(aggs))
	for i, agg := range aggs {
		rows[i] = InsightRow{Aggregate: agg, Suggestion: clarity.Suggest(agg)}
	}
	return rows
}
