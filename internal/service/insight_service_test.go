package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/claritycore/internal/clarity"
	"github.com/campuskit/claritycore/internal/domain"
	"github.com/campuskit/claritycore/internal/repository"
)

func newInsightService(t *testing.T) (*InsightService, *repository.DocumentRepository, *repository.InteractionRepository) {
	t.Helper()
	docRepo, interactionRepo := newTestRepos(t)
	svc := NewInsightService(docRepo, interactionRepo, clarity.DefaultLexicon(), nil)
	return svc, docRepo, interactionRepo
}

func logInteraction(t *testing.T, repo *repository.InteractionRepository, in domain.Interaction) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &in))
}

func confidence(v int) *int { return &v }

func TestDomainLeaderboardAlwaysReportsAllDomains(t *testing.T) {
	svc, _, _ := newInsightService(t)

	rows, err := svc.DomainLeaderboard(context.Background(), nil)
	require.NoError(t, err)
	// four lexicon domains plus GENERAL, all at full clarity
	require.Len(t, rows, 5)
	for _, row := range rows {
		assert.Equal(t, 100, row.PCI)
		assert.Equal(t, 0, row.Total)
	}
}

func TestDomainLeaderboardWorstFirst(t *testing.T) {
	svc, docRepo, interactionRepo := newInsightService(t)
	ctx := context.Background()

	require.NoError(t, docRepo.Create(ctx, &domain.Document{
		Code: "PROC-HST-02", Title: "Hostel Outpass Procedure",
		Domain: domain.DomainHostel, Kind: domain.KindProcedure, Steps: []string{"step"},
	}))

	for i := 0; i < 10; i++ {
		logInteraction(t, interactionRepo, domain.Interaction{
			UserID: "u", Intent: "HOSTEL", ProcedureCode: "PROC-HST-02",
			FollowUp: i < 4, AIConfidence: confidence(40),
		})
	}

	rows, err := svc.DomainLeaderboard(ctx, nil)
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, domain.DomainHostel, rows[0].Key)
	// domain variant: 100 - 16 - 30 - 40 = 14, clamped range holds
	assert.Equal(t, 14, rows[0].PCI)
	assert.Equal(t, clarity.SuggestionRewrite, rows[0].Suggestion)
}

func TestDomainLeaderboardUnmatchedRollsUpToGeneral(t *testing.T) {
	svc, _, interactionRepo := newInsightService(t)
	ctx := context.Background()

	logInteraction(t, interactionRepo, domain.Interaction{UserID: "u", Intent: "GENERAL"})

	rows, err := svc.DomainLeaderboard(ctx, nil)
	require.NoError(t, err)

	var general *InsightRow
	for i := range rows {
		if rows[i].Key == domain.DomainGeneral {
			general = &rows[i]
		}
	}
	require.NotNil(t, general)
	assert.Equal(t, 1, general.Total)
}

func TestDepartmentLeaderboardOmitsUnknownDepartments(t *testing.T) {
	svc, _, interactionRepo := newInsightService(t)
	ctx := context.Background()

	logInteraction(t, interactionRepo, domain.Interaction{UserID: "a", Intent: "FEES", DepartmentID: "dep-1", FollowUp: true})
	logInteraction(t, interactionRepo, domain.Interaction{UserID: "b", Intent: "FEES", DepartmentID: "dep-1"})
	logInteraction(t, interactionRepo, domain.Interaction{UserID: "c", Intent: "FEES"})

	rows, err := svc.DepartmentLeaderboard(ctx, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "dep-1", rows[0].Key)
	assert.Equal(t, 2, rows[0].Total)
	assert.Equal(t, 1, rows[0].FollowUps)
	// base calculator here: no repetition penalty
	assert.Equal(t, 80, rows[0].PCI)
}

func TestDocumentLeaderboardOmitsZeroGroups(t *testing.T) {
	svc, _, interactionRepo := newInsightService(t)
	ctx := context.Background()

	logInteraction(t, interactionRepo, domain.Interaction{UserID: "a", Intent: "FEES", PolicyCode: "POL-FEE-01", FollowUp: true, AIConfidence: confidence(50)})
	logInteraction(t, interactionRepo, domain.Interaction{UserID: "b", Intent: "FEES", PolicyCode: "POL-FEE-01", FollowUp: true, AIConfidence: confidence(50)})
	logInteraction(t, interactionRepo, domain.Interaction{UserID: "c", Intent: "HOSTEL", ProcedureCode: "PROC-HST-02", AIConfidence: confidence(85)})
	logInteraction(t, interactionRepo, domain.Interaction{UserID: "d", Intent: "GENERAL"})

	rows, err := svc.DocumentLeaderboard(ctx, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// POL-FEE-01: 100 - 40 - 30 = 30, worst first, rewrite suggested
	assert.Equal(t, "POL-FEE-01", rows[0].Key)
	assert.Equal(t, 30, rows[0].PCI)
	assert.Equal(t, clarity.SuggestionRewrite, rows[0].Suggestion)
	assert.Equal(t, "PROC-HST-02", rows[1].Key)
	assert.Equal(t, 100, rows[1].PCI)
	assert.Equal(t, clarity.SuggestionMinor, rows[1].Suggestion)
}

func TestOverallPCI(t *testing.T) {
	svc, _, interactionRepo := newInsightService(t)
	ctx := context.Background()

	pci, err := svc.OverallPCI(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 100, pci)

	for i := 0; i < 10; i++ {
		conf := 85
		if i < 3 {
			conf = 50
		}
		logInteraction(t, interactionRepo, domain.Interaction{
			UserID: "u", Intent: "FEES",
			FollowUp:     i < 4,
			AIConfidence: confidence(conf),
		})
	}

	pci, err = svc.OverallPCI(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 75, pci)
}
