package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/claritycore/internal/domain"
)

func TestInteractionRepositoryAppendAndList(t *testing.T) {
	repo := NewInteractionRepository(newTestDB(t))
	ctx := context.Background()

	confidence := 85
	entry := &domain.Interaction{
		UserID:        "stu-1",
		DepartmentID:  "dep-cse",
		Role:          "student",
		Intent:        "HOSTEL",
		ProcedureCode: "PROC-HST-02",
		AIConfidence:  &confidence,
		FollowUp:      false,
	}
	require.NoError(t, repo.Create(ctx, entry))
	require.NotEmpty(t, entry.ID)

	got, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "stu-1", got[0].UserID)
	assert.Equal(t, "PROC-HST-02", got[0].ProcedureCode)
	assert.Empty(t, got[0].PolicyCode)
	require.NotNil(t, got[0].AIConfidence)
	assert.Equal(t, 85, *got[0].AIConfidence)
}

func TestInteractionRepositoryNilConfidence(t *testing.T) {
	repo := NewInteractionRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Interaction{
		UserID: "stu-2",
		Intent: "GENERAL",
	}))

	got, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].AIConfidence)
}

func TestInteractionRepositoryFilterByDepartment(t *testing.T) {
	repo := NewInteractionRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Interaction{UserID: "a", Intent: "FEES", DepartmentID: "dep-1"}))
	require.NoError(t, repo.Create(ctx, &domain.Interaction{UserID: "b", Intent: "FEES", DepartmentID: "dep-2"}))

	got, err := repo.List(ctx, &domain.InteractionFilter{DepartmentID: "dep-1"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].UserID)
}

func TestInteractionRepositoryFilterByTimeRange(t *testing.T) {
	repo := NewInteractionRepository(newTestDB(t))
	ctx := context.Background()

	old := &domain.Interaction{UserID: "old", Intent: "FEES", CreatedAt: time.Now().Add(-48 * time.Hour)}
	recent := &domain.Interaction{UserID: "recent", Intent: "FEES", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Create(ctx, recent))

	got, err := repo.List(ctx, &domain.InteractionFilter{From: time.Now().Add(-24 * time.Hour)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "recent", got[0].UserID)

	got, err = repo.List(ctx, &domain.InteractionFilter{To: time.Now().Add(-24 * time.Hour)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "old", got[0].UserID)
}

func TestInteractionRepositoryListOldestFirst(t *testing.T) {
	repo := NewInteractionRepository(newTestDB(t))
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i, user := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &domain.Interaction{
			UserID:    user,
			Intent:    "GENERAL",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	got, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].UserID)
	assert.Equal(t, "third", got[2].UserID)
}

func TestInteractionRepositoryCount(t *testing.T) {
	repo := NewInteractionRepository(newTestDB(t))
	ctx := context.Background()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, repo.Create(ctx, &domain.Interaction{UserID: "a", Intent: "FEES"}))
	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
