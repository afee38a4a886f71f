package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/repositories"
	"github.com/sreejapuram0307/sherising/internal/core/domain"
)

func TestLeaderboardRanksByMetric(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGamificationService(repositories.NewUserRepository(db))

	low := createTestUser(t, db, "Low Likes", domain.RoleEntrepreneur)
	low.TotalLikesReceived = 2
	require.NoError(t, db.Save(low).Error)

	high := createTestUser(t, db, "High Likes", domain.RoleEntrepreneur)
	high.TotalLikesReceived = 9
	require.NoError(t, db.Save(high).Error)

	inv := createTestUser(t, db, "Busy Investor", domain.RoleInvestor)
	inv.TotalInvestmentsMade = 4
	require.NoError(t, db.Save(inv).Error)

	board, err := svc.GetLeaderboard(context.Background())
	require.NoError(t, err)

	require.Len(t, board.Entrepreneurs, 2)
	assert.Equal(t, high.ID, board.Entrepreneurs[0].ID)
	assert.Equal(t, 1, board.Entrepreneurs[0].Rank)
	assert.Equal(t, 9, board.Entrepreneurs[0].Metric)
	assert.Equal(t, low.ID, board.Entrepreneurs[1].ID)

	require.Len(t, board.Investors, 1)
	assert.Equal(t, inv.ID, board.Investors[0].ID)
	assert.Equal(t, 4, board.Investors[0].Metric)
}

func TestLeaderboardCapsAtFive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGamificationService(repositories.NewUserRepository(db))

	names := []string{"E One", "E Two", "E Three", "E Four", "E Five", "E Six", "E Seven"}
	for i, name := range names {
		u := createTestUser(t, db, name, domain.RoleEntrepreneur)
		u.TotalLikesReceived = i
		require.NoError(t, db.Save(u).Error)
	}

	board, err := svc.GetLeaderboard(context.Background())
	require.NoError(t, err)
	assert.Len(t, board.Entrepreneurs, LeaderboardSize)
}

func TestBadgeProgressForEntrepreneur(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGamificationService(repositories.NewUserRepository(db))

	user := createTestUser(t, db, "Progress User", domain.RoleEntrepreneur)
	user.TotalLikesReceived = 5
	user.Points = 25
	require.NoError(t, db.Save(user).Error)

	progress, err := svc.GetBadgeProgress(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, 25, progress.Points)
	require.NotNil(t, progress.Next)
	assert.Equal(t, "Rising Creator", progress.Next.NextBadge)
	assert.Equal(t, 2, progress.Next.Remaining)
}

func TestBadgeProgressNilForMentor(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGamificationService(repositories.NewUserRepository(db))

	user := createTestUser(t, db, "Mentor User", domain.RoleMentor)

	progress, err := svc.GetBadgeProgress(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Nil(t, progress.Next)
}

func TestBadgeProgressUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGamificationService(repositories.NewUserRepository(db))

	_, err := svc.GetBadgeProgress(context.Background(), 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
