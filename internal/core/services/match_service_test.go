package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/models"
	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/repositories"
	"github.com/sreejapuram0307/sherising/internal/core/domain"
	"gorm.io/gorm"
)

func newMatchService(db *gorm.DB) *MatchService {
	return NewMatchService(
		repositories.NewUserRepository(db),
		repositories.NewIdeaRepository(db),
		repositories.NewInvestmentRepository(db),
	)
}

func TestMatchInvestorsSameLocationOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := newMatchService(db)

	entrepreneur := createTestUser(t, db, "Match Entrepreneur", domain.RoleEntrepreneur)

	near := createTestUser(t, db, "Near Investor", domain.RoleInvestor)
	far := createTestUser(t, db, "Far Investor", domain.RoleInvestor)
	far.Location = "Kolkata"
	require.NoError(t, db.Save(far).Error)

	matches, err := svc.InvestorsForEntrepreneur(context.Background(), entrepreneur.ID)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, near.ID, matches[0].ID)
}

func TestMatchInvestorsAggregateFromLedger(t *testing.T) {
	db := setupTestDB(t)
	svc := newMatchService(db)

	entrepreneur := createTestUser(t, db, "Ledger Entrepreneur", domain.RoleEntrepreneur)
	investor := createTestUser(t, db, "Ledger Investor", domain.RoleInvestor)
	idea := createTestIdea(t, db, entrepreneur, 100000, 0)

	investments := []*models.Investment{
		{InvestorID: investor.ID, IdeaID: idea.ID, Amount: 10000, Status: models.InvestmentOngoing},
		{InvestorID: investor.ID, IdeaID: idea.ID, Amount: 2500, Status: models.InvestmentOngoing},
	}
	require.NoError(t, db.Create(&investments).Error)

	matches, err := svc.InvestorsForEntrepreneur(context.Background(), entrepreneur.ID)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	assert.Equal(t, 2, matches[0].InvestmentsMade)
	assert.Equal(t, float64(12500), matches[0].TotalContributed)
}

func TestMatchInvestorsRejectsWrongRole(t *testing.T) {
	db := setupTestDB(t)
	svc := newMatchService(db)

	investor := createTestUser(t, db, "Wrong Role Investor", domain.RoleInvestor)

	_, err := svc.InvestorsForEntrepreneur(context.Background(), investor.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestMatchIdeasSameLocationOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := newMatchService(db)

	owner := createTestUser(t, db, "Match Owner", domain.RoleEntrepreneur)
	investor := createTestUser(t, db, "Match Investor", domain.RoleInvestor)

	local := createTestIdea(t, db, owner, 100000, 0)

	remoteOwner := createTestUser(t, db, "Remote Owner", domain.RoleEntrepreneur)
	remoteOwner.Location = "Jaipur"
	require.NoError(t, db.Save(remoteOwner).Error)
	createTestIdea(t, db, remoteOwner, 50000, 0)

	matches, err := svc.IdeasForInvestor(context.Background(), investor.ID)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, local.ID, matches[0].ID)
	assert.Equal(t, owner.Name, matches[0].EntrepreneurName)
}

func TestMatchIdeasRejectsWrongRole(t *testing.T) {
	db := setupTestDB(t)
	svc := newMatchService(db)

	mentor := createTestUser(t, db, "Match Mentor", domain.RoleMentor)

	_, err := svc.IdeasForInvestor(context.Background(), mentor.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
