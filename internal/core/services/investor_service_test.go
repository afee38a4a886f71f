package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/models"
	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/repositories"
	"github.com/sreejapuram0307/sherising/internal/core/domain"
)

func TestDashboardAggregatesPortfolio(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInvestorService(repositories.NewInvestmentRepository(db))

	owner := createTestUser(t, db, "Dash Owner", domain.RoleEntrepreneur)
	investor := createTestUser(t, db, "Dash Investor", domain.RoleInvestor)
	ideaA := createTestIdea(t, db, owner, 100000, 0)
	ideaB := createTestIdea(t, db, owner, 50000, 0)

	investments := []*models.Investment{
		{InvestorID: investor.ID, IdeaID: ideaA.ID, Amount: 10000, Status: models.InvestmentOngoing},
		{InvestorID: investor.ID, IdeaID: ideaA.ID, Amount: 5000, Status: models.InvestmentOngoing},
		{InvestorID: investor.ID, IdeaID: ideaB.ID, Amount: 50000, Status: models.InvestmentCompleted},
	}
	require.NoError(t, db.Create(&investments).Error)

	stats, err := svc.Dashboard(context.Background(), investor.ID)
	require.NoError(t, err)

	assert.Equal(t, float64(65000), stats.TotalInvested)
	// Two distinct ideas despite three ledger entries
	assert.Equal(t, 2, stats.IdeasFunded)
	assert.Equal(t, 2, stats.ActiveInvestments)
	assert.Equal(t, 3, stats.TotalInvestments)
}

func TestDashboardEmptyPortfolio(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInvestorService(repositories.NewInvestmentRepository(db))

	investor := createTestUser(t, db, "Empty Investor", domain.RoleInvestor)

	stats, err := svc.Dashboard(context.Background(), investor.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(0), stats.TotalInvested)
	assert.Equal(t, 0, stats.IdeasFunded)
}

func TestMyInvestmentsJoinsIdeaDetails(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInvestorService(repositories.NewInvestmentRepository(db))

	owner := createTestUser(t, db, "List Owner", domain.RoleEntrepreneur)
	investor := createTestUser(t, db, "List Investor", domain.RoleInvestor)
	idea := createTestIdea(t, db, owner, 200000, 75000)

	require.NoError(t, db.Create(&models.Investment{
		InvestorID: investor.ID,
		IdeaID:     idea.ID,
		Amount:     25000,
		Status:     models.InvestmentOngoing,
	}).Error)

	entries, err := svc.MyInvestments(context.Background(), investor.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, idea.Title, entries[0].IdeaTitle)
	assert.Equal(t, float64(25000), entries[0].Amount)
	assert.Equal(t, float64(200000), entries[0].FundingGoal)
	assert.Equal(t, float64(75000), entries[0].AmountRaised)
}
