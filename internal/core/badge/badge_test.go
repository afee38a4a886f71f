package badge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sreejapuram0307/sherising/internal/core/domain"
)

func TestForEntrepreneur(t *testing.T) {
	tests := []struct {
		likes int
		title string
		level string
	}{
		{0, "Newcomer", LevelBronze},
		{2, "Newcomer", LevelBronze},
		{3, "Starter Innovator", LevelBronze},
		{6, "Starter Innovator", LevelBronze},
		{7, "Rising Creator", LevelSilver},
		{15, "Community Star", LevelGold},
		{24, "Community Star", LevelGold},
		{25, "Top Visionary", LevelPlatinum},
		{1000, "Top Visionary", LevelPlatinum},
	}

	for _, tt := range tests {
		b := ForEntrepreneur(tt.likes)
		assert.Equal(t, tt.title, b.Title, "likes=%d", tt.likes)
		assert.Equal(t, tt.level, b.Level, "likes=%d", tt.likes)
	}
}

func TestForEntrepreneurMonotonic(t *testing.T) {
	rank := map[string]int{LevelBronze: 0, LevelSilver: 1, LevelGold: 2, LevelPlatinum: 3}

	prev := ForEntrepreneur(0)
	for likes := 1; likes <= 30; likes++ {
		cur := ForEntrepreneur(likes)
		assert.GreaterOrEqual(t, rank[cur.Level], rank[prev.Level], "likes=%d", likes)
		prev = cur
	}
}

func TestForInvestor(t *testing.T) {
	tests := []struct {
		name        string
		investments int
		funding     float64
		title       string
		level       string
	}{
		{"no activity", 0, 0, "Newcomer", LevelBronze},
		{"one investment", 1, 500, "Newcomer", LevelBronze},
		{"two investments", 2, 100, "Active Supporter", LevelBronze},
		{"five investments low funding", 5, 5000, "Growth Backer", LevelSilver},
		{"funding only gold", 1, 10000, "Angel Contributor", LevelGold},
		{"funding only platinum", 1, 25000, "Impact Champion", LevelPlatinum},
		{"everything maxed", 10, 30000, "Impact Champion", LevelPlatinum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ForInvestor(tt.investments, tt.funding)
			assert.Equal(t, tt.title, b.Title)
			assert.Equal(t, tt.level, b.Level)
		})
	}
}

// A user satisfying both the Growth Backer count floor and the Angel
// Contributor funding floor gets Angel Contributor, because it sits later
// in the table. Table order decides, not numeric magnitude.
func TestForInvestorTableOrderWins(t *testing.T) {
	b := ForInvestor(5, 10000)
	assert.Equal(t, "Angel Contributor", b.Title)
	assert.Equal(t, LevelGold, b.Level)
}

func TestNextEntrepreneur(t *testing.T) {
	p := Next(domain.RoleEntrepreneur, Stats{TotalLikesReceived: 2})
	if assert.NotNil(t, p) {
		assert.Equal(t, "Starter Innovator", p.NextBadge)
		assert.Equal(t, 3, p.Required)
		assert.Equal(t, 2, p.Current)
		assert.Equal(t, 1, p.Remaining)
	}

	p = Next(domain.RoleEntrepreneur, Stats{TotalLikesReceived: 20})
	if assert.NotNil(t, p) {
		assert.Equal(t, "Top Visionary", p.NextBadge)
		assert.Equal(t, 5, p.Remaining)
	}

	// Max tier reached: nothing left to chase.
	assert.Nil(t, Next(domain.RoleEntrepreneur, Stats{TotalLikesReceived: 25}))
}

func TestNextInvestor(t *testing.T) {
	p := Next(domain.RoleInvestor, Stats{TotalInvestmentsMade: 1, TotalFundingAmount: 500})
	if assert.NotNil(t, p) {
		assert.Equal(t, "Active Supporter", p.NextBadge)
		assert.Equal(t, 1, p.RemainingInvestments)
	}

	// Remaining amounts never go negative.
	p = Next(domain.RoleInvestor, Stats{TotalInvestmentsMade: 7, TotalFundingAmount: 9000})
	if assert.NotNil(t, p) {
		assert.Equal(t, "Angel Contributor", p.NextBadge)
		assert.Equal(t, 0, p.RemainingInvestments)
		assert.Equal(t, 1000.0, p.RemainingFunding)
	}

	assert.Nil(t, Next(domain.RoleInvestor, Stats{TotalInvestmentsMade: 5, TotalFundingAmount: 25000}))
}

func TestNextMentor(t *testing.T) {
	assert.Nil(t, Next(domain.RoleMentor, Stats{}))
}

func TestPoints(t *testing.T) {
	assert.Equal(t, 5, Points(domain.RoleEntrepreneur, ActionLike, 0))
	assert.Equal(t, 20, Points(domain.RoleEntrepreneur, ActionInvestment, 0))
	assert.Equal(t, 10, Points(domain.RoleInvestor, ActionInvestment, 0))
	assert.Equal(t, 10, Points(domain.RoleInvestor, ActionInvestment, 999))
	assert.Equal(t, 11, Points(domain.RoleInvestor, ActionInvestment, 1000))
	assert.Equal(t, 60, Points(domain.RoleInvestor, ActionInvestment, 50000))

	// Combinations outside the table award nothing.
	assert.Equal(t, 0, Points(domain.RoleInvestor, ActionLike, 0))
	assert.Equal(t, 0, Points(domain.RoleMentor, ActionInvestment, 5000))
}

func TestForRole(t *testing.T) {
	assert.Equal(t, "Rising Creator", ForRole(domain.RoleEntrepreneur, Stats{TotalLikesReceived: 8}).Title)
	assert.Equal(t, "Growth Backer", ForRole(domain.RoleInvestor, Stats{TotalInvestmentsMade: 5, TotalFundingAmount: 5000}).Title)
	assert.Equal(t, "Newcomer", ForRole(domain.RoleMentor, Stats{TotalLikesReceived: 100}).Title)
}
