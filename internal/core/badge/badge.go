// Package badge implements the gamification badge and point rules.
// All functions are pure lookups over the fixed threshold tables below.
package badge

import (
	"github.com/sreejapuram0307/sherising/internal/core/domain"
)

// Badge levels
const (
	LevelBronze   = "Bronze"
	LevelSilver   = "Silver"
	LevelGold     = "Gold"
	LevelPlatinum = "Platinum"
)

// Actions that award points
const (
	ActionLike       = "like"
	ActionInvestment = "investment"
)

// Badge is a derived (title, level) pair summarizing a user's engagement
type Badge struct {
	Title string `json:"title"`
	Level string `json:"level"`
}

// Stats holds the cumulative counters badges are derived from
type Stats struct {
	TotalLikesReceived   int     `json:"totalLikesReceived"`
	TotalInvestmentsMade int     `json:"totalInvestmentsMade"`
	TotalFundingAmount   float64 `json:"totalFundingAmount"`
}

// Newcomer is the default badge below all thresholds
func Newcomer() Badge {
	return Badge{Title: "Newcomer", Level: LevelBronze}
}

type entrepreneurTier struct {
	title    string
	level    string
	minLikes int
}

type investorTier struct {
	title          string
	level          string
	minInvestments int
	minFunding     float64
}

// Tier tables are evaluated top to bottom and the last satisfied row wins.
// The investor table is intentionally not ordered by magnitude: a user
// meeting both the Growth Backer and Angel Contributor criteria ends up
// with Angel Contributor because it sits later in the table. Do not reorder.
var entrepreneurTiers = []entrepreneurTier{
	{"Starter Innovator", LevelBronze, 3},
	{"Rising Creator", LevelSilver, 7},
	{"Community Star", LevelGold, 15},
	{"Top Visionary", LevelPlatinum, 25},
}

var investorTiers = []investorTier{
	{"Active Supporter", LevelBronze, 2, 0},
	{"Growth Backer", LevelSilver, 5, 0},
	{"Angel Contributor", LevelGold, 0, 10000},
	{"Impact Champion", LevelPlatinum, 0, 25000},
}

// ForEntrepreneur returns the badge for an entrepreneur with the given
// cumulative like count.
func ForEntrepreneur(totalLikes int) Badge {
	b := Newcomer()
	for _, t := range entrepreneurTiers {
		if totalLikes >= t.minLikes {
			b = Badge{Title: t.title, Level: t.level}
		}
	}
	return b
}

// ForInvestor returns the badge for an investor. A zero floor on either
// dimension is treated as automatically satisfied.
func ForInvestor(totalInvestments int, totalFunding float64) Badge {
	b := Newcomer()
	for _, t := range investorTiers {
		meetsInvestments := t.minInvestments == 0 || totalInvestments >= t.minInvestments
		meetsFunding := t.minFunding == 0 || totalFunding >= t.minFunding
		if meetsInvestments && meetsFunding {
			b = Badge{Title: t.title, Level: t.level}
		}
	}
	return b
}

// ForRole computes the badge for any role from cumulative stats.
// Mentors have no badge track and keep the default.
func ForRole(role domain.Role, stats Stats) Badge {
	switch role {
	case domain.RoleEntrepreneur:
		return ForEntrepreneur(stats.TotalLikesReceived)
	case domain.RoleInvestor:
		return ForInvestor(stats.TotalInvestmentsMade, stats.TotalFundingAmount)
	default:
		return Newcomer()
	}
}

// Progress describes the first tier a user has not reached yet
type Progress struct {
	NextBadge            string  `json:"nextBadge"`
	Required             int     `json:"required,omitempty"`
	Current              int     `json:"current,omitempty"`
	Remaining            int     `json:"remaining,omitempty"`
	RequiredInvestments  int     `json:"requiredInvestments,omitempty"`
	RequiredFunding      float64 `json:"requiredFunding,omitempty"`
	CurrentInvestments   int     `json:"currentInvestments,omitempty"`
	CurrentFunding       float64 `json:"currentFunding,omitempty"`
	RemainingInvestments int     `json:"remainingInvestments,omitempty"`
	RemainingFunding     float64 `json:"remainingFunding,omitempty"`
}

// Next returns the first tier (in table order) not yet satisfied, or nil
// when the user already qualifies for the final row.
func Next(role domain.Role, stats Stats) *Progress {
	switch role {
	case domain.RoleEntrepreneur:
		for _, t := range entrepreneurTiers {
			if stats.TotalLikesReceived < t.minLikes {
				return &Progress{
					NextBadge: t.title,
					Required:  t.minLikes,
					Current:   stats.TotalLikesReceived,
					Remaining: t.minLikes - stats.TotalLikesReceived,
				}
			}
		}
		return nil
	case domain.RoleInvestor:
		for _, t := range investorTiers {
			needsInvestments := t.minInvestments > 0 && stats.TotalInvestmentsMade < t.minInvestments
			needsFunding := t.minFunding > 0 && stats.TotalFundingAmount < t.minFunding
			if needsInvestments || needsFunding {
				return &Progress{
					NextBadge:            t.title,
					RequiredInvestments:  t.minInvestments,
					RequiredFunding:      t.minFunding,
					CurrentInvestments:   stats.TotalInvestmentsMade,
					CurrentFunding:       stats.TotalFundingAmount,
					RemainingInvestments: maxInt(0, t.minInvestments-stats.TotalInvestmentsMade),
					RemainingFunding:     maxFloat(0, t.minFunding-stats.TotalFundingAmount),
				}
			}
		}
		return nil
	default:
		return nil
	}
}

// Points returns the points awarded for an action. The amount only matters
// for investor investments: 10 base plus 1 per full 1000 invested.
func Points(role domain.Role, action string, amount float64) int {
	switch role {
	case domain.RoleEntrepreneur:
		switch action {
		case ActionLike:
			return 5
		case ActionInvestment:
			return 20
		}
	case domain.RoleInvestor:
		if action == ActionInvestment {
			return 10 + int(amount/1000)
		}
	}
	return 0
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
