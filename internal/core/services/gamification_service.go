package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/models"
	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/repositories"
	"github.com/sreejapuram0307/sherising/internal/core/badge"
	"github.com/sreejapuram0307/sherising/internal/core/domain"
)

// LeaderboardSize is the number of entries per leaderboard
const LeaderboardSize = 5

// GamificationService exposes leaderboards and badge progress
type GamificationService struct {
	userRepo repositories.UserRepository
}

// NewGamificationService creates a new gamification service
func NewGamificationService(userRepo repositories.UserRepository) *GamificationService {
	return &GamificationService{userRepo: userRepo}
}

// LeaderboardEntry is one ranked user
type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Points     int    `json:"points"`
	BadgeTitle string `json:"badgeTitle"`
	BadgeLevel string `json:"badgeLevel"`
	Metric     int    `json:"metric"`
}

// Leaderboard holds both role leaderboards
type Leaderboard struct {
	Entrepreneurs []*LeaderboardEntry `json:"entrepreneurs"`
	Investors     []*LeaderboardEntry `json:"investors"`
}

// BadgeProgress is the current badge plus the next attainable tier
type BadgeProgress struct {
	Current badge.Badge     `json:"current"`
	Points  int             `json:"points"`
	Next    *badge.Progress `json:"next"`
}

// GetLeaderboard returns the top entrepreneurs by likes received and the
// top investors by investments made.
func (s *GamificationService) GetLeaderboard(ctx context.Context) (*Leaderboard, error) {
	entrepreneurs, err := s.userRepo.TopByLikes(ctx, string(domain.RoleEntrepreneur), LeaderboardSize)
	if err != nil {
		return nil, err
	}

	investors, err := s.userRepo.TopByInvestments(ctx, string(domain.RoleInvestor), LeaderboardSize)
	if err != nil {
		return nil, err
	}

	board := &Leaderboard{
		Entrepreneurs: make([]*LeaderboardEntry, 0, len(entrepreneurs)),
		Investors:     make([]*LeaderboardEntry, 0, len(investors)),
	}

	for i, u := range entrepreneurs {
		board.Entrepreneurs = append(board.Entrepreneurs, toEntry(i+1, u, u.TotalLikesReceived))
	}
	for i, u := range investors {
		board.Investors = append(board.Investors, toEntry(i+1, u, u.TotalInvestmentsMade))
	}

	return board, nil
}

// GetBadgeProgress returns a user's current badge and the next tier to aim
// for. Nil Next means the user already holds the top badge of their track,
// or has no track at all.
func (s *GamificationService) GetBadgeProgress(ctx context.Context, userID uint) (*BadgeProgress, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &BadgeProgress{
		Current: user.Badge(),
		Points:  user.Points,
		Next:    badge.Next(user.DomainRole(), user.Stats()),
	}, nil
}

func toEntry(rank int, u *models.User, metric int) *LeaderboardEntry {
	return &LeaderboardEntry{
		Rank:       rank,
		ID:         u.ID,
		Name:       u.Name,
		Points:     u.Points,
		BadgeTitle: u.BadgeTitle,
		BadgeLevel: u.BadgeLevel,
		Metric:     metric,
	}
}
