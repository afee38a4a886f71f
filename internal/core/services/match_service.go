package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/models"
	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/repositories"
	"github.com/sreejapuram0307/sherising/internal/core/domain"
)

// MatchService pairs entrepreneurs and investors by location
type MatchService struct {
	userRepo       repositories.UserRepository
	ideaRepo       repositories.IdeaRepository
	investmentRepo repositories.InvestmentRepository
}

// NewMatchService creates a new match service
func NewMatchService(
	userRepo repositories.UserRepository,
	ideaRepo repositories.IdeaRepository,
	investmentRepo repositories.InvestmentRepository,
) *MatchService {
	return &MatchService{
		userRepo:       userRepo,
		ideaRepo:       ideaRepo,
		investmentRepo: investmentRepo,
	}
}

// InvestorMatch is one investor suggested to an entrepreneur
type InvestorMatch struct {
	ID               uint    `json:"id"`
	Name             string  `json:"name"`
	Location         string  `json:"location"`
	BadgeTitle       string  `json:"badgeTitle"`
	InvestmentsMade  int     `json:"investmentsMade"`
	TotalContributed float64 `json:"totalContributed"`
}

// IdeaMatch is one idea suggested to an investor
type IdeaMatch struct {
	ID               uint    `json:"id"`
	Title            string  `json:"title"`
	Category         string  `json:"category"`
	Description      string  `json:"description"`
	FundingGoal      float64 `json:"fundingGoal"`
	AmountRaised     float64 `json:"amountRaised"`
	Likes            int     `json:"likes"`
	Location         string  `json:"location"`
	EntrepreneurID   uint    `json:"entrepreneurId"`
	EntrepreneurName string  `json:"entrepreneurName"`
}

// InvestorsForEntrepreneur suggests investors in the entrepreneur's own
// location.
func (s *MatchService) InvestorsForEntrepreneur(ctx context.Context, userID uint) ([]*InvestorMatch, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.DomainRole() != domain.RoleEntrepreneur {
		return nil, domain.ErrForbidden
	}

	investors, err := s.userRepo.FindByRoleAndLocation(ctx, string(domain.RoleInvestor), user.Location, userID)
	if err != nil {
		return nil, err
	}

	matches := make([]*InvestorMatch, 0, len(investors))
	for _, inv := range investors {
		// Activity comes from the investment ledger rather than the
		// denormalized user counters.
		count, err := s.investmentRepo.CountByInvestor(ctx, inv.ID)
		if err != nil {
			return nil, err
		}
		total, err := s.investmentRepo.SumAmountByInvestor(ctx, inv.ID)
		if err != nil {
			return nil, err
		}
		matches = append(matches, &InvestorMatch{
			ID:               inv.ID,
			Name:             inv.Name,
			Location:         inv.Location,
			BadgeTitle:       inv.BadgeTitle,
			InvestmentsMade:  int(count),
			TotalContributed: total,
		})
	}
	return matches, nil
}

// IdeasForInvestor suggests ideas in the investor's own location, excluding
// nothing by ownership since investors do not post ideas.
func (s *MatchService) IdeasForInvestor(ctx context.Context, userID uint) ([]*IdeaMatch, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.DomainRole() != domain.RoleInvestor {
		return nil, domain.ErrForbidden
	}

	ideas, err := s.ideaRepo.FindByLocation(ctx, user.Location)
	if err != nil {
		return nil, err
	}

	matches := make([]*IdeaMatch, 0, len(ideas))
	for _, idea := range ideas {
		matches = append(matches, &IdeaMatch{
			ID:               idea.ID,
			Title:            idea.Title,
			Category:         idea.Category,
			Description:      idea.Description,
			FundingGoal:      idea.FundingGoal,
			AmountRaised:     idea.AmountRaised,
			Likes:            idea.Likes,
			Location:         idea.Location,
			EntrepreneurID:   idea.EntrepreneurID,
			EntrepreneurName: idea.EntrepreneurName,
		})
	}
	return matches, nil
}

func (s *MatchService) getUser(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
