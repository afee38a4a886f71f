package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/models"
	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/repositories"
	"github.com/sreejapuram0307/sherising/internal/core/badge"
	"github.com/sreejapuram0307/sherising/internal/core/domain"
	"github.com/sreejapuram0307/sherising/internal/pkg/pagination"
)

// IdeaService handles idea listing, creation and the invest/like flows.
// Invest and Like mutate several tables at once and therefore run inside a
// single database transaction.
type IdeaService struct {
	db       *gorm.DB
	ideaRepo repositories.IdeaRepository
	userRepo repositories.UserRepository
}

// NewIdeaService creates a new idea service
func NewIdeaService(db *gorm.DB, ideaRepo repositories.IdeaRepository, userRepo repositories.UserRepository) *IdeaService {
	return &IdeaService{
		db:       db,
		ideaRepo: ideaRepo,
		userRepo: userRepo,
	}
}

// CreateIdeaRequest carries the idea creation payload
type CreateIdeaRequest struct {
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	FundingGoal float64 `json:"fundingGoal"`
	Location    string  `json:"location"`
}

// InvestRequest carries the investment payload
type InvestRequest struct {
	Amount float64 `json:"amount"`
}

// InvestResult is the outcome of a completed investment
type InvestResult struct {
	Idea       *models.Idea         `json:"idea"`
	Investment *models.Investment   `json:"investment"`
	Investor   *models.UserResponse `json:"investor"`
}

// LikeResult is the outcome of liking an idea
type LikeResult struct {
	Idea  *models.Idea         `json:"idea"`
	Owner *models.UserResponse `json:"owner"`
}

// List returns ideas newest first with pagination metadata
func (s *IdeaService) List(ctx context.Context, params *pagination.Params) ([]*models.Idea, *pagination.Meta, error) {
	ideas, total, err := s.ideaRepo.List(ctx, params.Offset, params.Limit)
	if err != nil {
		return nil, nil, err
	}
	return ideas, pagination.GetMeta(params, total), nil
}

// GetByID returns a single idea
func (s *IdeaService) GetByID(ctx context.Context, id uint) (*models.Idea, error) {
	idea, err := s.ideaRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIdeaNotFound
		}
		return nil, err
	}
	return idea, nil
}

// Create posts a new idea. Only entrepreneurs can post; the owner's identity
// is denormalized onto the idea row for listing screens.
func (s *IdeaService) Create(ctx context.Context, userID uint, req CreateIdeaRequest) (*models.Idea, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Category = strings.TrimSpace(req.Category)
	req.Description = strings.TrimSpace(req.Description)
	req.Location = strings.TrimSpace(req.Location)

	if req.Title == "" || req.Category == "" || req.Description == "" || req.Location == "" {
		return nil, domain.ErrInvalidInput
	}
	if req.FundingGoal <= 0 {
		return nil, domain.ErrInvalidInput
	}

	owner, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if owner.DomainRole() != domain.RoleEntrepreneur {
		return nil, domain.ErrForbidden
	}

	idea := &models.Idea{
		Title:             req.Title,
		Category:          req.Category,
		Description:       req.Description,
		FundingGoal:       req.FundingGoal,
		Location:          req.Location,
		EntrepreneurID:    owner.ID,
		EntrepreneurName:  owner.Name,
		EntrepreneurEmail: owner.Email,
	}

	if err := s.ideaRepo.Create(ctx, idea); err != nil {
		return nil, err
	}
	return idea, nil
}

// Invest records an investment in an idea. The idea's raised total is
// clamped at the funding goal, the ledger entry keeps the full amount, the
// investor's counters, points and badge are updated, and the idea owner is
// awarded points. All of it commits or none of it does.
func (s *IdeaService) Invest(ctx context.Context, ideaID, investorID uint, req InvestRequest) (*InvestResult, error) {
	if req.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	var result InvestResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var idea models.Idea
		if err := tx.Where("id = ?", ideaID).First(&idea).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrIdeaNotFound
			}
			return err
		}

		var investor models.User
		if err := tx.Where("id = ?", investorID).First(&investor).Error; err != nil {
			return err
		}
		if investor.DomainRole() != domain.RoleInvestor {
			return domain.ErrForbidden
		}

		// Clamp the raised total at the goal; the ledger entry below still
		// records what the investor actually put in.
		raised := idea.AmountRaised + req.Amount
		if raised > idea.FundingGoal {
			raised = idea.FundingGoal
		}
		idea.AmountRaised = raised

		if err := tx.Model(&models.Idea{}).Where("id = ?", idea.ID).
			Update("amount_raised", idea.AmountRaised).Error; err != nil {
			return err
		}

		status := models.InvestmentOngoing
		if idea.IsFunded() {
			status = models.InvestmentCompleted
		}

		investment := &models.Investment{
			InvestorID: investor.ID,
			IdeaID:     idea.ID,
			Amount:     req.Amount,
			Status:     status,
		}
		if err := tx.Create(investment).Error; err != nil {
			return err
		}

		investor.TotalInvestmentsMade++
		investor.TotalFundingAmount += req.Amount
		investor.Points += badge.Points(domain.RoleInvestor, badge.ActionInvestment, req.Amount)

		b := badge.ForInvestor(investor.TotalInvestmentsMade, investor.TotalFundingAmount)
		investor.BadgeTitle = b.Title
		investor.BadgeLevel = b.Level

		if err := tx.Save(&investor).Error; err != nil {
			return err
		}

		// The owner earns points for attracting funding. Their badge track
		// depends on likes only, so it is not recomputed here.
		ownerPoints := badge.Points(domain.RoleEntrepreneur, badge.ActionInvestment, req.Amount)
		if err := tx.Model(&models.User{}).Where("id = ?", idea.EntrepreneurID).
			Update("points", gorm.Expr("points + ?", ownerPoints)).Error; err != nil {
			return err
		}

		result = InvestResult{
			Idea:       &idea,
			Investment: investment,
			Investor:   investor.ToResponse(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Like records a like on an idea. A user can like an idea once; the like
// increments the idea's count and the owner's counters, points and badge.
func (s *IdeaService) Like(ctx context.Context, ideaID, likerID uint) (*LikeResult, error) {
	var result LikeResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var idea models.Idea
		if err := tx.Where("id = ?", ideaID).First(&idea).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrIdeaNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.LikedIdea{}).
			Where("user_id = ? AND idea_id = ?", likerID, ideaID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrAlreadyLiked
		}

		if err := tx.Create(&models.LikedIdea{UserID: likerID, IdeaID: ideaID}).Error; err != nil {
			return err
		}

		idea.Likes++
		if err := tx.Model(&models.Idea{}).Where("id = ?", idea.ID).
			Update("likes", idea.Likes).Error; err != nil {
			return err
		}

		var owner models.User
		if err := tx.Where("id = ?", idea.EntrepreneurID).First(&owner).Error; err != nil {
			return err
		}

		owner.TotalLikesReceived++
		owner.Points += badge.Points(domain.RoleEntrepreneur, badge.ActionLike, 0)

		b := badge.ForEntrepreneur(owner.TotalLikesReceived)
		owner.BadgeTitle = b.Title
		owner.BadgeLevel = b.Level

		if err := tx.Save(&owner).Error; err != nil {
			return err
		}

		result = LikeResult{
			Idea:  &idea,
			Owner: owner.ToResponse(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
