package services

import (
	"context"

	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/models"
	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/repositories"
)

// InvestorService builds the investor-facing dashboard views
type InvestorService struct {
	investmentRepo repositories.InvestmentRepository
}

// NewInvestorService creates a new investor service
func NewInvestorService(investmentRepo repositories.InvestmentRepository) *InvestorService {
	return &InvestorService{investmentRepo: investmentRepo}
}

// DashboardStats summarizes an investor's portfolio
type DashboardStats struct {
	TotalInvested     float64 `json:"totalInvested"`
	IdeasFunded       int     `json:"ideasFunded"`
	ActiveInvestments int     `json:"activeInvestments"`
	TotalInvestments  int     `json:"totalInvestments"`
}

// InvestmentEntry is one row of the my-investments list
type InvestmentEntry struct {
	ID           uint    `json:"id"`
	IdeaID       uint    `json:"ideaId"`
	IdeaTitle    string  `json:"ideaTitle"`
	Category     string  `json:"category"`
	Amount       float64 `json:"amount"`
	Status       string  `json:"status"`
	FundingGoal  float64 `json:"fundingGoal"`
	AmountRaised float64 `json:"amountRaised"`
	InvestedAt   string  `json:"investedAt"`
}

// Dashboard computes the portfolio summary for an investor. Distinct ideas
// count once even when invested in repeatedly; an investment is active while
// its status is still Funding Ongoing.
func (s *InvestorService) Dashboard(ctx context.Context, investorID uint) (*DashboardStats, error) {
	investments, err := s.investmentRepo.FindByInvestor(ctx, investorID)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{TotalInvestments: len(investments)}
	ideaSet := make(map[uint]struct{})

	for _, inv := range investments {
		stats.TotalInvested += inv.Amount
		ideaSet[inv.IdeaID] = struct{}{}
		if inv.Status == models.InvestmentOngoing {
			stats.ActiveInvestments++
		}
	}
	stats.IdeasFunded = len(ideaSet)

	return stats, nil
}

// MyInvestments lists an investor's ledger entries joined with idea details,
// newest first.
func (s *InvestorService) MyInvestments(ctx context.Context, investorID uint) ([]*InvestmentEntry, error) {
	investments, err := s.investmentRepo.FindByInvestor(ctx, investorID)
	if err != nil {
		return nil, err
	}

	entries := make([]*InvestmentEntry, 0, len(investments))
	for _, inv := range investments {
		entry := &InvestmentEntry{
			ID:         inv.ID,
			IdeaID:     inv.IdeaID,
			Amount:     inv.Amount,
			Status:     inv.Status,
			InvestedAt: inv.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if inv.Idea != nil {
			entry.IdeaTitle = inv.Idea.Title
			entry.Category = inv.Idea.Category
			entry.FundingGoal = inv.Idea.FundingGoal
			entry.AmountRaised = inv.Idea.AmountRaised
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
