package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/models"
)

// investmentRepository implements InvestmentRepository interface
type investmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository creates a new investment repository
func NewInvestmentRepository(db *gorm.DB) InvestmentRepository {
	return &investmentRepository{db: db}
}

// FindByInvestor lists an investor's investments newest first, with ideas
func (r *investmentRepository) FindByInvestor(ctx context.Context, investorID uint) ([]*models.Investment, error) {
	var investments []*models.Investment
	err := r.db.WithContext(ctx).
		Where("investor_id = ?", investorID).
		Order("created_at DESC").
		Preload("Idea").
		Find(&investments).Error
	return investments, err
}

// FindByIdea lists all investments into an idea, with investors
func (r *investmentRepository) FindByIdea(ctx context.Context, ideaID uint) ([]*models.Investment, error) {
	var investments []*models.Investment
	err := r.db.WithContext(ctx).
		Where("idea_id = ?", ideaID).
		Order("created_at ASC").
		Preload("Investor").
		Find(&investments).Error
	return investments, err
}

// Exists checks whether an investor has at least one investment in an idea
func (r *investmentRepository) Exists(ctx context.Context, ideaID, investorID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Investment{}).
		Where("idea_id = ? AND investor_id = ?", ideaID, investorID).
		Count(&count).Error
	return count > 0, err
}

// CountByInvestor counts an investor's investment records
func (r *investmentRepository) CountByInvestor(ctx context.Context, investorID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Investment{}).
		Where("investor_id = ?", investorID).
		Count(&count).Error
	return count, err
}

// SumAmountByInvestor sums all amounts an investor has committed
func (r *investmentRepository) SumAmountByInvestor(ctx context.Context, investorID uint) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.Investment{}).
		Where("investor_id = ?", investorID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
