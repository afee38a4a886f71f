package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/models"
)

// ideaRepository implements IdeaRepository interface
type ideaRepository struct {
	db *gorm.DB
}

// NewIdeaRepository creates a new idea repository
func NewIdeaRepository(db *gorm.DB) IdeaRepository {
	return &ideaRepository{db: db}
}

// Create creates a new idea
func (r *ideaRepository) Create(ctx context.Context, idea *models.Idea) error {
	return r.db.WithContext(ctx).Create(idea).Error
}

// GetByID gets an idea by ID
func (r *ideaRepository) GetByID(ctx context.Context, id uint) (*models.Idea, error) {
	var idea models.Idea
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&idea).Error
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

// List lists ideas newest first with pagination
func (r *ideaRepository) List(ctx context.Context, offset, limit int) ([]*models.Idea, int64, error) {
	var ideas []*models.Idea
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Idea{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&ideas).Error; err != nil {
		return nil, 0, err
	}

	return ideas, total, nil
}

// FindByLocation lists ideas in a location, newest first
func (r *ideaRepository) FindByLocation(ctx context.Context, location string) ([]*models.Idea, error) {
	var ideas []*models.Idea
	err := r.db.WithContext(ctx).
		Where("location = ?", location).
		Order("created_at DESC").
		Find(&ideas).Error
	return ideas, err
}
