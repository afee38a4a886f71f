package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/models"
)

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByID gets a user by ID
func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail gets a user by email
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByEmail checks if email is already registered
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// Update updates a user
func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// ListContacts lists all users except the given one
func (r *userRepository) ListContacts(ctx context.Context, excludeID uint) ([]*models.User, error) {
	var users []*models.User
	err := r.db.WithContext(ctx).
		Where("id <> ?", excludeID).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

// FindByRoleAndLocation finds users with a role in a location, excluding one user
func (r *userRepository) FindByRoleAndLocation(ctx context.Context, role, location string, excludeID uint) ([]*models.User, error) {
	var users []*models.User
	err := r.db.WithContext(ctx).
		Where("role = ? AND location = ? AND id <> ?", role, location, excludeID).
		Find(&users).Error
	return users, err
}

// TopByLikes returns the users of a role with the most likes received
func (r *userRepository) TopByLikes(ctx context.Context, role string, limit int) ([]*models.User, error) {
	var users []*models.User
	err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Order("total_likes_received DESC").
		Limit(limit).
		Find(&users).Error
	return users, err
}

// TopByInvestments returns the users of a role with the most investments made
func (r *userRepository) TopByInvestments(ctx context.Context, role string, limit int) ([]*models.User, error) {
	var users []*models.User
	err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Order("total_investments_made DESC").
		Limit(limit).
		Find(&users).Error
	return users, err
}
