package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/models"
	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/repositories"
	"github.com/sreejapuram0307/sherising/internal/core/domain"
	"github.com/sreejapuram0307/sherising/internal/pkg/password"
)

// UserService handles profile reads and updates
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UpdateProfileRequest carries the profile update payload. Empty fields are
// left unchanged; the role is fixed at registration.
type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Location string `json:"location"`
	Password string `json:"password"`
}

// GetProfile returns a user's own profile
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

// GetPublicProfile returns another user's profile
func (s *UserService) GetPublicProfile(ctx context.Context, userID uint) (*models.UserResponse, error) {
	return s.GetProfile(ctx, userID)
}

// UpdateProfile applies partial updates to a user's own profile
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, req UpdateProfileRequest) (*models.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = name
	}
	if location := strings.TrimSpace(req.Location); location != "" {
		user.Location = location
	}

	if email := strings.ToLower(strings.TrimSpace(req.Email)); email != "" && email != user.Email {
		exists, err := s.userRepo.ExistsByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicateEntry
		}
		user.Email = email
	}

	if req.Password != "" {
		if !password.Validate(req.Password) {
			return nil, domain.ErrInvalidInput
		}
		hashed, err := password.Hash(req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

func (s *UserService) getUser(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
