package repositories

import (
	"context"

	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
	ListContacts(ctx context.Context, excludeID uint) ([]*models.User, error)
	FindByRoleAndLocation(ctx context.Context, role, location string, excludeID uint) ([]*models.User, error)
	TopByLikes(ctx context.Context, role string, limit int) ([]*models.User, error)
	TopByInvestments(ctx context.Context, role string, limit int) ([]*models.User, error)
}

// IdeaRepository defines idea repository interface
type IdeaRepository interface {
	Create(ctx context.Context, idea *models.Idea) error
	GetByID(ctx context.Context, id uint) (*models.Idea, error)
	List(ctx context.Context, offset, limit int) ([]*models.Idea, int64, error)
	FindByLocation(ctx context.Context, location string) ([]*models.Idea, error)
}

// InvestmentRepository defines investment ledger repository interface
type InvestmentRepository interface {
	FindByInvestor(ctx context.Context, investorID uint) ([]*models.Investment, error)
	FindByIdea(ctx context.Context, ideaID uint) ([]*models.Investment, error)
	Exists(ctx context.Context, ideaID, investorID uint) (bool, error)
	CountByInvestor(ctx context.Context, investorID uint) (int64, error)
	SumAmountByInvestor(ctx context.Context, investorID uint) (float64, error)
}

// ChatRepository defines direct chat repository interface
type ChatRepository interface {
	Create(ctx context.Context, msg *models.ChatMessage) error
	GetByID(ctx context.Context, id uint) (*models.ChatMessage, error)
	GetConversation(ctx context.Context, userA, userB uint) ([]*models.ChatMessage, error)
}

// IdeaChatRepository defines idea-scoped chat repository interface
type IdeaChatRepository interface {
	CreateMessage(ctx context.Context, msg *models.IdeaChatMessage) error
	ListByIdea(ctx context.Context, ideaID uint) ([]*models.IdeaChatMessage, error)
	MarkRead(ctx context.Context, ideaID, readerID uint) error
	GetBlock(ctx context.Context, ideaID uint) (*models.BlockedChat, error)
	CreateBlock(ctx context.Context, block *models.BlockedChat) error
	DeleteBlock(ctx context.Context, ideaID uint) error
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}
