package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/models"
)

// chatRepository implements ChatRepository interface
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new direct chat repository
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

// Create stores a new direct message
func (r *chatRepository) Create(ctx context.Context, msg *models.ChatMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// GetByID gets a message by ID with sender and receiver loaded
func (r *chatRepository) GetByID(ctx context.Context, id uint) (*models.ChatMessage, error) {
	var msg models.ChatMessage
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Receiver").
		Where("id = ?", id).
		First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// GetConversation lists all messages between two users, oldest first
func (r *chatRepository) GetConversation(ctx context.Context, userA, userB uint) ([]*models.ChatMessage, error) {
	var messages []*models.ChatMessage
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("created_at ASC").
		Preload("Sender").
		Preload("Receiver").
		Find(&messages).Error
	return messages, err
}
