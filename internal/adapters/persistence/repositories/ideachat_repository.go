package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/models"
)

// ideaChatRepository implements IdeaChatRepository interface
type ideaChatRepository struct {
	db *gorm.DB
}

// NewIdeaChatRepository creates a new idea chat repository
func NewIdeaChatRepository(db *gorm.DB) IdeaChatRepository {
	return &ideaChatRepository{db: db}
}

// CreateMessage stores a new idea chat message
func (r *ideaChatRepository) CreateMessage(ctx context.Context, msg *models.IdeaChatMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// ListByIdea lists all messages of an idea chat, oldest first
func (r *ideaChatRepository) ListByIdea(ctx context.Context, ideaID uint) ([]*models.IdeaChatMessage, error) {
	var messages []*models.IdeaChatMessage
	err := r.db.WithContext(ctx).
		Where("idea_id = ?", ideaID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

// MarkRead marks all unread messages not authored by the reader as read
func (r *ideaChatRepository) MarkRead(ctx context.Context, ideaID, readerID uint) error {
	return r.db.WithContext(ctx).Model(&models.IdeaChatMessage{}).
		Where("idea_id = ? AND sender_id <> ? AND is_read = ?", ideaID, readerID, false).
		Update("is_read", true).Error
}

// GetBlock returns the block record for an idea chat, if any
func (r *ideaChatRepository) GetBlock(ctx context.Context, ideaID uint) (*models.BlockedChat, error) {
	var block models.BlockedChat
	err := r.db.WithContext(ctx).Where("idea_id = ?", ideaID).First(&block).Error
	if err != nil {
		return nil, err
	}
	return &block, nil
}

// CreateBlock stores a block record for an idea chat
func (r *ideaChatRepository) CreateBlock(ctx context.Context, block *models.BlockedChat) error {
	return r.db.WithContext(ctx).Create(block).Error
}

// DeleteBlock removes the block record of an idea chat
func (r *ideaChatRepository) DeleteBlock(ctx context.Context, ideaID uint) error {
	return r.db.WithContext(ctx).Where("idea_id = ?", ideaID).Delete(&models.BlockedChat{}).Error
}
