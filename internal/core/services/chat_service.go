package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/models"
	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/repositories"
	"github.com/sreejapuram0307/sherising/internal/core/domain"
)

// ChatService handles direct user-to-user messaging
type ChatService struct {
	chatRepo repositories.ChatRepository
	userRepo repositories.UserRepository
}

// NewChatService creates a new chat service
func NewChatService(chatRepo repositories.ChatRepository, userRepo repositories.UserRepository) *ChatService {
	return &ChatService{chatRepo: chatRepo, userRepo: userRepo}
}

// SendMessageRequest carries a direct message payload
type SendMessageRequest struct {
	ReceiverID uint   `json:"receiverId"`
	Message    string `json:"message"`
}

// Contact is one entry of the chat contact list
type Contact struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Location string `json:"location"`
}

// Contacts lists every other user as a potential chat partner
func (s *ChatService) Contacts(ctx context.Context, userID uint) ([]*Contact, error) {
	users, err := s.userRepo.ListContacts(ctx, userID)
	if err != nil {
		return nil, err
	}

	contacts := make([]*Contact, 0, len(users))
	for _, u := range users {
		contacts = append(contacts, &Contact{
			ID:       u.ID,
			Name:     u.Name,
			Role:     u.Role,
			Location: u.Location,
		})
	}
	return contacts, nil
}

// Conversation returns the full message history between two users, oldest
// first.
func (s *ChatService) Conversation(ctx context.Context, userID, otherID uint) ([]*models.ChatMessageResponse, error) {
	messages, err := s.chatRepo.GetConversation(ctx, userID, otherID)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, m.ToResponse())
	}
	return responses, nil
}

// Send stores a direct message after confirming the receiver exists
func (s *ChatService) Send(ctx context.Context, senderID uint, req SendMessageRequest) (*models.ChatMessageResponse, error) {
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" || req.ReceiverID == 0 {
		return nil, domain.ErrInvalidInput
	}
	if req.ReceiverID == senderID {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.userRepo.GetByID(ctx, req.ReceiverID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReceiverNotFound
		}
		return nil, err
	}

	msg := &models.ChatMessage{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Message:    req.Message,
	}
	if err := s.chatRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	saved, err := s.chatRepo.GetByID(ctx, msg.ID)
	if err != nil {
		return nil, err
	}
	return saved.ToResponse(), nil
}
