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

// IdeaChatService handles the idea-scoped group chat between an idea's
// owner and its investors, including the per-idea block switch.
type IdeaChatService struct {
	ideaChatRepo   repositories.IdeaChatRepository
	ideaRepo       repositories.IdeaRepository
	investmentRepo repositories.InvestmentRepository
	userRepo       repositories.UserRepository
}

// NewIdeaChatService creates a new idea chat service
func NewIdeaChatService(
	ideaChatRepo repositories.IdeaChatRepository,
	ideaRepo repositories.IdeaRepository,
	investmentRepo repositories.InvestmentRepository,
	userRepo repositories.UserRepository,
) *IdeaChatService {
	return &IdeaChatService{
		ideaChatRepo:   ideaChatRepo,
		ideaRepo:       ideaRepo,
		investmentRepo: investmentRepo,
		userRepo:       userRepo,
	}
}

// SendIdeaMessageRequest carries an idea chat message payload
type SendIdeaMessageRequest struct {
	IdeaID  uint   `json:"ideaId"`
	Message string `json:"message"`
}

// BlockRequest names the idea chat to block or unblock
type BlockRequest struct {
	IdeaID uint `json:"ideaId"`
}

// IdeaChatView is the message history together with the room's block state
type IdeaChatView struct {
	Messages  []*models.IdeaChatMessage `json:"messages"`
	IsBlocked bool                      `json:"isBlocked"`
	BlockedBy uint                      `json:"blockedBy,omitempty"`
}

// Participant is one member of an idea chat room
type Participant struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Role          string  `json:"role"`
	IsOwner       bool    `json:"isOwner"`
	TotalInvested float64 `json:"totalInvested,omitempty"`
}

// isParticipant reports whether a user belongs to an idea's chat room: the
// idea's owner and anyone with at least one investment in it.
func (s *IdeaChatService) isParticipant(ctx context.Context, idea *models.Idea, userID uint) (bool, error) {
	if idea.EntrepreneurID == userID {
		return true, nil
	}
	return s.investmentRepo.Exists(ctx, idea.ID, userID)
}

func (s *IdeaChatService) getIdea(ctx context.Context, ideaID uint) (*models.Idea, error) {
	idea, err := s.ideaRepo.GetByID(ctx, ideaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIdeaNotFound
		}
		return nil, err
	}
	return idea, nil
}

// getBlock returns the block record or nil when the room is not blocked
func (s *IdeaChatService) getBlock(ctx context.Context, ideaID uint) (*models.BlockedChat, error) {
	block, err := s.ideaChatRepo.GetBlock(ctx, ideaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return block, nil
}

// Messages returns the room's history and block state for a participant
func (s *IdeaChatService) Messages(ctx context.Context, ideaID, userID uint) (*IdeaChatView, error) {
	idea, err := s.getIdea(ctx, ideaID)
	if err != nil {
		return nil, err
	}

	ok, err := s.isParticipant(ctx, idea, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotParticipant
	}

	messages, err := s.ideaChatRepo.ListByIdea(ctx, ideaID)
	if err != nil {
		return nil, err
	}

	view := &IdeaChatView{Messages: messages}
	block, err := s.getBlock(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	if block != nil {
		view.IsBlocked = true
		view.BlockedBy = block.BlockedBy
	}

	return view, nil
}

// Send stores a message in the room. A blocked room rejects sends from
// every participant, including whoever created the block.
func (s *IdeaChatService) Send(ctx context.Context, senderID uint, req SendIdeaMessageRequest) (*models.IdeaChatMessage, error) {
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" || req.IdeaID == 0 {
		return nil, domain.ErrInvalidInput
	}

	idea, err := s.getIdea(ctx, req.IdeaID)
	if err != nil {
		return nil, err
	}

	ok, err := s.isParticipant(ctx, idea, senderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotParticipant
	}

	block, err := s.getBlock(ctx, req.IdeaID)
	if err != nil {
		return nil, err
	}
	if block != nil {
		return nil, domain.ErrChatBlocked
	}

	sender, err := s.userRepo.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}

	msg := &models.IdeaChatMessage{
		IdeaID:     req.IdeaID,
		SenderID:   sender.ID,
		SenderName: sender.Name,
		SenderRole: sender.Role,
		Message:    req.Message,
	}
	if err := s.ideaChatRepo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Participants lists the room's members: the owner first, then every
// investor with their committed total.
func (s *IdeaChatService) Participants(ctx context.Context, ideaID, userID uint) ([]*Participant, error) {
	idea, err := s.getIdea(ctx, ideaID)
	if err != nil {
		return nil, err
	}

	ok, err := s.isParticipant(ctx, idea, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotParticipant
	}

	participants := []*Participant{{
		ID:      idea.EntrepreneurID,
		Name:    idea.EntrepreneurName,
		Role:    string(domain.RoleEntrepreneur),
		IsOwner: true,
	}}

	investments, err := s.investmentRepo.FindByIdea(ctx, ideaID)
	if err != nil {
		return nil, err
	}

	totals := make(map[uint]float64)
	order := make([]uint, 0, len(investments))
	names := make(map[uint]*models.User)
	for _, inv := range investments {
		if _, seen := totals[inv.InvestorID]; !seen {
			order = append(order, inv.InvestorID)
		}
		totals[inv.InvestorID] += inv.Amount
		if inv.Investor != nil {
			names[inv.InvestorID] = inv.Investor
		}
	}

	for _, id := range order {
		p := &Participant{
			ID:            id,
			Role:          string(domain.RoleInvestor),
			TotalInvested: totals[id],
		}
		if u := names[id]; u != nil {
			p.Name = u.Name
			p.Role = u.Role
		}
		participants = append(participants, p)
	}

	return participants, nil
}

// MarkRead marks every message in the room not authored by the reader as
// read.
func (s *IdeaChatService) MarkRead(ctx context.Context, ideaID, userID uint) error {
	idea, err := s.getIdea(ctx, ideaID)
	if err != nil {
		return err
	}

	ok, err := s.isParticipant(ctx, idea, userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotParticipant
	}

	return s.ideaChatRepo.MarkRead(ctx, ideaID, userID)
}

// Block freezes the room. Only a participant can block, and a room holds at
// most one block at a time.
func (s *IdeaChatService) Block(ctx context.Context, userID uint, req BlockRequest) error {
	idea, err := s.getIdea(ctx, req.IdeaID)
	if err != nil {
		return err
	}

	ok, err := s.isParticipant(ctx, idea, userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotParticipant
	}

	block, err := s.getBlock(ctx, req.IdeaID)
	if err != nil {
		return err
	}
	if block != nil {
		return domain.ErrAlreadyBlocked
	}

	return s.ideaChatRepo.CreateBlock(ctx, &models.BlockedChat{
		IdeaID:    req.IdeaID,
		BlockedBy: userID,
	})
}

// Unblock lifts the room's block. Only the participant who created the
// block can remove it.
func (s *IdeaChatService) Unblock(ctx context.Context, userID uint, req BlockRequest) error {
	idea, err := s.getIdea(ctx, req.IdeaID)
	if err != nil {
		return err
	}

	ok, err := s.isParticipant(ctx, idea, userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotParticipant
	}

	block, err := s.getBlock(ctx, req.IdeaID)
	if err != nil {
		return err
	}
	if block == nil {
		return domain.ErrChatNotBlocked
	}
	if block.BlockedBy != userID {
		return domain.ErrNotBlocker
	}

	return s.ideaChatRepo.DeleteBlock(ctx, req.IdeaID)
}
