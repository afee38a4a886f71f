package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/sreejapuram0307/sherising/internal/core/badge"
	"github.com/sreejapuram0307/sherising/internal/core/domain"
)

// ============================================================
// Users & Auth
// ============================================================

// User represents the users table, including gamification counters
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`
	Role     string `gorm:"size:20;not null" json:"role"`
	Location string `gorm:"size:100;not null" json:"location"`

	// Gamification counters, monotonically non-decreasing
	Points               int     `gorm:"default:0" json:"points"`
	BadgeTitle           string  `gorm:"size:50;default:'Newcomer'" json:"badgeTitle"`
	BadgeLevel           string  `gorm:"size:20;default:'Bronze'" json:"badgeLevel"`
	TotalLikesReceived   int     `gorm:"default:0" json:"totalLikesReceived"`
	TotalInvestmentsMade int     `gorm:"default:0" json:"totalInvestmentsMade"`
	TotalFundingAmount   float64 `gorm:"type:decimal(15,2);default:0" json:"totalFundingAmount"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	LikedIdeas []LikedIdea `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// DomainRole returns the user's role as the closed domain enum
func (u *User) DomainRole() domain.Role {
	role, _ := domain.ParseRole(u.Role)
	return role
}

// Badge returns the user's persisted badge descriptor
func (u *User) Badge() badge.Badge {
	return badge.Badge{Title: u.BadgeTitle, Level: u.BadgeLevel}
}

// Stats returns the user's cumulative gamification counters
func (u *User) Stats() badge.Stats {
	return badge.Stats{
		TotalLikesReceived:   u.TotalLikesReceived,
		TotalInvestmentsMade: u.TotalInvestmentsMade,
		TotalFundingAmount:   u.TotalFundingAmount,
	}
}

// UserResponse DTO
type UserResponse struct {
	ID                   uint      `json:"id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	Role                 string    `json:"role"`
	Location             string    `json:"location"`
	Points               int       `json:"points"`
	BadgeTitle           string    `json:"badgeTitle"`
	BadgeLevel           string    `json:"badgeLevel"`
	TotalLikesReceived   int       `json:"totalLikesReceived"`
	TotalInvestmentsMade int       `json:"totalInvestmentsMade"`
	TotalFundingAmount   float64   `json:"totalFundingAmount"`
	CreatedAt            time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:                   u.ID,
		Name:                 u.Name,
		Email:                u.Email,
		Role:                 u.Role,
		Location:             u.Location,
		Points:               u.Points,
		BadgeTitle:           u.BadgeTitle,
		BadgeLevel:           u.BadgeLevel,
		TotalLikesReceived:   u.TotalLikesReceived,
		TotalInvestmentsMade: u.TotalInvestmentsMade,
		TotalFundingAmount:   u.TotalFundingAmount,
		CreatedAt:            u.CreatedAt,
	}
}

// LikedIdea records that a user liked an idea. The composite unique index
// is what makes a second like by the same user impossible at the store level.
type LikedIdea struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_idea" json:"user_id"`
	IdeaID    uint      `gorm:"not null;uniqueIndex:idx_user_idea" json:"idea_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (LikedIdea) TableName() string {
	return "liked_ideas"
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Ideas & Investments
// ============================================================

// Idea represents a crowdfunding campaign posted by an entrepreneur
type Idea struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"size:200;not null" json:"title"`
	Category    string  `gorm:"size:50;not null" json:"category"`
	Description string  `gorm:"type:text;not null" json:"description"`
	FundingGoal float64 `gorm:"type:decimal(15,2);not null" json:"fundingGoal"`
	// AmountRaised never exceeds FundingGoal; excess is clamped at
	// investment time.
	AmountRaised float64 `gorm:"type:decimal(15,2);default:0" json:"amountRaised"`
	Likes        int     `gorm:"default:0" json:"likes"`
	Location     string  `gorm:"size:100;not null;index" json:"location"`

	// Owner reference plus denormalized identity for listing screens
	EntrepreneurID    uint   `gorm:"not null;index" json:"entrepreneurId"`
	EntrepreneurName  string `gorm:"size:100;not null" json:"entrepreneurName"`
	EntrepreneurEmail string `gorm:"size:100;not null" json:"entrepreneurEmail"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Entrepreneur *User `gorm:"foreignKey:EntrepreneurID" json:"-"`
}

func (Idea) TableName() string {
	return "ideas"
}

// IsFunded reports whether the campaign reached its goal
func (i *Idea) IsFunded() bool {
	return i.AmountRaised >= i.FundingGoal
}

// Investment status. The transition Funding Ongoing -> Completed is decided
// once, at creation time, from a snapshot of the idea's raised total.
const (
	InvestmentOngoing   = "Funding Ongoing"
	InvestmentCompleted = "Completed"
)

// Investment is one append-only ledger entry; a user investing in the same
// idea twice yields two records.
type Investment struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	InvestorID uint    `gorm:"not null;index" json:"investorId"`
	IdeaID     uint    `gorm:"not null;index" json:"ideaId"`
	Amount     float64 `gorm:"type:decimal(15,2);not null" json:"amount"`
	Status     string  `gorm:"size:20;not null;default:'Funding Ongoing'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Investor *User `gorm:"foreignKey:InvestorID" json:"-"`
	Idea     *Idea `gorm:"foreignKey:IdeaID" json:"-"`
}

func (Investment) TableName() string {
	return "investments"
}

// ============================================================
// Messaging
// ============================================================

// ChatMessage is one direct user-to-user message
type ChatMessage struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	SenderID   uint   `gorm:"not null;index" json:"senderId"`
	ReceiverID uint   `gorm:"not null;index" json:"receiverId"`
	Message    string `gorm:"type:text;not null" json:"message"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Sender   *User `gorm:"foreignKey:SenderID" json:"-"`
	Receiver *User `gorm:"foreignKey:ReceiverID" json:"-"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

// ChatMessageResponse DTO with denormalized participant names
type ChatMessageResponse struct {
	ID           uint      `json:"id"`
	SenderID     uint      `json:"senderId"`
	SenderName   string    `json:"senderName,omitempty"`
	ReceiverID   uint      `json:"receiverId"`
	ReceiverName string    `json:"receiverName,omitempty"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}

func (m *ChatMessage) ToResponse() *ChatMessageResponse {
	resp := &ChatMessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Message:    m.Message,
		CreatedAt:  m.CreatedAt,
	}
	if m.Sender != nil {
		resp.SenderName = m.Sender.Name
	}
	if m.Receiver != nil {
		resp.ReceiverName = m.Receiver.Name
	}
	return resp
}

// IdeaChatMessage is one message in an idea-scoped chat room
type IdeaChatMessage struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	IdeaID     uint   `gorm:"not null;index:idx_idea_created" json:"ideaId"`
	SenderID   uint   `gorm:"not null;index" json:"senderId"`
	SenderName string `gorm:"size:100;not null" json:"senderName"`
	SenderRole string `gorm:"size:20;not null" json:"senderRole"`
	Message    string `gorm:"type:text;not null" json:"message"`
	IsRead     bool   `gorm:"default:false" json:"isRead"`

	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_idea_created" json:"created_at"`

	Idea   *Idea `gorm:"foreignKey:IdeaID" json:"-"`
	Sender *User `gorm:"foreignKey:SenderID" json:"-"`
}

func (IdeaChatMessage) TableName() string {
	return "idea_chat_messages"
}

// BlockedChat marks an idea chat as blocked. At most one block record per
// idea; only the creator can remove it.
type BlockedChat struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	IdeaID    uint      `gorm:"not null;uniqueIndex" json:"ideaId"`
	BlockedBy uint      `gorm:"not null" json:"blockedBy"`
	BlockedAt time.Time `gorm:"autoCreateTime" json:"blockedAt"`
}

func (BlockedChat) TableName() string {
	return "blocked_chats"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate creates or updates all application tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&LikedIdea{},
		&Idea{},
		&Investment{},
		&ChatMessage{},
		&IdeaChatMessage{},
		&BlockedChat{},
	)
}
