package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Idea errors
var (
	ErrIdeaNotFound  = errors.New("idea not found")
	ErrInvalidAmount = errors.New("invalid investment amount")
	ErrAlreadyLiked  = errors.New("idea already liked by this user")
)

// Chat errors
var (
	ErrNotParticipant   = errors.New("user is not a participant of this chat")
	ErrChatBlocked      = errors.New("chat is blocked")
	ErrChatNotBlocked   = errors.New("no block record found for this chat")
	ErrAlreadyBlocked   = errors.New("chat is already blocked")
	ErrNotBlocker       = errors.New("only the user who blocked this chat can unblock it")
	ErrReceiverNotFound = errors.New("receiver not found")
)
