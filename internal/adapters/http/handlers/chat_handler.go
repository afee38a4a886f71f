package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sreejapuram0307/sherising/internal/core/domain"
	"github.com/sreejapuram0307/sherising/internal/core/services"
	"github.com/sreejapuram0307/sherising/internal/pkg/response"
)

// ChatHandler handles direct messaging endpoints
type ChatHandler struct {
	chatService *services.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Contacts lists chat contacts
// @Summary List chat contacts
// @Description Every other user as a potential chat partner
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /chat/contacts [get]
func (h *ChatHandler) Contacts(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	contacts, err := h.chatService.Contacts(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to load contacts")
	}

	return response.SuccessWithCount(c, "Contacts retrieved successfully", contacts, len(contacts))
}

// Conversation returns the message history with another user
// @Summary Get conversation
// @Description Full message history with another user, oldest first
// @Tags Chat
// @Produce json
// @Param userId path int true "Other user ID"
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /chat/{userId} [get]
func (h *ChatHandler) Conversation(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	otherID, err := parseIDParam(c, "userId")
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	messages, err := h.chatService.Conversation(c.Context(), userID, otherID)
	if err != nil {
		return response.InternalServerError(c, "Failed to load conversation")
	}

	return response.SuccessWithCount(c, "Conversation retrieved successfully", messages, len(messages))
}

// Send sends a direct message
// @Summary Send direct message
// @Description Send a message to another user
// @Tags Chat
// @Accept json
// @Produce json
// @Param body body services.SendMessageRequest true "Message data"
// @Security BearerAuth
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /chat/send [post]
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req services.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	msg, err := h.chatService.Send(c.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Receiver and a non-empty message are required")
		case errors.Is(err, domain.ErrReceiverNotFound):
			return response.NotFound(c, "Receiver not found")
		default:
			return response.InternalServerError(c, "Failed to send message")
		}
	}

	return response.Created(c, "Message sent successfully", msg)
}
