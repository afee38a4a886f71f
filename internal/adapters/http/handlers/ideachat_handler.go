package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sreejapuram0307/sherising/internal/core/domain"
	"github.com/sreejapuram0307/sherising/internal/core/services"
	"github.com/sreejapuram0307/sherising/internal/pkg/response"
)

// IdeaChatHandler handles idea-scoped chat endpoints
type IdeaChatHandler struct {
	ideaChatService *services.IdeaChatService
}

// NewIdeaChatHandler creates a new idea chat handler
func NewIdeaChatHandler(ideaChatService *services.IdeaChatService) *IdeaChatHandler {
	return &IdeaChatHandler{ideaChatService: ideaChatService}
}

// Messages returns an idea chat's history and block state
// @Summary Get idea chat messages
// @Description Message history of an idea chat, participants only
// @Tags IdeaChat
// @Produce json
// @Param ideaId path int true "Idea ID"
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /idea-chat/{ideaId}/messages [get]
func (h *IdeaChatHandler) Messages(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	ideaID, err := parseIDParam(c, "ideaId")
	if err != nil {
		return response.BadRequest(c, "Invalid idea ID")
	}

	view, err := h.ideaChatService.Messages(c.Context(), ideaID, userID)
	if err != nil {
		return h.mapError(c, err, "Failed to load messages")
	}

	return response.Success(c, "Messages retrieved successfully", view)
}

// Send posts a message into an idea chat
// @Summary Send idea chat message
// @Description Send a message into an idea chat room, participants only
// @Tags IdeaChat
// @Accept json
// @Produce json
// @Param body body services.SendIdeaMessageRequest true "Message data"
// @Security BearerAuth
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /idea-chat/send [post]
func (h *IdeaChatHandler) Send(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req services.SendIdeaMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	msg, err := h.ideaChatService.Send(c.Context(), userID, req)
	if err != nil {
		return h.mapError(c, err, "Failed to send message")
	}

	return response.Created(c, "Message sent successfully", msg)
}

// Participants lists an idea chat's members
// @Summary List idea chat participants
// @Description The idea's owner and every investor in it
// @Tags IdeaChat
// @Produce json
// @Param ideaId path int true "Idea ID"
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /idea-chat/{ideaId}/participants [get]
func (h *IdeaChatHandler) Participants(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	ideaID, err := parseIDParam(c, "ideaId")
	if err != nil {
		return response.BadRequest(c, "Invalid idea ID")
	}

	participants, err := h.ideaChatService.Participants(c.Context(), ideaID, userID)
	if err != nil {
		return h.mapError(c, err, "Failed to load participants")
	}

	return response.SuccessWithCount(c, "Participants retrieved successfully", participants, len(participants))
}

// MarkRead marks an idea chat's messages as read
// @Summary Mark idea chat as read
// @Description Mark every message not authored by the reader as read
// @Tags IdeaChat
// @Produce json
// @Param ideaId path int true "Idea ID"
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /idea-chat/{ideaId}/read [put]
func (h *IdeaChatHandler) MarkRead(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	ideaID, err := parseIDParam(c, "ideaId")
	if err != nil {
		return response.BadRequest(c, "Invalid idea ID")
	}

	if err := h.ideaChatService.MarkRead(c.Context(), ideaID, userID); err != nil {
		return h.mapError(c, err, "Failed to mark messages as read")
	}

	return response.Success(c, "Messages marked as read", nil)
}

// Block freezes an idea chat
// @Summary Block idea chat
// @Description Block an idea chat room, participants only
// @Tags IdeaChat
// @Accept json
// @Produce json
// @Param body body services.BlockRequest true "Idea to block"
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /idea-chat/block [post]
func (h *IdeaChatHandler) Block(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req services.BlockRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.ideaChatService.Block(c.Context(), userID, req); err != nil {
		return h.mapError(c, err, "Failed to block chat")
	}

	return response.Success(c, "Chat blocked successfully", nil)
}

// Unblock lifts an idea chat's block
// @Summary Unblock idea chat
// @Description Unblock an idea chat room, blocker only
// @Tags IdeaChat
// @Accept json
// @Produce json
// @Param body body services.BlockRequest true "Idea to unblock"
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /idea-chat/unblock [post]
func (h *IdeaChatHandler) Unblock(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req services.BlockRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.ideaChatService.Unblock(c.Context(), userID, req); err != nil {
		return h.mapError(c, err, "Failed to unblock chat")
	}

	return response.Success(c, "Chat unblocked successfully", nil)
}

// mapError translates idea chat domain errors to HTTP responses
func (h *IdeaChatHandler) mapError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return response.BadRequest(c, "Idea and a non-empty message are required")
	case errors.Is(err, domain.ErrIdeaNotFound):
		return response.NotFound(c, "Idea not found")
	case errors.Is(err, domain.ErrNotParticipant):
		return response.Forbidden(c, "Only the idea owner and its investors can access this chat")
	case errors.Is(err, domain.ErrChatBlocked):
		return response.Forbidden(c, "This chat is blocked")
	case errors.Is(err, domain.ErrAlreadyBlocked):
		return response.Conflict(c, "This chat is already blocked")
	case errors.Is(err, domain.ErrChatNotBlocked):
		return response.BadRequest(c, "This chat is not blocked")
	case errors.Is(err, domain.ErrNotBlocker):
		return response.Forbidden(c, "Only the user who blocked this chat can unblock it")
	default:
		return response.InternalServerError(c, fallback)
	}
}
