package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/sreejapuram0307/sherising/internal/core/domain"
	"github.com/sreejapuram0307/sherising/internal/core/services"
	"github.com/sreejapuram0307/sherising/internal/pkg/pagination"
	"github.com/sreejapuram0307/sherising/internal/pkg/response"
)

// IdeaHandler handles idea endpoints
type IdeaHandler struct {
	ideaService *services.IdeaService
}

// NewIdeaHandler creates a new idea handler
func NewIdeaHandler(ideaService *services.IdeaService) *IdeaHandler {
	return &IdeaHandler{ideaService: ideaService}
}

// List lists all ideas
// @Summary List ideas
// @Description List all ideas newest first with pagination
// @Tags Ideas
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /ideas [get]
func (h *IdeaHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	ideas, meta, err := h.ideaService.List(c.Context(), params)
	if err != nil {
		return response.InternalServerError(c, "Failed to list ideas")
	}

	return response.Success(c, "Ideas retrieved successfully", fiber.Map{
		"ideas":      ideas,
		"pagination": meta,
	})
}

// Create posts a new idea
// @Summary Create idea
// @Description Post a new idea (entrepreneurs only)
// @Tags Ideas
// @Accept json
// @Produce json
// @Param body body services.CreateIdeaRequest true "Idea data"
// @Security BearerAuth
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /ideas [post]
func (h *IdeaHandler) Create(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req services.CreateIdeaRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	idea, err := h.ideaService.Create(c.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Title, category, description, location and a positive funding goal are required")
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "Only entrepreneurs can post ideas")
		default:
			return response.InternalServerError(c, "Failed to create idea")
		}
	}

	return response.Created(c, "Idea created successfully", fiber.Map{
		"idea": idea,
	})
}

// Invest invests in an idea
// @Summary Invest in idea
// @Description Record an investment in an idea (investors only)
// @Tags Ideas
// @Accept json
// @Produce json
// @Param id path int true "Idea ID"
// @Param body body services.InvestRequest true "Investment amount"
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /ideas/{id}/invest [post]
func (h *IdeaHandler) Invest(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	ideaID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid idea ID")
	}

	var req services.InvestRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result, err := h.ideaService.Invest(c.Context(), ideaID, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			return response.BadRequest(c, "Investment amount must be greater than zero")
		case errors.Is(err, domain.ErrIdeaNotFound):
			return response.NotFound(c, "Idea not found")
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "Only investors can invest in ideas")
		default:
			return response.InternalServerError(c, "Failed to record investment")
		}
	}

	return response.Success(c, "Investment recorded successfully", result)
}

// Like likes an idea
// @Summary Like idea
// @Description Like an idea, once per user
// @Tags Ideas
// @Produce json
// @Param id path int true "Idea ID"
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /ideas/{id}/like [post]
func (h *IdeaHandler) Like(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	ideaID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid idea ID")
	}

	result, err := h.ideaService.Like(c.Context(), ideaID, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyLiked):
			return response.BadRequest(c, "You have already liked this idea")
		case errors.Is(err, domain.ErrIdeaNotFound):
			return response.NotFound(c, "Idea not found")
		default:
			return response.InternalServerError(c, "Failed to like idea")
		}
	}

	return response.Success(c, "Idea liked successfully", result)
}

// parseIDParam parses a numeric path parameter
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id parameter")
	}
	return uint(id), nil
}
