package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sreejapuram0307/sherising/internal/core/domain"
	"github.com/sreejapuram0307/sherising/internal/core/services"
	"github.com/sreejapuram0307/sherising/internal/pkg/response"
)

// MatchHandler handles location-based matching endpoints
type MatchHandler struct {
	matchService *services.MatchService
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

// ForEntrepreneur suggests investors to an entrepreneur
// @Summary Match investors
// @Description Investors in the entrepreneur's own location
// @Tags Matches
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /matches/entrepreneur [get]
func (h *MatchHandler) ForEntrepreneur(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	matches, err := h.matchService.InvestorsForEntrepreneur(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return response.Forbidden(c, "Only entrepreneurs can request investor matches")
		}
		return response.InternalServerError(c, "Failed to load matches")
	}

	return response.SuccessWithCount(c, "Matches retrieved successfully", matches, len(matches))
}

// ForInvestor suggests ideas to an investor
// @Summary Match ideas
// @Description Ideas in the investor's own location
// @Tags Matches
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /matches/investor [get]
func (h *MatchHandler) ForInvestor(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	matches, err := h.matchService.IdeasForInvestor(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return response.Forbidden(c, "Only investors can request idea matches")
		}
		return response.InternalServerError(c, "Failed to load matches")
	}

	return response.SuccessWithCount(c, "Matches retrieved successfully", matches, len(matches))
}
