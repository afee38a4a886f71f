package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sreejapuram0307/sherising/internal/core/services"
	"github.com/sreejapuram0307/sherising/internal/pkg/response"
)

// GamificationHandler handles leaderboard and badge progress endpoints
type GamificationHandler struct {
	gamificationService *services.GamificationService
}

// NewGamificationHandler creates a new gamification handler
func NewGamificationHandler(gamificationService *services.GamificationService) *GamificationHandler {
	return &GamificationHandler{gamificationService: gamificationService}
}

// Leaderboard returns both role leaderboards
// @Summary Get leaderboard
// @Description Top entrepreneurs by likes and top investors by investments
// @Tags Gamification
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /gamification/leaderboard [get]
func (h *GamificationHandler) Leaderboard(c *fiber.Ctx) error {
	board, err := h.gamificationService.GetLeaderboard(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load leaderboard")
	}

	return response.Success(c, "Leaderboard retrieved successfully", board)
}

// BadgeProgress returns the user's badge progress
// @Summary Get badge progress
// @Description Current badge and the next attainable tier
// @Tags Gamification
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /gamification/badge-progress [get]
func (h *GamificationHandler) BadgeProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	progress, err := h.gamificationService.GetBadgeProgress(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to load badge progress")
	}

	return response.Success(c, "Badge progress retrieved successfully", progress)
}
