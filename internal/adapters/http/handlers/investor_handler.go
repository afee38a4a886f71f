package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sreejapuram0307/sherising/internal/core/services"
	"github.com/sreejapuram0307/sherising/internal/pkg/response"
)

// InvestorHandler handles investor dashboard endpoints
type InvestorHandler struct {
	investorService *services.InvestorService
}

// NewInvestorHandler creates a new investor handler
func NewInvestorHandler(investorService *services.InvestorService) *InvestorHandler {
	return &InvestorHandler{investorService: investorService}
}

// Dashboard returns the investor's portfolio summary
// @Summary Investor dashboard
// @Description Portfolio summary for the authenticated investor
// @Tags Investor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /investor/dashboard [get]
func (h *InvestorHandler) Dashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	stats, err := h.investorService.Dashboard(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to load dashboard")
	}

	return response.Success(c, "Dashboard retrieved successfully", stats)
}

// MyInvestments lists the investor's investments
// @Summary My investments
// @Description All investments of the authenticated investor, newest first
// @Tags Investor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /investor/my-investments [get]
func (h *InvestorHandler) MyInvestments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	entries, err := h.investorService.MyInvestments(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to load investments")
	}

	return response.SuccessWithCount(c, "Investments retrieved successfully", entries, len(entries))
}
