package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sreejapuram0307/sherising/internal/core/domain"
	"github.com/sreejapuram0307/sherising/internal/core/services"
	"github.com/sreejapuram0307/sherising/internal/pkg/response"
)

// ProfileHandler handles profile endpoints
type ProfileHandler struct {
	userService *services.UserService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(userService *services.UserService) *ProfileHandler {
	return &ProfileHandler{userService: userService}
}

// Get returns the authenticated user's profile
// @Summary Get own profile
// @Description Profile of the authenticated user
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	profile, err := h.userService.GetProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to load profile")
	}

	return response.Success(c, "Profile retrieved successfully", profile)
}

// GetByID returns another user's profile
// @Summary Get user profile
// @Description Public profile of any user
// @Tags Profile
// @Produce json
// @Param userId path int true "User ID"
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /profile/{userId} [get]
func (h *ProfileHandler) GetByID(c *fiber.Ctx) error {
	targetID, err := parseIDParam(c, "userId")
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	profile, err := h.userService.GetPublicProfile(c.Context(), targetID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to load profile")
	}

	return response.Success(c, "Profile retrieved successfully", profile)
}

// Update modifies the authenticated user's profile
// @Summary Update own profile
// @Description Partial update of name, email, location or password
// @Tags Profile
// @Accept json
// @Produce json
// @Param body body services.UpdateProfileRequest true "Profile fields"
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /profile [put]
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req services.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	profile, err := h.userService.UpdateProfile(c.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEntry):
			return response.Conflict(c, "Email already in use")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Password must be at least 8 characters")
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "User not found")
		default:
			return response.InternalServerError(c, "Failed to update profile")
		}
	}

	return response.Success(c, "Profile updated successfully", profile)
}
