package handlers

import (
	"errors"

	"paisa/internal/middleware"
	"paisa/internal/services/account"
	"paisa/internal/utils"
	"paisa/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	accounts account.Service
}

func NewUserHandler(accounts account.Service) *UserHandler {
	return &UserHandler{accounts: accounts}
}

// Register handles POST /sign-up.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var input account.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	user, token, err := h.accounts.Register(input)
	if err != nil {
		var fields validation.Errors
		if errors.As(err, &fields) {
			return utils.ValidationFailed(c, fields)
		}
		return utils.InternalError(c, err.Error())
	}

	return utils.Created(c, fiber.Map{
		"user_profile": user,
		"token":        token,
	})
}

// UpdateProfile handles PUT /sign-up.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input account.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	updated, isVerified, err := h.accounts.UpdateProfile(user.ID, input)
	if err != nil {
		var fields validation.Errors
		if errors.As(err, &fields) {
			return utils.ValidationFailed(c, fields)
		}
		return utils.InternalError(c, err.Error())
	}

	return utils.Success(c, fiber.Map{
		"message":      "Profile updated successfully",
		"user_profile": updated,
		"is_verified":  isVerified,
	})
}
