package handlers

import (
	"errors"

	"paisa/internal/middleware"
	"paisa/internal/repositories"
	"paisa/internal/services/account"
	"paisa/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type VerificationHandler struct {
	accounts account.Service
}

func NewVerificationHandler(accounts account.Service) *VerificationHandler {
	return &VerificationHandler{accounts: accounts}
}

// Submit handles POST /otp-verification. OTP checking happens elsewhere;
// this endpoint only records the outcome on the user's profile.
func (h *VerificationHandler) Submit(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		IsVerified *bool `json:"is_verified"`
	}
	if err := c.BodyParser(&input); err != nil || input.IsVerified == nil {
		return utils.BadRequest(c, "is_verified is required")
	}

	profile, err := h.accounts.SubmitVerification(user.ID, *input.IsVerified)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return utils.BadRequest(c, "Profile not found for this user.")
		}
		return utils.InternalError(c, err.Error())
	}

	return utils.Created(c, fiber.Map{"userprofile": profile})
}
