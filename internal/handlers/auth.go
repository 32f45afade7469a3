package handlers

import (
	"errors"

	"paisa/internal/middleware"
	"paisa/internal/services/account"
	"paisa/internal/utils"
	"paisa/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	accounts account.Service
}

func NewAuthHandler(accounts account.Service) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Phone    string `json:"phone_number"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if input.Phone == "" || input.Password == "" {
		return utils.BadRequest(c, "Phone number and password are required.")
	}

	token, err := h.accounts.Login(input.Phone, input.Password)
	if err != nil {
		var fields validation.Errors
		switch {
		case errors.As(err, &fields):
			return utils.ValidationFailed(c, fields)
		case errors.Is(err, account.ErrNotVerified):
			return utils.Unauthorized(c, "Phone number is not verified.")
		case errors.Is(err, account.ErrInvalidCredentials):
			return utils.Unauthorized(c, "Invalid credentials.")
		default:
			return utils.InternalError(c, "Authentication failed")
		}
	}

	return utils.Success(c, fiber.Map{"token": token})
}

// ForgotPassword handles POST /forgot-password. It validates the phone is
// registered and issues a token scoped to that user; delivery happens
// elsewhere.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var input struct {
		Phone string `json:"phone_number"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	token, err := h.accounts.RequestPasswordReset(input.Phone)
	if err != nil {
		var fields validation.Errors
		if errors.As(err, &fields) {
			return utils.ValidationFailed(c, fields)
		}
		return utils.InternalError(c, err.Error())
	}

	return utils.Success(c, fiber.Map{"token": token})
}

// ChangePassword handles POST /update-password.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if err := h.accounts.ChangePassword(user.ID, input.Password, input.ConfirmPassword); err != nil {
		var fields validation.Errors
		if errors.As(err, &fields) {
			return utils.ValidationFailed(c, fields)
		}
		return utils.InternalError(c, err.Error())
	}

	return utils.Success(c, fiber.Map{"message": "Password has been updated successfully."})
}
