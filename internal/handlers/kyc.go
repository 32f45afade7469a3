package handlers

import (
	"errors"

	"paisa/internal/middleware"
	"paisa/internal/repositories"
	"paisa/internal/services/kyc"
	"paisa/internal/utils"
	"paisa/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type KYCHandler struct {
	service kyc.Service
}

func NewKYCHandler(s kyc.Service) *KYCHandler { return &KYCHandler{service: s} }

// SubmitPAN handles POST /kyc-pan.
func (h *KYCHandler) SubmitPAN(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		PANNumber string `json:"pan_number"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	record, err := h.service.SubmitPAN(c.Context(), user.ID, input.PANNumber)
	if err != nil {
		var fields validation.Errors
		if errors.As(err, &fields) {
			return utils.ValidationFailed(c, fields)
		}
		return utils.InternalError(c, err.Error())
	}

	return utils.Created(c, fiber.Map{"kyc_pan": record})
}

// SubmitImage handles POST /kyc-img. The image must follow a PAN
// submission; there is no record to attach it to otherwise.
func (h *KYCHandler) SubmitImage(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		UserImage string `json:"user_image"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	record, err := h.service.AttachImage(c.Context(), user.ID, input.UserImage)
	if err != nil {
		var fields validation.Errors
		switch {
		case errors.As(err, &fields):
			return utils.ValidationFailed(c, fields)
		case errors.Is(err, repositories.ErrKYCNotFound):
			return utils.BadRequest(c, "KYC profile not found for this user.")
		default:
			return utils.InternalError(c, err.Error())
		}
	}

	return utils.Created(c, fiber.Map{"kyc_img": record})
}
