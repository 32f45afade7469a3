package handlers

import (
	"errors"

	"paisa/internal/middleware"
	"paisa/internal/services/address"
	"paisa/internal/utils"
	"paisa/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type AddressHandler struct {
	service address.Service
}

func NewAddressHandler(s address.Service) *AddressHandler {
	return &AddressHandler{service: s}
}

// Create handles POST /address.
func (h *AddressHandler) Create(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input address.CreateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	addr, err := h.service.Create(user.ID, input)
	if err != nil {
		var fields validation.Errors
		if errors.As(err, &fields) {
			return utils.ValidationFailed(c, fields)
		}
		return utils.InternalError(c, err.Error())
	}

	return utils.Created(c, fiber.Map{"address": addr})
}
