package handlers

import (
	"errors"

	"paisa/internal/middleware"
	"paisa/internal/services/bankdetails"
	"paisa/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type BankHandler struct {
	service bankdetails.Service
}

func NewBankHandler(s bankdetails.Service) *BankHandler {
	return &BankHandler{service: s}
}

// FetchBankDetails handles GET /fetch-bank-details. Every call re-queries
// the provider; error responses carry the correlation id for traceability.
func (h *BankHandler) FetchBankDetails(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	result, err := h.service.Fetch(c.Context(), user)
	if err != nil {
		if errors.Is(err, bankdetails.ErrNoResults) {
			return utils.Respond(c, fiber.StatusBadRequest, fiber.Map{
				"reference_id": result.ReferenceID,
				"error":        "No bank details found for this phone number.",
			})
		}
		return utils.Respond(c, fiber.StatusInternalServerError, fiber.Map{
			"reference_id": result.ReferenceID,
			"error":        err.Error(),
		})
	}

	entries := make([]fiber.Map, 0, len(result.Accounts))
	for _, account := range result.Accounts {
		entries = append(entries, fiber.Map{
			"reference_id":  result.ReferenceID,
			"name":          account.Name,
			"vpa":           account.VPA,
			"merchant_ifsc": account.MerchantIFSC,
			"tpap":          account.TPAP,
		})
	}

	return utils.Success(c, fiber.Map{
		"message":      "Bank details fetched successfully",
		"bank_details": entries,
	})
}
