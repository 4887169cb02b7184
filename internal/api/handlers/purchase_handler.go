package handlers

import (
	"errors"

	"Restaurant-Management-Backend/domain"
	"Restaurant-Management-Backend/entities"
	"Restaurant-Management-Backend/internal/api/presenters"
	"Restaurant-Management-Backend/pkg/purchase"

	"github.com/gofiber/fiber/v2"
)

type (
	PurchaseHandler interface {
		PlaceOrder(c *fiber.Ctx) error
		GetPurchasesByBuyer(c *fiber.Ctx) error
		DeletePurchase(c *fiber.Ctx) error
	}

	purchaseHandler struct {
		purchaseService purchase.PurchaseService
	}
)

func NewPurchaseHandler(purchaseService purchase.PurchaseService) PurchaseHandler {
	return &purchaseHandler{purchaseService: purchaseService}
}

func (h *purchaseHandler) PlaceOrder(c *fiber.Ctx) error {
	req := new(entities.Purchase)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.purchaseService.PlaceOrder(c.Context(), c.Params("id"), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidObjectID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedPlaceOrder, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *purchaseHandler) GetPurchasesByBuyer(c *fiber.Ctx) error {
	email, _ := c.Locals("email").(string)

	purchases, err := h.purchaseService.GetPurchasesByBuyer(c.Context(), email)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPurchases, err)
	}
	return presenters.SuccessResponse(c, purchases, fiber.StatusOK)
}

func (h *purchaseHandler) DeletePurchase(c *fiber.Ctx) error {
	res, err := h.purchaseService.DeletePurchase(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidObjectID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeletePurchase, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
