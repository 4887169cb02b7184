package handlers

import (
	"errors"
	"net/url"

	"Restaurant-Management-Backend/domain"
	"Restaurant-Management-Backend/entities"
	"Restaurant-Management-Backend/internal/api/presenters"
	"Restaurant-Management-Backend/pkg/food"

	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		AddFood(c *fiber.Ctx) error
		GetFoods(c *fiber.Ctx) error
		GetTopSellingFoods(c *fiber.Ctx) error
		SearchFoodsByName(c *fiber.Ctx) error
		GetFoodByID(c *fiber.Ctx) error
		GetFoodsByOwner(c *fiber.Ctx) error
		UpdateFood(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
	}
)

func NewFoodHandler(foodService food.FoodService) FoodHandler {
	return &foodHandler{foodService: foodService}
}

func (h *foodHandler) AddFood(c *fiber.Ctx) error {
	req := new(entities.Food)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.foodService.AddFood(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *foodHandler) GetFoods(c *fiber.Ctx) error {
	foods, err := h.foodService.GetFoods(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoods, err)
	}
	return presenters.SuccessResponse(c, foods, fiber.StatusOK)
}

func (h *foodHandler) GetTopSellingFoods(c *fiber.Ctx) error {
	foods, err := h.foodService.GetTopSellingFoods(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoods, err)
	}
	return presenters.SuccessResponse(c, foods, fiber.StatusOK)
}

func (h *foodHandler) SearchFoodsByName(c *fiber.Ctx) error {
	name := c.Params("name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	foods, err := h.foodService.SearchFoodsByName(c.Context(), name)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoods, err)
	}
	return presenters.SuccessResponse(c, foods, fiber.StatusOK)
}

func (h *foodHandler) GetFoodByID(c *fiber.Ctx) error {
	foodItem, err := h.foodService.GetFoodByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidObjectID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoods, err)
	}
	// A missing document answers with a null body, not 404.
	return presenters.SuccessResponse(c, foodItem, fiber.StatusOK)
}

func (h *foodHandler) GetFoodsByOwner(c *fiber.Ctx) error {
	email, _ := c.Locals("email").(string)

	foods, err := h.foodService.GetFoodsByOwner(c.Context(), email)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoods, err)
	}
	return presenters.SuccessResponse(c, foods, fiber.StatusOK)
}

func (h *foodHandler) UpdateFood(c *fiber.Ctx) error {
	fields := map[string]any{}
	if err := c.BodyParser(&fields); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.foodService.UpdateFood(c.Context(), c.Params("id"), fields)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidObjectID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateFood, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
