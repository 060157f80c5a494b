package handlers

import (
	"errors"
	"strconv"

	"Grocery-Tracker/domain"
	"Grocery-Tracker/internal/api/presenters"
	"Grocery-Tracker/pkg/grocery"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GroceryHandler interface {
		GetGroceryItems(c *fiber.Ctx) error
		AddGroceryItem(c *fiber.Ctx) error
		UpdateExpiry(c *fiber.Ctx) error
		DeleteGroceryItem(c *fiber.Ctx) error
		ClearExpired(c *fiber.Ctx) error
	}

	groceryHandler struct {
		groceryService grocery.GroceryService
		validator      *validator.Validate
	}
)

func NewGroceryHandler(groceryService grocery.GroceryService, validator *validator.Validate) GroceryHandler {
	return &groceryHandler{
		groceryService: groceryService,
		validator:      validator,
	}
}

func parseItemID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, domain.ErrParseID
	}
	return id, nil
}

func (h *groceryHandler) GetGroceryItems(c *fiber.Ctx) error {
	items, err := h.groceryService.GetGroceryItems(c.UserContext())
	if err != nil {
		status, msg := errorStatus(err, domain.MessageFailedGetGroceryItems)
		return presenters.ErrorResponse(c, status, msg, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetGroceryItems)
}

func (h *groceryHandler) AddGroceryItem(c *fiber.Ctx) error {
	req := new(domain.AddGroceryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddGroceryItem, err)
	}

	res, err := h.groceryService.AddGroceryItem(c.UserContext(), *req)
	if err != nil {
		status, msg := errorStatus(err, domain.MessageFailedAddGroceryItem)
		return presenters.ErrorResponse(c, status, msg, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddGroceryItem)
}

func (h *groceryHandler) UpdateExpiry(c *fiber.Ctx) error {
	id, err := parseItemID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateExpiry, err)
	}

	req := new(domain.UpdateExpiryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateExpiry, err)
	}

	if err := h.groceryService.UpdateExpiry(c.UserContext(), id, *req); err != nil {
		status, msg := errorStatus(err, domain.MessageFailedUpdateExpiry)
		return presenters.ErrorResponse(c, status, msg, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateExpiry)
}

func (h *groceryHandler) DeleteGroceryItem(c *fiber.Ctx) error {
	id, err := parseItemID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteGroceryItem, err)
	}

	if err := h.groceryService.DeleteGroceryItem(c.UserContext(), id); err != nil {
		status, msg := errorStatus(err, domain.MessageFailedDeleteGroceryItem)
		return presenters.ErrorResponse(c, status, msg, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteGroceryItem)
}

func (h *groceryHandler) ClearExpired(c *fiber.Ctx) error {
	req := new(domain.ClearExpiredRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClearExpired, err)
	}

	res, err := h.groceryService.ClearExpired(c.UserContext(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrNothingExpired) {
			return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageNothingToClear)
		}
		status, msg := errorStatus(err, domain.MessageFailedClearExpired)
		return presenters.ErrorResponse(c, status, msg, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessClearExpired)
}
