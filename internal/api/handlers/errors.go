package handlers

import (
	"context"
	"errors"

	"Grocery-Tracker/domain"

	"github.com/gofiber/fiber/v2"
)

// errorStatus maps a service error to an HTTP status and, when the error
// has a friendlier wording, the message shown to the user.
func errorStatus(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout, fallback
	case errors.Is(err, domain.ErrGroceryItemNotFound),
		errors.Is(err, domain.ErrReceiptScanNotFound):
		return fiber.StatusNotFound, fallback
	case errors.Is(err, domain.ErrParseID),
		errors.Is(err, domain.ErrInvalidExpiryDate),
		errors.Is(err, domain.ErrEmptyItemName),
		errors.Is(err, domain.ErrConflictingExpiry):
		return fiber.StatusBadRequest, fallback
	case errors.Is(err, domain.ErrOCR):
		return fiber.StatusUnprocessableEntity, domain.MessageFailedReadImage
	case errors.Is(err, domain.ErrExtractionParse):
		return fiber.StatusBadGateway, domain.MessageFailedParseItems
	case errors.Is(err, domain.ErrEmptyGeneration),
		errors.Is(err, domain.ErrUpstream):
		return fiber.StatusBadGateway, fallback
	default:
		return fiber.StatusInternalServerError, fallback
	}
}
