package handlers

import (
	"io"

	"Grocery-Tracker/domain"
	"Grocery-Tracker/internal/api/presenters"
	"Grocery-Tracker/pkg/receipt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type (
	ReceiptHandler interface {
		ScanReceipt(c *fiber.Ctx) error
		GetReceiptScan(c *fiber.Ctx) error
	}

	receiptHandler struct {
		receiptService receipt.ReceiptService
		validator      *validator.Validate
		logger         zerolog.Logger
	}
)

func NewReceiptHandler(receiptService receipt.ReceiptService, validator *validator.Validate, logger zerolog.Logger) ReceiptHandler {
	return &receiptHandler{
		receiptService: receiptService,
		validator:      validator,
		logger:         logger,
	}
}

func (h *receiptHandler) ScanReceipt(c *fiber.Ctx) error {
	file, err := c.FormFile("receipt_image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req := domain.UploadReceiptRequest{ReceiptImage: file}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanReceipt, err)
	}

	f, err := file.Open()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanReceipt, err)
	}
	defer f.Close()

	image, err := io.ReadAll(f)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanReceipt, err)
	}

	scan := domain.ScanReceiptRequest{FileName: file.Filename, Image: image}
	if err := h.validator.Struct(scan); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanReceipt, err)
	}

	res, err := h.receiptService.ScanReceipt(c.UserContext(), scan, func(p float64) {
		h.logger.Debug().Str("file", file.Filename).Float64("progress", p).Msg("ocr progress")
	})
	if err != nil {
		status, msg := errorStatus(err, domain.MessageFailedScanReceipt)
		return presenters.ErrorResponse(c, status, msg, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessScanReceipt)
}

func (h *receiptHandler) GetReceiptScan(c *fiber.Ctx) error {
	res, err := h.receiptService.GetReceiptScan(c.UserContext(), c.Params("id"))
	if err != nil {
		status, msg := errorStatus(err, domain.MessageFailedGetReceiptScan)
		return presenters.ErrorResponse(c, status, msg, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReceiptScan)
}
