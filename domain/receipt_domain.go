package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessScanReceipt    = "receipt scanned and items saved"
	MessageSuccessGetReceiptScan = "receipt scan retrieved successfully"

	MessageFailedScanReceipt    = "failed to scan receipt"
	MessageFailedGetReceiptScan = "failed to retrieve receipt scan"
	MessageFailedReadImage      = "could not read text from the receipt image"
	MessageFailedParseItems     = "could not understand the grocery list returned by the model"

	ErrReceiptScanNotFound = errors.New("receipt scan not found")
	ErrUnsupportedImage    = errors.New("unsupported image format")
)

type (
	UploadReceiptRequest struct {
		ReceiptImage *multipart.FileHeader `json:"receipt_image" form:"receipt_image" validate:"required"`
	}

	ScanReceiptRequest struct {
		FileName string
		Image    []byte `validate:"required,min=1"`
	}

	ScanReceiptResponse struct {
		ScanID   string                `json:"scan_id"`
		Status   string                `json:"status"`
		ImageURL string                `json:"image_url,omitempty"`
		Items    []GroceryItemResponse `json:"items"`
	}

	ReceiptScanResponse struct {
		ID         string    `json:"id"`
		Status     string    `json:"status"`
		ImageURL   string    `json:"image_url,omitempty"`
		OcrResults string    `json:"ocr_results,omitempty"`
		ItemCount  int       `json:"item_count"`
		Error      string    `json:"error,omitempty"`
		CreatedAt  time.Time `json:"created_at"`
	}
)
