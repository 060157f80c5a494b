package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReceiptScanPending   = "Pending"
	ReceiptScanProcessed = "Processed"
	ReceiptScanFailed    = "Failed"
)

type ReceiptScan struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ImageURL   string    `json:"image_url,omitempty"`
	Status     string    `json:"status"` // "Pending", "Processed", "Failed"
	OcrResults string    `json:"ocr_results,omitempty" gorm:"type:text"`
	ItemCount  int       `json:"item_count"`
	Error      string    `json:"error,omitempty" gorm:"type:text"`

	Timestamp
}

func (r *ReceiptScan) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
