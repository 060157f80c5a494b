package migration

import (
	"fmt"

	"Grocery-Tracker/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.GroceryItem{}); err != nil {
		return fmt.Errorf("migrate grocery items: %w", err)
	}
	if err := db.AutoMigrate(&entities.ReceiptScan{}); err != nil {
		return fmt.Errorf("migrate receipt scans: %w", err)
	}
	return nil
}
