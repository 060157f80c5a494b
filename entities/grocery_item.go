package entities

import "time"

// GroceryItem is one row of the shared inventory table. The column names are
// fixed by the deployed schema, so they are spelled out explicitly.
type GroceryItem struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ItemName  string     `gorm:"column:item_name;type:text;not null" json:"item_name"`
	AddedOn   time.Time  `gorm:"column:added_on;not null" json:"added_on"`
	ExpiresOn *time.Time `gorm:"column:expires_on;index" json:"expires_on"`
}

func (GroceryItem) TableName() string {
	return "groceries"
}
