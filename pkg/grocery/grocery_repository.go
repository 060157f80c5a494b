package grocery

import (
	"context"
	"time"

	"Grocery-Tracker/entities"

	"gorm.io/gorm"
)

type (
	GroceryRepository interface {
		CreateGroceryItems(ctx context.Context, items []*entities.GroceryItem) error
		GetGroceryItems(ctx context.Context) ([]*entities.GroceryItem, error)
		GetGroceryItemByID(ctx context.Context, id int64) (*entities.GroceryItem, error)
		UpdateExpiry(ctx context.Context, id int64, expiresOn time.Time) error
		DeleteGroceryItem(ctx context.Context, id int64) error
		DeleteGroceryItems(ctx context.Context, ids []int64) (int64, error)
	}

	groceryRepository struct {
		db *gorm.DB
	}
)

func NewGroceryRepository(db *gorm.DB) GroceryRepository {
	return &groceryRepository{db: db}
}

// CreateGroceryItems inserts the whole batch in one transaction; either every
// row lands or none does.
func (r *groceryRepository) CreateGroceryItems(ctx context.Context, items []*entities.GroceryItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&items).Error
	})
}

func (r *groceryRepository) GetGroceryItems(ctx context.Context) ([]*entities.GroceryItem, error) {
	var items []*entities.GroceryItem
	if err := r.db.WithContext(ctx).
		Order("expires_on IS NULL").
		Order("expires_on asc").
		Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *groceryRepository) GetGroceryItemByID(ctx context.Context, id int64) (*entities.GroceryItem, error) {
	var item entities.GroceryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *groceryRepository) UpdateExpiry(ctx context.Context, id int64, expiresOn time.Time) error {
	res := r.db.WithContext(ctx).Model(&entities.GroceryItem{}).
		Where("id = ?", id).
		Update("expires_on", expiresOn)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteGroceryItem is a no-op for ids that are already gone.
func (r *groceryRepository) DeleteGroceryItem(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.GroceryItem{}).Error
}

func (r *groceryRepository) DeleteGroceryItems(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&entities.GroceryItem{})
	return res.RowsAffected, res.Error
}
