package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	MessageSuccessAddGroceryItem    = "grocery item added successfully"
	MessageSuccessUpdateExpiry      = "expiry date updated successfully"
	MessageSuccessDeleteGroceryItem = "grocery item deleted successfully"
	MessageSuccessGetGroceryItems   = "grocery items retrieved successfully"
	MessageSuccessClearExpired      = "expired items cleared successfully"
	MessageNothingToClear           = "no expired items to clear"

	MessageFailedAddGroceryItem    = "failed to add grocery item"
	MessageFailedUpdateExpiry      = "failed to update expiry date"
	MessageFailedDeleteGroceryItem = "failed to delete grocery item"
	MessageFailedGetGroceryItems   = "failed to retrieve grocery items"
	MessageFailedClearExpired      = "failed to clear expired items"

	ErrGroceryItemNotFound = errors.New("grocery item not found")
	ErrInvalidExpiryDate   = errors.New("invalid expiry date")
	ErrEmptyItemName       = errors.New("item name must not be empty")
	ErrNothingExpired      = errors.New("no expired items in the loaded list")
	ErrConflictingExpiry   = errors.New("give either perish_in_days or expires_on, not both")
)

const (
	StatusSafe    = "Safe"
	StatusWarning = "Warning"
	StatusExpired = "Expired"
	StatusUnknown = "Unknown"
)

// MaxPerishInDays is the largest shelf life, in either direction, whose
// expiry still fits in a time.Duration.
const MaxPerishInDays = 106751

// ExtractedEntry is one grocery line recovered from receipt text, before it
// becomes an inventory row.
type ExtractedEntry struct {
	Name         string
	PerishInDays int
}

// ParseExpiryDate accepts a calendar date (midnight UTC) or a full RFC 3339
// timestamp.
func ParseExpiryDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidExpiryDate
}

type (
	AddGroceryItemRequest struct {
		Name         string `json:"name" validate:"required"`
		PerishInDays *int   `json:"perish_in_days" validate:"omitempty,min=-106751,max=106751"`
		ExpiresOn    string `json:"expires_on" validate:"omitempty,expiry_date,excluded_with=PerishInDays"`
	}

	UpdateExpiryRequest struct {
		ExpiresOn string `json:"expires_on" validate:"required,expiry_date"`
	}

	// SnapshotItem is an item as the caller currently sees it. Clearing
	// expired items only ever considers what the caller sent.
	SnapshotItem struct {
		ID        int64      `json:"id" validate:"required,min=1"`
		ExpiresOn *time.Time `json:"expires_on"`
	}

	ClearExpiredRequest struct {
		Items []SnapshotItem `json:"items" validate:"dive"`
	}

	ClearExpiredResponse struct {
		DeletedIDs []int64 `json:"deleted_ids"`
		Deleted    int     `json:"deleted"`
	}

	GroceryItemResponse struct {
		ID        int64      `json:"id"`
		Name      string     `json:"name"`
		AddedOn   time.Time  `json:"added_on"`
		ExpiresOn *time.Time `json:"expires_on"`
		Status    string     `json:"status"`
		DaysLeft  *int       `json:"days_left,omitempty"`
	}
)
