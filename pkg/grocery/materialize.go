package grocery

import (
	"strings"
	"time"

	"Grocery-Tracker/domain"
	"Grocery-Tracker/entities"
)

const (
	day              = 24 * time.Hour
	warningThreshold = 3 * day
)

// Materialize turns extracted entries into rows ready for a bulk insert.
// Every row shares the same insertion instant and expires exactly
// PerishInDays whole days later. A negative count yields a row that is
// already expired. Counts beyond domain.MaxPerishInDays are treated as 0.
func Materialize(entries []domain.ExtractedEntry, now time.Time) []*entities.GroceryItem {
	items := make([]*entities.GroceryItem, 0, len(entries))
	for _, entry := range entries {
		d := entry.PerishInDays
		if d > domain.MaxPerishInDays || d < -domain.MaxPerishInDays {
			d = 0
		}
		expiresOn := now.Add(time.Duration(d) * day)
		items = append(items, &entities.GroceryItem{
			ItemName:  strings.TrimSpace(entry.Name),
			AddedOn:   now,
			ExpiresOn: &expiresOn,
		})
	}
	return items
}

// ExpiredIDs picks the ids from the caller's snapshot whose expiry is at or
// before now. Items without an expiry never qualify. Only the snapshot is
// consulted, so a bulk delete can never reach rows the caller has not seen.
func ExpiredIDs(snapshot []domain.SnapshotItem, now time.Time) []int64 {
	var ids []int64
	seen := make(map[int64]struct{}, len(snapshot))
	for _, item := range snapshot {
		if item.ExpiresOn == nil || item.ExpiresOn.After(now) {
			continue
		}
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		ids = append(ids, item.ID)
	}
	return ids
}

func determineStatus(expiresOn *time.Time, now time.Time) string {
	if expiresOn == nil {
		return domain.StatusUnknown
	}
	if !expiresOn.After(now) {
		return domain.StatusExpired
	}
	if expiresOn.Before(now.Add(warningThreshold)) {
		return domain.StatusWarning
	}
	return domain.StatusSafe
}

func daysLeft(expiresOn *time.Time, now time.Time) *int {
	if expiresOn == nil {
		return nil
	}
	d := int(expiresOn.Sub(now) / day)
	return &d
}

func toResponse(item *entities.GroceryItem, now time.Time) domain.GroceryItemResponse {
	return domain.GroceryItemResponse{
		ID:        item.ID,
		Name:      item.ItemName,
		AddedOn:   item.AddedOn,
		ExpiresOn: item.ExpiresOn,
		Status:    determineStatus(item.ExpiresOn, now),
		DaysLeft:  daysLeft(item.ExpiresOn, now),
	}
}
