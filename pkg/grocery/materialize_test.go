package grocery

import (
	"testing"
	"time"

	"Grocery-Tracker/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialize(t *testing.T) {
	now := time.Date(2026, 3, 7, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		entry domain.ExtractedEntry
		want  time.Time
	}{
		{name: "whole days", entry: domain.ExtractedEntry{Name: "🥛 Milk", PerishInDays: 7}, want: now.Add(7 * 24 * time.Hour)},
		{name: "zero offset", entry: domain.ExtractedEntry{Name: "Bananas"}, want: now},
		{name: "already expired", entry: domain.ExtractedEntry{Name: "Fish", PerishInDays: -2}, want: now.Add(-48 * time.Hour)},
		{name: "longest shelf life", entry: domain.ExtractedEntry{Name: "Honey", PerishInDays: domain.MaxPerishInDays}, want: now.Add(time.Duration(domain.MaxPerishInDays) * 24 * time.Hour)},
		{name: "beyond longest shelf life", entry: domain.ExtractedEntry{Name: "🧂 Salt", PerishInDays: 200000}, want: now},
		{name: "one past the bound", entry: domain.ExtractedEntry{Name: "Rice", PerishInDays: domain.MaxPerishInDays + 1}, want: now},
		{name: "far in the past", entry: domain.ExtractedEntry{Name: "Tea", PerishInDays: -200000}, want: now},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := Materialize([]domain.ExtractedEntry{tt.entry}, now)
			require.Len(t, items, 1)
			assert.Equal(t, tt.entry.Name, items[0].ItemName)
			assert.Equal(t, now, items[0].AddedOn)
			require.NotNil(t, items[0].ExpiresOn)
			assert.Equal(t, tt.want, *items[0].ExpiresOn)
			assert.Zero(t, items[0].ID)
		})
	}
}

func TestMaterializeAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}
	now := time.Date(2026, 3, 7, 12, 0, 0, 0, loc)

	items := Materialize([]domain.ExtractedEntry{{Name: "Cheese", PerishInDays: 2}}, now)
	assert.Equal(t, 48*time.Hour, items[0].ExpiresOn.Sub(items[0].AddedOn))
}

func TestExpiredIDs(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	past := now.Add(-time.Second)
	future := now.Add(100 * time.Second)

	snapshot := []domain.SnapshotItem{
		{ID: 1, ExpiresOn: &past},
		{ID: 2, ExpiresOn: &future},
	}
	assert.Equal(t, []int64{1}, ExpiredIDs(snapshot, now))
	assert.Equal(t, []int64{1}, ExpiredIDs(snapshot, now), "same input, same result")

	exact := now
	edge := []domain.SnapshotItem{
		{ID: 3, ExpiresOn: &exact},
		{ID: 4},
		{ID: 3, ExpiresOn: &exact},
	}
	assert.Equal(t, []int64{3}, ExpiredIDs(edge, now))

	assert.Empty(t, ExpiredIDs(nil, now))
}

func TestDetermineStatus(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time { v := now.Add(d); return &v }

	assert.Equal(t, domain.StatusExpired, determineStatus(at(0), now))
	assert.Equal(t, domain.StatusWarning, determineStatus(at(24*time.Hour), now))
	assert.Equal(t, domain.StatusSafe, determineStatus(at(10*24*time.Hour), now))
	assert.Equal(t, domain.StatusUnknown, determineStatus(nil, now))
}
