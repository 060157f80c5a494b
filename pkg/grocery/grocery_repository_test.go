package grocery

import (
	"context"
	"testing"
	"time"

	"Grocery-Tracker/entities"
	"Grocery-Tracker/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func ptr(t time.Time) *time.Time { return &t }

func TestGroceryRepositoryListOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewGroceryRepository(testutil.NewTestDB(t))
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.CreateGroceryItems(ctx, []*entities.GroceryItem{
		{ItemName: "later", AddedOn: base, ExpiresOn: ptr(base.Add(72 * time.Hour))},
		{ItemName: "no expiry", AddedOn: base},
		{ItemName: "tie-a", AddedOn: base, ExpiresOn: ptr(base.Add(24 * time.Hour))},
		{ItemName: "tie-b", AddedOn: base, ExpiresOn: ptr(base.Add(24 * time.Hour))},
		{ItemName: "soonest", AddedOn: base, ExpiresOn: ptr(base)},
	}))

	names := func() []string {
		items, err := repo.GetGroceryItems(ctx)
		require.NoError(t, err)
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, it.ItemName)
		}
		return out
	}

	first := names()
	assert.Equal(t, []string{"soonest", "tie-a", "tie-b", "later", "no expiry"}, first)
	assert.Equal(t, first, names())
}

func TestGroceryRepositoryBatchInsert(t *testing.T) {
	ctx := context.Background()
	repo := NewGroceryRepository(testutil.NewTestDB(t))
	now := time.Now().UTC()

	items := []*entities.GroceryItem{
		{ItemName: "🍞 Bread", AddedOn: now, ExpiresOn: ptr(now)},
		{ItemName: "🧀 Cheese", AddedOn: now, ExpiresOn: ptr(now)},
		{ItemName: "🍎 Apples", AddedOn: now, ExpiresOn: ptr(now)},
	}
	require.NoError(t, repo.CreateGroceryItems(ctx, items))

	stored, err := repo.GetGroceryItems(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 3)

	ids := map[int64]bool{}
	for _, it := range items {
		assert.NotZero(t, it.ID)
		ids[it.ID] = true
	}
	assert.Len(t, ids, 3)
}

func TestGroceryRepositoryBatchIsAtomic(t *testing.T) {
	ctx := context.Background()
	repo := NewGroceryRepository(testutil.NewTestDB(t))
	now := time.Now().UTC()

	require.NoError(t, repo.CreateGroceryItems(ctx, []*entities.GroceryItem{{ID: 10, ItemName: "first", AddedOn: now}}))

	err := repo.CreateGroceryItems(ctx, []*entities.GroceryItem{
		{ID: 11, ItemName: "ok", AddedOn: now},
		{ID: 10, ItemName: "duplicate key", AddedOn: now},
	})
	require.Error(t, err)

	stored, err := repo.GetGroceryItems(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestGroceryRepositoryUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewGroceryRepository(testutil.NewTestDB(t))
	added := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

	item := &entities.GroceryItem{ItemName: "Yogurt", AddedOn: added, ExpiresOn: ptr(added)}
	require.NoError(t, repo.CreateGroceryItems(ctx, []*entities.GroceryItem{item}))

	newExpiry := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateExpiry(ctx, item.ID, newExpiry))

	got, err := repo.GetGroceryItemByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Yogurt", got.ItemName)
	assert.True(t, got.AddedOn.Equal(added))
	assert.True(t, got.ExpiresOn.Equal(newExpiry))

	assert.ErrorIs(t, repo.UpdateExpiry(ctx, 999, newExpiry), gorm.ErrRecordNotFound)

	require.NoError(t, repo.DeleteGroceryItem(ctx, item.ID))
	require.NoError(t, repo.DeleteGroceryItem(ctx, item.ID))

	n, err := repo.DeleteGroceryItems(ctx, []int64{item.ID, 12345})
	require.NoError(t, err)
	assert.Zero(t, n)
}
