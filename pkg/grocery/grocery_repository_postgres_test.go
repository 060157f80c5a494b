package grocery

import (
	"context"
	"testing"
	"time"

	migration "Grocery-Tracker/cmd/database/migrate"
	"Grocery-Tracker/domain"
	"Grocery-Tracker/entities"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newPostgresDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("grocery_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Skipf("postgres container unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable", "TimeZone=UTC")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migration.Migrate(db))
	return db
}

func TestPostgresInventoryLifecycle(t *testing.T) {
	db := newPostgresDB(t)
	ctx := context.Background()
	repo := NewGroceryRepository(db)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.CreateGroceryItems(ctx, []*entities.GroceryItem{
		{ItemName: "no expiry", AddedOn: base},
		{ItemName: "later", AddedOn: base, ExpiresOn: ptr(base.Add(96 * time.Hour))},
		{ItemName: "sooner", AddedOn: base, ExpiresOn: ptr(base.Add(24 * time.Hour))},
	}))

	items, err := repo.GetGroceryItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "sooner", items[0].ItemName)
	assert.Equal(t, "later", items[1].ItemName)
	assert.Equal(t, "no expiry", items[2].ItemName)

	svc := NewGroceryService(repo, zerolog.Nop()).(*groceryService)
	svc.now = func() time.Time { return base.Add(48 * time.Hour) }

	snapshot := make([]domain.SnapshotItem, 0, len(items))
	for _, it := range items {
		snapshot = append(snapshot, domain.SnapshotItem{ID: it.ID, ExpiresOn: it.ExpiresOn})
	}
	res, err := svc.ClearExpired(ctx, domain.ClearExpiredRequest{Items: snapshot})
	require.NoError(t, err)
	assert.Equal(t, []int64{items[0].ID}, res.DeletedIDs)
	assert.Equal(t, 1, res.Deleted)

	remaining, err := repo.GetGroceryItems(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, 2)
}

func TestPostgresBatchIsAtomic(t *testing.T) {
	db := newPostgresDB(t)
	ctx := context.Background()
	repo := NewGroceryRepository(db)
	now := time.Now().UTC()

	err := repo.CreateGroceryItems(ctx, []*entities.GroceryItem{
		{ID: 1, ItemName: "a", AddedOn: now},
		{ID: 1, ItemName: "b", AddedOn: now},
	})
	require.Error(t, err)

	items, err := repo.GetGroceryItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}
