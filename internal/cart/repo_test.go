package cart

import (
	"context"
	"testing"

	"github.com/eshop-labs/storefront-api/internal/catalog"
	"github.com/eshop-labs/storefront-api/pkg/db"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCartTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS cart_items (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  product_id INTEGER NOT NULL,
  product_name TEXT NOT NULL,
  product_price INTEGER NOT NULL,
  product_original_price INTEGER NOT NULL,
  product_discount INTEGER NOT NULL,
  product_rating REAL NOT NULL,
  product_image TEXT NOT NULL,
  product_category TEXT NOT NULL,
  quantity INTEGER NOT NULL DEFAULT 1,
  added_at DATETIME DEFAULT CURRENT_TIMESTAMP,
  UNIQUE (user_id, product_id)
);`
	require.NoError(t, conn.Exec(schema).Error)
	return conn
}

func testProduct(id int) catalog.Product {
	return catalog.Product{
		ID:            id,
		Name:          "Organic Rice 10kg",
		Price:         899,
		OriginalPrice: 1199,
		Discount:      25,
		Rating:        4.6,
		Image:         "https://example.test/rice.jpg",
		Category:      "Grocery",
	}
}

func TestRepositoryAddListAndQuantity(t *testing.T) {
	conn := setupCartTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.AddItem(ctx, userID, testProduct(61)))

	items, err := repo.ListItems(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 61, items[0].ProductID)
	assert.Equal(t, 1, items[0].Quantity)

	require.NoError(t, repo.UpdateQuantity(ctx, userID, 61, 4))

	items, err = repo.ListItems(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
}

func TestRepositoryDuplicateAddViolatesUnique(t *testing.T) {
	conn := setupCartTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.AddItem(ctx, userID, testProduct(61)))

	err := repo.AddItem(ctx, userID, testProduct(61))
	require.Error(t, err)
	assert.True(t, db.IsUniqueViolation(err))

	items, err := repo.ListItems(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, items, 1, "duplicate add must not create a second row")
}

func TestRepositoryRemove(t *testing.T) {
	conn := setupCartTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.AddItem(ctx, userID, testProduct(61)))
	require.NoError(t, repo.RemoveItem(ctx, userID, 61))

	items, err := repo.ListItems(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Removing a missing line is a no-op.
	require.NoError(t, repo.RemoveItem(ctx, userID, 61))
}
