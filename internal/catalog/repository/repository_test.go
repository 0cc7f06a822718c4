package repository_test

import (
	"context"
	"testing"

	db "github.com/greenbasket/storefront/internal/catalog/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *db.Repository {
	// Use in-memory database for tests
	repo, err := db.NewRepository(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	require.NoError(t, repo.RunMigrations("./migrations"))
	return repo
}

func TestGetAllProducts_SeededCatalog(t *testing.T) {
	repo := setupTestDB(t)

	products, err := repo.GetAllProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 8)

	// Seed order is id order.
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, int64(8), products[7].ID)
}

func TestGetAllProducts_RowFields(t *testing.T) {
	repo := setupTestDB(t)

	products, err := repo.GetAllProducts(context.Background())
	require.NoError(t, err)

	bread := products[1]
	assert.Equal(t, int64(2), bread.ID)
	assert.Equal(t, "Artisan Sourdough Bread", bread.Name)
	assert.Equal(t, 5.49, bread.Price)
	assert.Equal(t, "Bakery", bread.Category)
	assert.Equal(t, "sourdough bread", bread.ImageHint)
	assert.NotEmpty(t, bread.Description)
	assert.NotEmpty(t, bread.ImageURL)
}

func TestGetAllProducts_CancelledContext(t *testing.T) {
	repo := setupTestDB(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.GetAllProducts(ctx)
	assert.Error(t, err)
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	repo := setupTestDB(t)

	require.NoError(t, repo.RunMigrations("./migrations"))

	products, err := repo.GetAllProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 8)
}
