package service

import (
	"testing"

	"github.com/greenbasket/storefront/internal/catalog/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: 2, Name: "Artisan Sourdough Bread", Price: 5.49, Category: "Bakery"},
		{ID: 7, Name: "Kombucha", Price: 3.49, Category: "Beverages"},
		{ID: 8, Name: "Almond Butter", Price: 8.99, Category: "Pantry"},
	}
}

func TestCatalog_AllPreservesSeedOrder(t *testing.T) {
	c := NewCatalog(testProducts())

	all := c.All()
	require.Len(t, all, 3)
	assert.Equal(t, int64(2), all[0].ID)
	assert.Equal(t, int64(7), all[1].ID)
	assert.Equal(t, int64(8), all[2].ID)
}

func TestCatalog_AllReturnsACopy(t *testing.T) {
	c := NewCatalog(testProducts())

	all := c.All()
	all[0].Name = "mutated"

	fresh := c.All()
	assert.Equal(t, "Artisan Sourdough Bread", fresh[0].Name)
}

func TestCatalog_FindByID(t *testing.T) {
	c := NewCatalog(testProducts())

	p, ok := c.FindByID(7)
	require.True(t, ok)
	assert.Equal(t, "Kombucha", p.Name)

	_, ok = c.FindByID(999)
	assert.False(t, ok)
}

func TestCatalog_FindByNameIsExactMatch(t *testing.T) {
	c := NewCatalog(testProducts())

	p, ok := c.FindByName("Almond Butter")
	require.True(t, ok)
	assert.Equal(t, int64(8), p.ID)

	_, ok = c.FindByName("almond butter")
	assert.False(t, ok)

	_, ok = c.FindByName("Unknown Product X")
	assert.False(t, ok)
}
