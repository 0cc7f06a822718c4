package service

import (
	"github.com/greenbasket/storefront/internal/catalog/domain"
)

// Catalog is the read-only product index. It is built once at startup from
// the repository and never mutated, so lookups need no locking.
type Catalog struct {
	ordered []domain.Product
	byID    map[int64]domain.Product
	byName  map[string]domain.Product
}

func NewCatalog(products []domain.Product) *Catalog {
	c := &Catalog{
		ordered: make([]domain.Product, len(products)),
		byID:    make(map[int64]domain.Product, len(products)),
		byName:  make(map[string]domain.Product, len(products)),
	}
	copy(c.ordered, products)
	for _, p := range products {
		c.byID[p.ID] = p
		c.byName[p.Name] = p
	}
	return c
}

// All returns the catalog in seed order. The returned slice is a copy.
func (c *Catalog) All() []domain.Product {
	out := make([]domain.Product, len(c.ordered))
	copy(out, c.ordered)
	return out
}

func (c *Catalog) FindByID(id int64) (domain.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// FindByName matches on the exact display name. Callers must tolerate
// absence; the recommendation flow feeds names that may not exist here.
func (c *Catalog) FindByName(name string) (domain.Product, bool) {
	p, ok := c.byName[name]
	return p, ok
}
