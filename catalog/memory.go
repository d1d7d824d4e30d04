package catalog

import "kasir-pos/models"

// MemoryCatalog serves a fixed product list. Used in tests and for running
// the terminal without a seeded database.
type MemoryCatalog struct {
	products []models.Product
}

func NewMemoryCatalog(products []models.Product) *MemoryCatalog {
	return &MemoryCatalog{products: products}
}

func (c *MemoryCatalog) GetProduct(id int) (models.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (c *MemoryCatalog) ListProducts() ([]models.Product, error) {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}
