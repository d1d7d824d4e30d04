// Package catalog resolves product ids against the menu. The cashier core
// only ever reads from it.
package catalog

import (
	"database/sql"
	"errors"
	"fmt"

	"kasir-pos/models"
)

var ErrProductNotFound = errors.New("product not found")

// Catalog is the read-only product lookup used by the cart.
type Catalog interface {
	GetProduct(id int) (models.Product, error)
	ListProducts() ([]models.Product, error)
}

// SQLiteCatalog reads products from the products table.
type SQLiteCatalog struct {
	db *sql.DB
}

func NewSQLiteCatalog(db *sql.DB) *SQLiteCatalog {
	return &SQLiteCatalog{db: db}
}

func (c *SQLiteCatalog) GetProduct(id int) (models.Product, error) {
	var p models.Product
	var stock sql.NullInt64
	err := c.db.QueryRow(`
		SELECT id, name, description, category, price, cost, stock
		FROM products WHERE id = ?
	`, id).Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.Cost, &stock)
	if err == sql.ErrNoRows {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("get product %d: %w", id, err)
	}
	if stock.Valid {
		n := int(stock.Int64)
		p.Stock = &n
	}
	return p, nil
}

func (c *SQLiteCatalog) ListProducts() ([]models.Product, error) {
	rows, err := c.db.Query(`
		SELECT id, name, description, category, price, cost, stock
		FROM products ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		var stock sql.NullInt64
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.Cost, &stock); err != nil {
			return nil, fmt.Errorf("list products: %w", err)
		}
		if stock.Valid {
			n := int(stock.Int64)
			p.Stock = &n
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
