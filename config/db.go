package config

import (
	"database/sql"
	"log"

	_ "modernc.org/sqlite"

	"kasir-pos/catalog"
)

var DB *sql.DB

// InitDB opens the SQLite database, creates the tables and seeds the menu
// on first start.
func InitDB(path string) {
	var err error
	DB, err = sql.Open("sqlite", path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	createTables()
	seedProducts()
}

func createTables() {
	tx, err := DB.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v", err)
	}

	// Creating products table
	productTable := `
		CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		category TEXT,
		price REAL NOT NULL,
		cost REAL NOT NULL DEFAULT 0,
		stock INTEGER,           -- NULL means stock is not tracked
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`
	_, err = tx.Exec(productTable)
	if err != nil {
		tx.Rollback()
		log.Fatalf("Failed to create products table: %v", err)
	}

	// Creating kv table: the cart snapshot, transaction log and daily stats
	// live here as JSON documents.
	kvTable := `
		CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`
	_, err = tx.Exec(kvTable)
	if err != nil {
		tx.Rollback()
		log.Fatalf("Failed to create kv table: %v", err)
	}

	err = tx.Commit()
	if err != nil {
		log.Fatalf("Failed to commit transaction: %v", err)
	}

	log.Println("Database tables created successfully.")
}

func seedProducts() {
	var count int
	if err := DB.QueryRow("SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		log.Fatalf("Failed to count products: %v", err)
	}
	if count > 0 {
		return
	}

	for _, p := range catalog.DefaultProducts {
		var stock any
		if p.Stock != nil {
			stock = *p.Stock
		}
		_, err := DB.Exec(`
			INSERT INTO products (id, name, description, category, price, cost, stock)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, p.ID, p.Name, p.Description, p.Category, p.Price, p.Cost, stock)
		if err != nil {
			log.Fatalf("Failed to seed product %q: %v", p.Name, err)
		}
	}
	log.Printf("Seeded %d menu products.", len(catalog.DefaultProducts))
}
