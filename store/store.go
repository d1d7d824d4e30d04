// Package store is the key-value persistence layer. Values are stored as
// JSON documents under string keys, mirroring the browser localStorage the
// frontend uses for its own offline copy.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// Keys used by the cashier pipeline.
const (
	KeyCart         = "pos_cart"
	KeyTransactions = "pos_transactions"
	KeyDailyStats   = "pos_daily_stats"
)

// KV loads and saves JSON values under string keys. Load reports false when
// the key is absent; out is left untouched in that case.
type KV interface {
	Load(key string, out any) (bool, error)
	Save(key string, value any) error
}

// SQLiteKV persists values in a single kv table.
type SQLiteKV struct {
	db *sql.DB
}

func NewSQLiteKV(db *sql.DB) *SQLiteKV {
	return &SQLiteKV{db: db}
}

func (s *SQLiteKV) Load(key string, out any) (bool, error) {
	var raw string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("load %q: %w", key, err)
	}
	return true, nil
}

func (s *SQLiteKV) Save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, string(raw))
	if err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}
