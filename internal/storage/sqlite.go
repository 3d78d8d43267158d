// Package storage provides the SQLite-backed item store.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/recall-sh/recall/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore implements service.ItemStore using SQLite. Save replaces the
// whole collection inside one transaction, matching the engine's
// collection-mirror semantics.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens (creating if needed) the item database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath must not be empty")
	}

	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db, dbPath: dbPath}
	if err := store.migrate(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS items (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		content TEXT NOT NULL,
		back_content TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL,
		manual_category INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		total_reviews INTEGER NOT NULL DEFAULT 0,
		easy_count INTEGER NOT NULL DEFAULT 0,
		good_count INTEGER NOT NULL DEFAULT 0,
		hard_count INTEGER NOT NULL DEFAULT 0,
		interval_multiplier REAL NOT NULL DEFAULT 1.0,
		position INTEGER NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to migrate items table: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load returns the full item collection in its stored order.
func (s *SQLiteStore) Load(ctx context.Context) ([]model.Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, content, back_content, category, manual_category, created_at,
		       total_reviews, easy_count, good_count, hard_count, interval_multiplier
		FROM items ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []model.Item
	for rows.Next() {
		var (
			item      model.Item
			manual    int
			createdAt time.Time
		)
		if err := rows.Scan(
			&item.ID, &item.Kind, &item.Content, &item.BackContent,
			&item.Category, &manual, &createdAt,
			&item.Progress.TotalReviews, &item.Progress.EasyCount,
			&item.Progress.GoodCount, &item.Progress.HardCount,
			&item.Progress.CurrentIntervalMultiplier,
		); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		item.ManualCategory = manual != 0
		item.CreatedAt = createdAt
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	return items, nil
}

// Save replaces the stored collection with the given one.
func (s *SQLiteStore) Save(ctx context.Context, items []model.Item) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return fmt.Errorf("failed to clear items: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO items (
			id, kind, content, back_content, category, manual_category, created_at,
			total_reviews, easy_count, good_count, hard_count, interval_multiplier, position
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, item := range items {
		manual := 0
		if item.ManualCategory {
			manual = 1
		}
		if _, err := stmt.ExecContext(ctx,
			item.ID, string(item.Kind), item.Content, item.BackContent,
			string(item.Category), manual, item.CreatedAt,
			item.Progress.TotalReviews, item.Progress.EasyCount,
			item.Progress.GoodCount, item.Progress.HardCount,
			item.Progress.CurrentIntervalMultiplier, i,
		); err != nil {
			return fmt.Errorf("failed to insert item %s: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit items: %w", err)
	}
	return nil
}
