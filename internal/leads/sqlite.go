package leads

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/Manny2706/servicehire/internal/model/lead"
)

// SQLiteStore implements Sink backed by a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) the lead database at dbPath.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// WAL keeps concurrent session writes from tripping over each other.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS leads (
		lead_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		platform TEXT NOT NULL,
		captured_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_leads_captured ON leads(captured_at);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Record inserts one captured lead.
func (s *SQLiteStore) Record(ctx context.Context, l lead.Lead) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CapturedAt.IsZero() {
		l.CapturedAt = time.Now().UTC()
	}

	query := `INSERT INTO leads (lead_id, name, email, platform, captured_at) VALUES (?, ?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query, l.ID, l.Name, l.Email, l.Platform, l.CapturedAt.Unix()); err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// List returns captured leads, most recent first.
func (s *SQLiteStore) List(ctx context.Context) ([]lead.Lead, error) {
	query := `SELECT lead_id, name, email, platform, captured_at FROM leads ORDER BY captured_at DESC, lead_id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query leads: %w", err)
	}
	defer rows.Close()

	var items []lead.Lead
	for rows.Next() {
		var l lead.Lead
		var capturedAt int64
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Platform, &capturedAt); err != nil {
			return nil, fmt.Errorf("scan lead row: %w", err)
		}
		l.CapturedAt = time.Unix(capturedAt, 0).UTC()
		items = append(items, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lead rows: %w", err)
	}
	return items, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
