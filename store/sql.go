// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/Aritra-2000/MBTI/models"
)

// Column order mirrors the spreadsheet layout: name, mbti, score (with the
// trailing "%"), image hash, date. The UNIQUE constraint on image_hash is
// what makes InsertIfAbsent atomic on this backend.
const schema = `
CREATE TABLE IF NOT EXISTS submission (
    name TEXT NOT NULL,
    mbti TEXT NOT NULL,
    score TEXT NOT NULL,
    image_hash TEXT NOT NULL UNIQUE,
    submitted_on TEXT NOT NULL
);
`

// SQLStore persists submission records in a single table, using sqlite for
// local runs and postgres in shared deployments. Queries are fixed per
// driver at construction (placeholder dialects differ).
type SQLStore struct {
	db      *sql.DB
	existsQ string
	appendQ string
	insertQ string
}

var _ Store = (*SQLStore)(nil)

// OpenSQL connects, creates the schema, and prepares driver-specific
// queries. postgres:// and postgresql:// URLs select lib/pq; anything else
// is treated as a sqlite path or file: URL.
func OpenSQL(databaseURL string) (*SQLStore, error) {
	driver := "sqlite"
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		driver = "postgres"
	}

	db, err := sql.Open(driver, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == "sqlite" {
		// Single connection serializes sqlite writers; concurrent writes on
		// separate connections surface as SQLITE_BUSY instead of queueing.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	s := &SQLStore{db: db}
	switch driver {
	case "postgres":
		s.existsQ = `SELECT EXISTS(SELECT 1 FROM submission WHERE image_hash = $1)`
		s.appendQ = `INSERT INTO submission (name, mbti, score, image_hash, submitted_on) VALUES ($1, $2, $3, $4, $5)`
		s.insertQ = `INSERT INTO submission (name, mbti, score, image_hash, submitted_on) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (image_hash) DO NOTHING`
	default:
		s.existsQ = `SELECT EXISTS(SELECT 1 FROM submission WHERE image_hash = ?)`
		s.appendQ = `INSERT INTO submission (name, mbti, score, image_hash, submitted_on) VALUES (?, ?, ?, ?, ?)`
		s.insertQ = `INSERT INTO submission (name, mbti, score, image_hash, submitted_on) VALUES (?, ?, ?, ?, ?) ON CONFLICT (image_hash) DO NOTHING`
	}
	return s, nil
}

func (s *SQLStore) Exists(ctx context.Context, fingerprint string) (bool, error) {
	var exists bool
	if err := s.db.QueryRowContext(ctx, s.existsQ, fingerprint).Scan(&exists); err != nil {
		return false, fmt.Errorf("duplicate lookup failed: %w", err)
	}
	return exists, nil
}

func (s *SQLStore) Append(ctx context.Context, rec models.SubmissionRecord) error {
	_, err := s.db.ExecContext(ctx, s.appendQ,
		rec.Name, rec.Mbti, renderScore(rec.Score), rec.ImageHash, rec.Date)
	if err != nil {
		return fmt.Errorf("failed to append record: %w", err)
	}
	return nil
}

// InsertIfAbsent leans on the unique constraint: ON CONFLICT DO NOTHING
// makes the observation and the write one statement, so concurrent
// submissions of the same fingerprint resolve inside the database.
func (s *SQLStore) InsertIfAbsent(ctx context.Context, rec models.SubmissionRecord) (bool, error) {
	res, err := s.db.ExecContext(ctx, s.insertQ,
		rec.Name, rec.Mbti, renderScore(rec.Score), rec.ImageHash, rec.Date)
	if err != nil {
		return false, fmt.Errorf("conditional insert failed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("conditional insert failed: %w", err)
	}
	return n == 1, nil
}

// Count returns the number of persisted records.
func (s *SQLStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM submission`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count failed: %w", err)
	}
	return n, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
