// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists analysis results per user in a local SQLite
// database. The store keeps only the newest records for each user and
// returns them most-recent-first. Storage failures never corrupt existing
// rows: every write runs in a transaction.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/originality/pkg/types"
)

const dbFile = "history.db"

// DefaultMaxRecords is the per-user retention cap.
const DefaultMaxRecords = 50

// Store manages the history SQLite database.
type Store struct {
	db         *sql.DB
	maxRecords int
}

// NewStore opens or creates the history database at cfg.Dir/history.db and
// creates the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("history directory not configured")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxRecords := cfg.MaxRecords
	if maxRecords <= 0 {
		maxRecords = DefaultMaxRecords
	}

	s := &Store{db: db, maxRecords: maxRecords}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS records (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			text TEXT NOT NULL,
			analysis TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_user_created
			ON records(user_id, created_at DESC)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save appends a record for user and prunes rows beyond the retention cap.
// A save whose text matches the user's newest record is skipped, so
// re-running the same analysis does not fill the history with duplicates.
// The record's ID and CreatedAt are assigned here; the stored record is
// returned.
func (s *Store) Save(ctx context.Context, userID, text string, analysis types.AnalysisResult) (types.HistoryRecord, error) {
	rec := types.HistoryRecord{
		ID:        uuid.NewString(),
		UserID:    userID,
		Text:      text,
		Analysis:  analysis,
		CreatedAt: time.Now().UTC(),
	}

	var newestText string
	err := s.db.QueryRowContext(ctx,
		`SELECT text FROM records WHERE user_id = ? ORDER BY created_at DESC LIMIT 1`,
		userID,
	).Scan(&newestText)
	if err == nil && newestText == text {
		return rec, nil
	}
	if err != nil && err != sql.ErrNoRows {
		return types.HistoryRecord{}, fmt.Errorf("checking newest record: %w", err)
	}

	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return types.HistoryRecord{}, fmt.Errorf("marshaling analysis: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return types.HistoryRecord{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO records (id, user_id, text, analysis, created_at) VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.UserID, rec.Text, string(analysisJSON),
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return types.HistoryRecord{}, fmt.Errorf("inserting record: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM records WHERE user_id = ? AND id NOT IN (
			SELECT id FROM records WHERE user_id = ? ORDER BY created_at DESC LIMIT ?
		)`,
		userID, userID, s.maxRecords,
	)
	if err != nil {
		return types.HistoryRecord{}, fmt.Errorf("pruning records: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return types.HistoryRecord{}, fmt.Errorf("committing record: %w", err)
	}
	return rec, nil
}

// List returns the user's records, most recent first, up to the retention cap.
func (s *Store) List(ctx context.Context, userID string) ([]types.HistoryRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, text, analysis, created_at
		 FROM records WHERE user_id = ?
		 ORDER BY created_at DESC LIMIT ?`,
		userID, s.maxRecords,
	)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	records := make([]types.HistoryRecord, 0)
	for rows.Next() {
		var (
			rec          types.HistoryRecord
			analysisJSON string
			createdAt    string
		)
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Text, &analysisJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		if err := json.Unmarshal([]byte(analysisJSON), &rec.Analysis); err != nil {
			return nil, fmt.Errorf("parsing analysis for record %s: %w", rec.ID, err)
		}
		rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp for record %s: %w", rec.ID, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Get returns a single record by ID, scoped to the user.
func (s *Store) Get(ctx context.Context, userID, id string) (types.HistoryRecord, error) {
	var (
		rec          types.HistoryRecord
		analysisJSON string
		createdAt    string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, text, analysis, created_at FROM records WHERE user_id = ? AND id = ?`,
		userID, id,
	).Scan(&rec.ID, &rec.UserID, &rec.Text, &analysisJSON, &createdAt)
	if err == sql.ErrNoRows {
		return types.HistoryRecord{}, fmt.Errorf("record %s not found", id)
	}
	if err != nil {
		return types.HistoryRecord{}, fmt.Errorf("querying record: %w", err)
	}
	if err := json.Unmarshal([]byte(analysisJSON), &rec.Analysis); err != nil {
		return types.HistoryRecord{}, fmt.Errorf("parsing analysis: %w", err)
	}
	rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return types.HistoryRecord{}, fmt.Errorf("parsing timestamp: %w", err)
	}
	return rec, nil
}

// Delete removes one record by ID, scoped to the user.
func (s *Store) Delete(ctx context.Context, userID, id string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM records WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("record %s not found", id)
	}
	return nil
}

// Clear removes all of the user's records and returns how many were deleted.
func (s *Store) Clear(ctx context.Context, userID string) (int, error) {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM records WHERE user_id = ?`, userID)
	if err != nil {
		return 0, fmt.Errorf("clearing records: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking clear result: %w", err)
	}
	return int(affected), nil
}
