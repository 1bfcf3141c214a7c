// Package sqlite stores analysis records in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"moveAnalyzer/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS game_analyses (
	game_id      TEXT PRIMARY KEY,
	date         TEXT NOT NULL,
	white_player TEXT NOT NULL,
	white_rating TEXT NOT NULL,
	black_player TEXT NOT NULL,
	black_rating TEXT NOT NULL,
	result       TEXT NOT NULL,
	time_control TEXT NOT NULL,
	analysis     TEXT NOT NULL,
	pgn          TEXT NOT NULL,
	created_at   TEXT NOT NULL DEFAULT (datetime('now'))
)`

// Store is a SQLite-backed analysis log.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Put inserts rec unless its game_id is already stored.
func (s *Store) Put(ctx context.Context, rec model.AnalysisRecord) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO game_analyses (
			game_id, date, white_player, white_rating, black_player,
			black_rating, result, time_control, analysis, pgn
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.GameID, rec.Date, rec.WhitePlayer, rec.WhiteRating, rec.BlackPlayer,
		rec.BlackRating, rec.Result, rec.TimeControl, rec.Analysis, rec.PGN,
	)
	if err != nil {
		return false, fmt.Errorf("insert analysis: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

// List returns stored records ordered by date, newest first.
func (s *Store) List(ctx context.Context) ([]model.AnalysisRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT game_id, date, white_player, white_rating, black_player,
			black_rating, result, time_control, analysis, pgn
		FROM game_analyses ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}
	defer rows.Close()

	var out []model.AnalysisRecord
	for rows.Next() {
		var r model.AnalysisRecord
		if err := rows.Scan(&r.GameID, &r.Date, &r.WhitePlayer, &r.WhiteRating, &r.BlackPlayer,
			&r.BlackRating, &r.Result, &r.TimeControl, &r.Analysis, &r.PGN); err != nil {
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
