package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"moveAnalyzer/internal/model"
)

// Store provides Postgres persistence for analysis records.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	s := &Store{pool: pool}
	if err := s.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}

// EnsureSchema creates the game_analyses table when missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
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
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Put inserts rec; an existing game_id is left untouched.
func (s *Store) Put(ctx context.Context, rec model.AnalysisRecord) (bool, error) {
	tag, err := s.pool.Exec(ctx, insertAnalysis,
		rec.GameID, rec.Date, rec.WhitePlayer, rec.WhiteRating, rec.BlackPlayer,
		rec.BlackRating, rec.Result, rec.TimeControl, rec.Analysis, rec.PGN,
	)
	if err != nil {
		return false, fmt.Errorf("insert analysis: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// List returns stored records ordered by date, newest first.
func (s *Store) List(ctx context.Context) ([]model.AnalysisRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT game_id, date, white_player, white_rating, black_player,
			black_rating, result, time_control, analysis, pgn
		FROM game_analyses ORDER BY date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.AnalysisRecord, error) {
		var r model.AnalysisRecord
		err := row.Scan(&r.GameID, &r.Date, &r.WhitePlayer, &r.WhiteRating, &r.BlackPlayer,
			&r.BlackRating, &r.Result, &r.TimeControl, &r.Analysis, &r.PGN)
		return r, err
	})
}

const insertAnalysis = `
	INSERT INTO game_analyses (
		game_id, date, white_player, white_rating, black_player,
		black_rating, result, time_control, analysis, pgn
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (game_id) DO NOTHING
`
