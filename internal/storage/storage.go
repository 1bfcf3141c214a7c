package storage

import (
	"context"

	"moveAnalyzer/internal/model"
)

// Sink is an append-only analysis log deduplicated by game id.
type Sink interface {
	// Put appends rec unless a row with the same GameID already exists.
	// It reports whether a row was written; a duplicate is not an error.
	Put(ctx context.Context, rec model.AnalysisRecord) (bool, error)
	Close() error
}

// Lister is implemented by sinks that can read back their rows.
type Lister interface {
	List(ctx context.Context) ([]model.AnalysisRecord, error)
}
