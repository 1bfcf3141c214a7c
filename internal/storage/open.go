package storage

import (
	"context"
	"fmt"
	"strings"

	"moveAnalyzer/internal/storage/postgres"
	"moveAnalyzer/internal/storage/sqlite"
)

var (
	_ Sink   = (*CSVStorage)(nil)
	_ Sink   = (*sqlite.Store)(nil)
	_ Sink   = (*postgres.Store)(nil)
	_ Lister = (*CSVStorage)(nil)
	_ Lister = (*sqlite.Store)(nil)
	_ Lister = (*postgres.Store)(nil)
)

// Options selects and configures a sink.
type Options struct {
	Kind       string // none, csv, sqlite or postgres
	CSVPath    string
	SQLitePath string
	PGDSN      string
}

// Open returns the sink named by opts.Kind, or nil for "none".
func Open(ctx context.Context, opts Options) (Sink, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Kind)) {
	case "", "none":
		return nil, nil
	case "csv":
		if opts.CSVPath == "" {
			return nil, fmt.Errorf("csv path is required")
		}
		return NewCSVStorage(opts.CSVPath), nil
	case "sqlite":
		store, err := sqlite.Open(ctx, opts.SQLitePath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "postgres", "pg":
		store, err := postgres.NewStore(ctx, opts.PGDSN)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown sink: %q", opts.Kind)
	}
}
