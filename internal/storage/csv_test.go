package storage

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"moveAnalyzer/internal/model"
)

func testRecord(id string) model.AnalysisRecord {
	return model.AnalysisRecord{
		GameID:      id,
		Date:        "2024-01-01 00:00:00",
		WhitePlayer: "alice",
		WhiteRating: "1500",
		BlackPlayer: "bob",
		BlackRating: "1600",
		Result:      "win",
		TimeControl: "600",
		Analysis:    "• Opening: Italian Game",
		PGN:         "1. e4 e5",
	}
}

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer file.Close()
	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	return rows
}

func TestCSVStorageWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "chessdb.csv")
	store := NewCSVStorage(path)
	ctx := context.Background()

	for _, id := range []string{"1704067200_alice_bob", "1704070800_alice_bob"} {
		written, err := store.Put(ctx, testRecord(id))
		if err != nil {
			t.Fatalf("Put: %v", err)
		}
		if !written {
			t.Fatalf("expected %s to be written", id)
		}
	}

	rows := readRows(t, path)
	if len(rows) != 3 {
		t.Fatalf("rows: want 3, got %d", len(rows))
	}
	if rows[0][0] != "game_id" || rows[0][9] != "pgn" {
		t.Fatalf("header mismatch: %v", rows[0])
	}
}

func TestCSVStorageSkipsDuplicateGameID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chessdb.csv")
	store := NewCSVStorage(path)
	ctx := context.Background()

	if _, err := store.Put(ctx, testRecord("1704067200_alice_bob")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	dup := testRecord("1704067200_alice_bob")
	dup.Analysis = "a different narrative"
	written, err := store.Put(ctx, dup)
	if err != nil {
		t.Fatalf("Put duplicate: %v", err)
	}
	if written {
		t.Fatalf("duplicate should not be written")
	}

	rows := readRows(t, path)
	if len(rows) != 2 {
		t.Fatalf("rows: want 2, got %d", len(rows))
	}
	if rows[1][8] != "• Opening: Italian Game" {
		t.Fatalf("existing row was modified: %v", rows[1])
	}

	recs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 1 || recs[0].GameID != "1704067200_alice_bob" {
		t.Fatalf("list mismatch: %+v", recs)
	}
}

func TestCSVStorageListMissingFile(t *testing.T) {
	store := NewCSVStorage(filepath.Join(t.TempDir(), "missing.csv"))
	recs, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected no records")
	}
}

func TestOpenSink(t *testing.T) {
	ctx := context.Background()

	sink, err := Open(ctx, Options{Kind: "none"})
	if err != nil || sink != nil {
		t.Fatalf("none sink: %v %v", sink, err)
	}
	if _, err := Open(ctx, Options{Kind: "redis"}); err == nil {
		t.Fatalf("expected unknown sink error")
	}
	if _, err := Open(ctx, Options{Kind: "csv"}); err == nil {
		t.Fatalf("expected missing csv path error")
	}

	sink, err = Open(ctx, Options{Kind: "csv", CSVPath: filepath.Join(t.TempDir(), "log.csv")})
	if err != nil {
		t.Fatalf("csv sink: %v", err)
	}
	if _, ok := sink.(*CSVStorage); !ok {
		t.Fatalf("sink type: %T", sink)
	}
}
