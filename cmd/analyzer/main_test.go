package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"moveAnalyzer/internal/model"
)

func TestPlayerFieldsSkipsEmpty(t *testing.T) {
	got := playerFields(model.PlayerMeta{Username: "test_user", PlayerID: 42, Status: "basic", Followers: 7})
	want := [][2]string{
		{"Username", "test_user"},
		{"Player ID", "42"},
		{"Status", "basic"},
		{"Followers", "7"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("player fields mismatch (-want +got):\n%s", diff)
	}
}

func TestHistoryRowsNewestFirst(t *testing.T) {
	records := []model.AnalysisRecord{
		{GameID: "1", Date: "2025-01-05 10:00:00", WhitePlayer: "a", WhiteRating: "1500", BlackPlayer: "b", BlackRating: "Unknown"},
		{GameID: "2", Date: "2025-01-07 10:00:00", WhitePlayer: "c", WhiteRating: "1400", BlackPlayer: "d", BlackRating: "1450"},
	}

	rows := historyRows(records, 1)
	if len(rows) != 1 || rows[0].GameID != "2" {
		t.Fatalf("rows: %+v", rows)
	}
	if rows[0].White != "c (1400)" {
		t.Fatalf("white column: %q", rows[0].White)
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	if _, err := newLogger("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
