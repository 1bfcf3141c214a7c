package normalize

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"moveAnalyzer/internal/model"
)

func decodeRaw(t *testing.T, payload string) model.RawGame {
	t.Helper()
	var raw model.RawGame
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}
	return raw
}

func TestNormalizeFullRecord(t *testing.T) {
	raw := decodeRaw(t, `{
		"url": "https://www.chess.com/game/live/98765",
		"pgn": "1. e4 e5 2. Qh5 Nc6 3. Bc4 Nf6 4. Qxf7# 1-0",
		"time_control": "600",
		"time_class": "rapid",
		"end_time": 1704067200,
		"rules": "chess",
		"white": {"username": "alice", "rating": 1500, "result": "win"},
		"black": {"username": "bob", "rating": 1600, "result": "checkmated"}
	}`)

	got := Normalize(raw)
	want := model.Game{
		SourceGameID: "98765",
		WhitePlayer:  "alice",
		WhiteRating:  model.Rating{Value: 1500, Known: true},
		BlackPlayer:  "bob",
		BlackRating:  model.Rating{Value: 1600, Known: true},
		PGN:          "1. e4 e5 2. Qh5 Nc6 3. Bc4 Nf6 4. Qxf7# 1-0",
		TimeControl:  "600",
		TimeClass:    "rapid",
		Rules:        "chess",
		EndTime:      model.EndTime{Unix: 1704067200, Known: true},
		Outcome:      model.OutcomeWin,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("normalize mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeDefaultsMissingFields(t *testing.T) {
	cases := map[string]string{
		"empty":         `{}`,
		"null":          `null`,
		"empty players": `{"white": {}, "black": {}}`,
		"only pgn":      `{"pgn": "1. d4"}`,
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			got := Normalize(decodeRaw(t, payload))

			if got.WhitePlayer != model.Unknown || got.BlackPlayer != model.Unknown {
				t.Fatalf("player sentinels: %q %q", got.WhitePlayer, got.BlackPlayer)
			}
			if got.WhiteRating.Known || got.BlackRating.Known {
				t.Fatalf("ratings should be unknown")
			}
			if got.TimeControl != model.Unknown {
				t.Fatalf("time control sentinel: %q", got.TimeControl)
			}
			if got.EndTime.Known {
				t.Fatalf("end time should be unknown")
			}
			if got.SourceGameID != model.Unknown {
				t.Fatalf("source id sentinel: %q", got.SourceGameID)
			}
			if got.Outcome != model.OutcomeUnknown {
				t.Fatalf("outcome: %q", got.Outcome)
			}
		})
	}

	if got := Normalize(model.RawGame{}); got.PGN != model.NoPGN {
		t.Fatalf("pgn sentinel: %q", got.PGN)
	}
}

func TestClassifyOutcome(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    string
	}{
		{"white win", `{"white": {"result": "win"}}`, "win"},
		{"black win", `{"black": {"result": "win"}, "white": {"result": "resigned"}}`, "win"},
		{"black win without white block", `{"black": {"result": "win"}}`, "win"},
		{"chess draw", `{"rules": "chess", "pgn": "1. e4 e5 1/2-1/2"}`, "draw"},
		{"chess no result", `{"rules": "chess", "pgn": "1. e4 e5"}`, "unknown"},
		{"chess passthrough", `{"rules": "chess", "pgn": "1. e4 e5", "white": {"result": "timeout"}}`, "timeout"},
		{"chess empty white result", `{"rules": "chess", "pgn": "1. e4", "white": {"result": ""}}`, ""},
		{"chess white without result", `{"rules": "chess", "pgn": "1. e4", "white": {"username": "a"}}`, "unknown"},
		{"chess missing pgn", `{"rules": "chess", "white": {"result": "agreed"}}`, "agreed"},
		{"trailing whitespace defeats draw", `{"rules": "chess", "pgn": "1. e4 e5 1/2-1/2\n"}`, "unknown"},
		{"variant draw pgn", `{"rules": "chess960", "pgn": "1. e4 e5 1/2-1/2"}`, "unknown"},
		{"variant no flags", `{"rules": "crazyhouse", "white": {"result": "resigned"}}`, "unknown"},
		{"empty", `{}`, "unknown"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyOutcome(decodeRaw(t, tc.payload)); got != tc.want {
				t.Fatalf("outcome mismatch: got %q want %q", got, tc.want)
			}
		})
	}
}

func TestSourceGameID(t *testing.T) {
	url := "https://www.chess.com/game/daily/445566"
	if got := SourceGameID(&url); got != "445566" {
		t.Fatalf("source id: %q", got)
	}
	if got := SourceGameID(nil); got != model.Unknown {
		t.Fatalf("source id sentinel: %q", got)
	}
}

func TestDecodeReturnsFormatError(t *testing.T) {
	payload := []byte(`{"white": {"rating": "high"}}`)

	_, err := Decode(3, payload)
	if err == nil {
		t.Fatalf("expected format error")
	}
	formatErr, ok := err.(*model.FormatError)
	if !ok {
		t.Fatalf("error type mismatch: %T", err)
	}
	if formatErr.Index != 3 || string(formatErr.Raw) != string(payload) {
		t.Fatalf("format error mismatch: %+v", formatErr)
	}
}

func TestExtractBatchSkipsMalformedEntry(t *testing.T) {
	entries := []json.RawMessage{
		json.RawMessage(`{"url": "https://www.chess.com/game/live/1", "white": {"username": "alice", "result": "win"}, "black": {"username": "bob"}}`),
		json.RawMessage(`"not a game"`),
		json.RawMessage(`{"url": "https://www.chess.com/game/live/3", "rules": "chess", "pgn": "1. d4 d5 1/2-1/2"}`),
	}

	batch := ExtractBatch(entries, zap.NewNop())

	if len(batch.Games) != 2 {
		t.Fatalf("games: want 2, got %d", len(batch.Games))
	}
	if len(batch.Errors) != 1 || batch.Errors[0].Index != 1 {
		t.Fatalf("errors mismatch: %+v", batch.Errors)
	}
	if batch.Games[0].SourceGameID != "1" || batch.Games[1].SourceGameID != "3" {
		t.Fatalf("archive order not preserved: %q %q", batch.Games[0].SourceGameID, batch.Games[1].SourceGameID)
	}
	if batch.Games[0].Outcome != model.OutcomeWin || batch.Games[1].Outcome != model.OutcomeDraw {
		t.Fatalf("outcomes: %q %q", batch.Games[0].Outcome, batch.Games[1].Outcome)
	}
}

func TestExtractBatchEmpty(t *testing.T) {
	batch := ExtractBatch(nil, nil)
	if len(batch.Games) != 0 || len(batch.Errors) != 0 {
		t.Fatalf("expected empty batch: %+v", batch)
	}
}
