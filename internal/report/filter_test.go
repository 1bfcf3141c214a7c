package report

import (
	"reflect"
	"testing"
	"time"

	"moveAnalyzer/internal/model"
)

func gameEndingAt(ts time.Time, outcome string) model.Game {
	return model.Game{
		WhitePlayer: "alice",
		BlackPlayer: "bob",
		EndTime:     model.EndTime{Unix: ts.Unix(), Known: true},
		Outcome:     outcome,
	}
}

func TestParseFilter(t *testing.T) {
	cases := []struct {
		in   string
		kind FilterKind
		days int
	}{
		{"All", FilterAll, 0},
		{"", FilterAll, 0},
		{"Today", FilterToday, 0},
		{"Last 7 days", FilterLastDays, 7},
		{"30d", FilterLastDays, 30},
		{"resigned", FilterOutcome, 0},
	}
	for _, tc := range cases {
		f := ParseFilter(tc.in)
		if f.Kind != tc.kind || f.Days != tc.days {
			t.Fatalf("ParseFilter(%q) = %+v", tc.in, f)
		}
	}
	if f := ParseFilter("timeout"); f.Outcome != "timeout" || f.String() != "timeout" {
		t.Fatalf("outcome filter: %+v", f)
	}
}

func TestLastSevenDaysWindow(t *testing.T) {
	loc := time.UTC
	now := time.Date(2025, 1, 10, 15, 0, 0, 0, loc)
	f := ParseFilter("Last 7 days")

	recent := gameEndingAt(time.Date(2025, 1, 5, 20, 30, 0, 0, loc), "win")
	old := gameEndingAt(time.Date(2024, 12, 20, 9, 0, 0, 0, loc), "win")
	edge := gameEndingAt(time.Date(2025, 1, 3, 0, 1, 0, 0, loc), "win")

	if !f.Match(recent, now) {
		t.Fatalf("game on 2025-01-05 should match")
	}
	if f.Match(old, now) {
		t.Fatalf("game on 2024-12-20 should not match")
	}
	if !f.Match(edge, now) {
		t.Fatalf("game exactly 7 days back should match")
	}
}

func TestTodayAndUnknownEndTime(t *testing.T) {
	now := time.Date(2025, 1, 10, 23, 59, 0, 0, time.UTC)
	today := ParseFilter("Today")

	if !today.Match(gameEndingAt(time.Date(2025, 1, 10, 0, 5, 0, 0, time.UTC), "win"), now) {
		t.Fatalf("same day should match")
	}
	if today.Match(gameEndingAt(time.Date(2025, 1, 9, 23, 59, 0, 0, time.UTC), "win"), now) {
		t.Fatalf("previous day should not match")
	}

	unknown := model.Game{Outcome: "draw"}
	if today.Match(unknown, now) || ParseFilter("Last 30 days").Match(unknown, now) {
		t.Fatalf("unknown end time should not match a date window")
	}
	if !ParseFilter("All").Match(unknown, now) || !ParseFilter("draw").Match(unknown, now) {
		t.Fatalf("unknown end time should match all/outcome filters")
	}
}

func TestOutcomeFilterIsExact(t *testing.T) {
	now := time.Now()
	games := []model.Game{
		gameEndingAt(now, "win"),
		gameEndingAt(now, "draw"),
		gameEndingAt(now, "Win"),
	}
	got := ParseFilter("win").Apply(games, now)
	if len(got) != 1 || got[0].Outcome != "win" {
		t.Fatalf("outcome filter: %+v", got)
	}
}

func TestSortByRecency(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	games := []model.Game{
		{SourceGameID: "old", EndTime: model.EndTime{Unix: base.Unix(), Known: true}},
		{SourceGameID: "none"},
		{SourceGameID: "new", EndTime: model.EndTime{Unix: base.Add(48 * time.Hour).Unix(), Known: true}},
		{SourceGameID: "mid", EndTime: model.EndTime{Unix: base.Add(24 * time.Hour).Unix(), Known: true}},
	}

	SortByRecency(games)

	want := []string{"new", "mid", "old", "none"}
	for i, id := range want {
		if games[i].SourceGameID != id {
			t.Fatalf("position %d: got %s want %s", i, games[i].SourceGameID, id)
		}
	}
}

func TestSortRowsByDate(t *testing.T) {
	rows := []Row{
		{GameID: "a", Date: "2025-01-05 10:00:00"},
		{GameID: "b", Date: model.Unknown},
		{GameID: "c", Date: "2025-01-07 09:00:00"},
	}
	SortRowsByDate(rows)

	var got []string
	for _, r := range rows {
		got = append(got, r.GameID)
	}
	if want := []string{"c", "a", "b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("order: want %v, got %v", want, got)
	}
}
