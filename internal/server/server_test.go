package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"moveAnalyzer/internal/analysis"
	"moveAnalyzer/internal/metrics"
	"moveAnalyzer/internal/report"
)

type fakeAnalyzer struct {
	username string
	selector string
	result   analysis.Result
}

func (f *fakeAnalyzer) Analyze(_ context.Context, username, selector string) analysis.Result {
	f.username = username
	f.selector = selector
	return f.result
}

func get(t *testing.T, h http.Handler, target string) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	body, _ := io.ReadAll(rec.Result().Body)
	return rec.Code, string(body)
}

func TestIndexListsFilterChoices(t *testing.T) {
	srv := New(Config{}, &fakeAnalyzer{}, nil, nil)

	code, body := get(t, srv.Handler(), "/")
	if code != http.StatusOK {
		t.Fatalf("status: %d", code)
	}
	for _, choice := range report.FilterChoices {
		if !strings.Contains(body, ">"+choice+"</option>") {
			t.Fatalf("missing filter choice %q", choice)
		}
	}

	if code, _ := get(t, srv.Handler(), "/nope"); code != http.StatusNotFound {
		t.Fatalf("unknown path status: %d", code)
	}
}

func TestAnalyzeRendersRows(t *testing.T) {
	fake := &fakeAnalyzer{result: analysis.Result{Rows: []report.Row{{
		Date:      "2025-01-06 21:46:40",
		White:     "test_user",
		Black:     "<opponent>",
		Result:    "win",
		Narrative: "• Opening: Italian\n• Final Outcome: win",
	}}}}
	srv := New(Config{}, fake, nil, nil)

	code, body := get(t, srv.Handler(), "/analyze?username=+test_user+&filter=Last+7+days")
	if code != http.StatusOK {
		t.Fatalf("status: %d", code)
	}
	if fake.username != "test_user" || fake.selector != "Last 7 days" {
		t.Fatalf("analyzer called with %q %q", fake.username, fake.selector)
	}
	if !strings.Contains(body, "&lt;opponent&gt;") {
		t.Fatalf("player name not escaped")
	}
	if !strings.Contains(body, "• Opening: Italian <br>• Final Outcome: win") {
		t.Fatalf("narrative not formatted: %s", body)
	}
	if !strings.Contains(body, `<option value="Last 7 days" selected>`) {
		t.Fatalf("selected filter not kept")
	}
}

func TestAnalyzeShowsStatus(t *testing.T) {
	fake := &fakeAnalyzer{result: analysis.Result{Status: "No games found for this player"}}
	srv := New(Config{}, fake, nil, nil)

	_, body := get(t, srv.Handler(), "/analyze?username=nobody")
	if !strings.Contains(body, "No games found for this player") {
		t.Fatalf("status not rendered")
	}
	if fake.selector != report.LabelAll {
		t.Fatalf("default filter: %q", fake.selector)
	}
}

func TestNarrativeHTML(t *testing.T) {
	got := string(narrativeHTML("• Opening: e4 & d4\n• Key Moments:\n  - blunder"))
	want := "• Opening: e4 &amp; d4 <br>• Key Moments:  - blunder"
	if got != want {
		t.Fatalf("narrativeHTML: want %q, got %q", want, got)
	}
}

func TestMetricsAndHealth(t *testing.T) {
	m := metrics.NewPipeline()
	m.GamesFetched.Add(3)
	srv := New(Config{}, &fakeAnalyzer{}, m, nil)

	code, body := get(t, srv.Handler(), "/healthz")
	if code != http.StatusOK || body != "ok" {
		t.Fatalf("healthz: %d %q", code, body)
	}

	_, body = get(t, srv.Handler(), "/metrics")
	if !strings.Contains(body, "move_analyzer_games_fetched_total 3") {
		t.Fatalf("metrics missing counter")
	}
}
