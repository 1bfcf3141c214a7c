// Package report filters, orders and renders analysed games.
package report

import (
	"sort"
	"strings"
	"time"

	"moveAnalyzer/internal/model"
)

// FilterKind is the family of a filter selector.
type FilterKind int

const (
	FilterAll FilterKind = iota
	FilterToday
	FilterLastDays
	FilterOutcome
)

const (
	LabelAll        = "All"
	LabelToday      = "Today"
	LabelLast7Days  = "Last 7 days"
	LabelLast30Days = "Last 30 days"
)

// FilterChoices are the selectors offered by the web form.
var FilterChoices = []string{
	LabelAll, LabelToday, LabelLast7Days, LabelLast30Days,
	"win", "resigned", "timeout", "abandoned",
}

// Filter selects games by end date or by outcome token.
type Filter struct {
	Kind    FilterKind
	Days    int
	Outcome string
	Label   string
}

// ParseFilter maps a selector onto a Filter. Anything that is not a date
// window is an exact outcome token.
func ParseFilter(selector string) Filter {
	s := strings.TrimSpace(selector)
	switch strings.ToLower(s) {
	case "", "all":
		return Filter{Kind: FilterAll, Label: LabelAll}
	case "today":
		return Filter{Kind: FilterToday, Label: LabelToday}
	case "last 7 days", "7d":
		return Filter{Kind: FilterLastDays, Days: 7, Label: LabelLast7Days}
	case "last 30 days", "30d":
		return Filter{Kind: FilterLastDays, Days: 30, Label: LabelLast30Days}
	}
	return Filter{Kind: FilterOutcome, Outcome: s, Label: s}
}

func (f Filter) String() string { return f.Label }

// Match reports whether game passes the filter. Dates are compared as
// calendar days in now's location; games without an end time never match a
// date window.
func (f Filter) Match(game model.Game, now time.Time) bool {
	switch f.Kind {
	case FilterAll:
		return true
	case FilterOutcome:
		return game.Outcome == f.Outcome
	}

	if !game.EndTime.Known {
		return false
	}
	days := daysBetween(game.EndTime.Time(now.Location()), now)
	switch f.Kind {
	case FilterToday:
		return days == 0
	case FilterLastDays:
		return days <= f.Days
	default:
		return false
	}
}

// Apply returns the games that match, keeping their order.
func (f Filter) Apply(games []model.Game, now time.Time) []model.Game {
	out := make([]model.Game, 0, len(games))
	for _, g := range games {
		if f.Match(g, now) {
			out = append(out, g)
		}
	}
	return out
}

// SortByRecency orders games by end time, newest first. Games without an
// end time go last; ties keep archive order.
func SortByRecency(games []model.Game) {
	sort.SliceStable(games, func(i, j int) bool {
		a, b := games[i].EndTime, games[j].EndTime
		if a.Known != b.Known {
			return a.Known
		}
		return a.Unix > b.Unix
	})
}

// SortRowsByDate orders rendered rows newest first by their formatted date.
// Unknown dates go last.
func SortRowsByDate(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].Date, rows[j].Date
		if (a == model.Unknown) != (b == model.Unknown) {
			return b == model.Unknown
		}
		return a > b
	})
}

func daysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
