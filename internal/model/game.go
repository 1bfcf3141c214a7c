package model

import (
	"fmt"
	"strconv"
	"time"
)

const (
	// Unknown is the sentinel used for any field missing from the raw record.
	Unknown = "Unknown"
	// NoPGN is the sentinel transcript for games without a PGN.
	NoPGN = "No PGN available"

	OutcomeWin     = "win"
	OutcomeDraw    = "draw"
	OutcomeUnknown = "unknown"

	// DateLayout formats end times for display and persistence.
	DateLayout = "2006-01-02 15:04:05"
)

// Rating is a player rating that may be missing.
type Rating struct {
	Value int
	Known bool
}

func (r Rating) String() string {
	if !r.Known {
		return Unknown
	}
	return strconv.Itoa(r.Value)
}

// EndTime is a unix timestamp in seconds that may be missing.
type EndTime struct {
	Unix  int64
	Known bool
}

func (t EndTime) String() string {
	if !t.Known {
		return Unknown
	}
	return strconv.FormatInt(t.Unix, 10)
}

// Time returns the end time in loc. The zero time is returned when unknown.
func (t EndTime) Time(loc *time.Location) time.Time {
	if !t.Known {
		return time.Time{}
	}
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(t.Unix, 0).In(loc)
}

// Format renders the end time with DateLayout, or Unknown.
func (t EndTime) Format(loc *time.Location) string {
	if !t.Known {
		return Unknown
	}
	return t.Time(loc).Format(DateLayout)
}

// Game is the canonical, defaulted representation of one archived game.
type Game struct {
	SourceGameID string
	WhitePlayer  string
	WhiteRating  Rating
	BlackPlayer  string
	BlackRating  Rating
	PGN          string
	TimeControl  string
	TimeClass    string
	Rules        string
	EndTime      EndTime
	Outcome      string
}

// CompositeID is the persistence key: end time plus both player names.
// It is intentionally independent of SourceGameID.
func (g Game) CompositeID() string {
	return fmt.Sprintf("%s_%s_%s", g.EndTime, g.WhitePlayer, g.BlackPlayer)
}
