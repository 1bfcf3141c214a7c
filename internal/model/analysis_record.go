package model

import (
	"strings"
	"time"
)

// AnalysisRecord is one persisted row of the analysis log.
type AnalysisRecord struct {
	GameID      string `json:"game_id"`
	Date        string `json:"date"`
	WhitePlayer string `json:"white_player"`
	WhiteRating string `json:"white_rating"`
	BlackPlayer string `json:"black_player"`
	BlackRating string `json:"black_rating"`
	Result      string `json:"result"`
	TimeControl string `json:"time_control"`
	Analysis    string `json:"analysis"`
	PGN         string `json:"pgn"`
}

// AnalysisColumns is the column order of the persisted log.
var AnalysisColumns = []string{
	"game_id", "date", "white_player", "white_rating", "black_player",
	"black_rating", "result", "time_control", "analysis", "pgn",
}

// NewAnalysisRecord flattens a game and its narrative into a log row.
// Newlines in the narrative and PGN are replaced by spaces.
func NewAnalysisRecord(game Game, narrative string, loc *time.Location) AnalysisRecord {
	return AnalysisRecord{
		GameID:      game.CompositeID(),
		Date:        game.EndTime.Format(loc),
		WhitePlayer: game.WhitePlayer,
		WhiteRating: game.WhiteRating.String(),
		BlackPlayer: game.BlackPlayer,
		BlackRating: game.BlackRating.String(),
		Result:      game.Outcome,
		TimeControl: game.TimeControl,
		Analysis:    strings.ReplaceAll(narrative, "\n", " "),
		PGN:         strings.ReplaceAll(game.PGN, "\n", " "),
	}
}

// Values returns the row in AnalysisColumns order.
func (r AnalysisRecord) Values() []string {
	return []string{
		r.GameID, r.Date, r.WhitePlayer, r.WhiteRating, r.BlackPlayer,
		r.BlackRating, r.Result, r.TimeControl, r.Analysis, r.PGN,
	}
}
