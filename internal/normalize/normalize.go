// Package normalize turns raw archive entries into canonical game records.
package normalize

import (
	"encoding/json"
	"strings"

	"moveAnalyzer/internal/model"
)

// Normalize builds a canonical Game from a raw archive entry. Missing fields
// are replaced by sentinels; it never fails.
func Normalize(raw model.RawGame) model.Game {
	return model.Game{
		SourceGameID: SourceGameID(raw.URL),
		WhitePlayer:  playerName(raw.White),
		WhiteRating:  playerRating(raw.White),
		BlackPlayer:  playerName(raw.Black),
		BlackRating:  playerRating(raw.Black),
		PGN:          stringOr(raw.PGN, model.NoPGN),
		TimeControl:  stringOr(raw.TimeControl, model.Unknown),
		TimeClass:    stringOr(raw.TimeClass, model.Unknown),
		Rules:        stringOr(raw.Rules, model.Unknown),
		EndTime:      endTime(raw.EndTime),
		Outcome:      ClassifyOutcome(raw),
	}
}

// Decode parses one archive entry and normalizes it. Entries that are not
// valid JSON objects, or carry a field of the wrong type, yield a
// *model.FormatError holding the original bytes.
func Decode(index int, data []byte) (model.Game, error) {
	var raw model.RawGame
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.Game{}, &model.FormatError{
			Index: index,
			Raw:   append(json.RawMessage(nil), data...),
			Err:   err.Error(),
		}
	}
	return Normalize(raw), nil
}

// SourceGameID returns the trailing path segment of the game URL.
func SourceGameID(url *string) string {
	if url == nil || *url == "" {
		return model.Unknown
	}
	parts := strings.Split(*url, "/")
	return parts[len(parts)-1]
}

func playerName(p *model.RawPlayer) string {
	if p == nil {
		return model.Unknown
	}
	return stringOr(p.Username, model.Unknown)
}

func playerRating(p *model.RawPlayer) model.Rating {
	if p == nil || p.Rating == nil {
		return model.Rating{}
	}
	return model.Rating{Value: *p.Rating, Known: true}
}

func endTime(ts *int64) model.EndTime {
	if ts == nil {
		return model.EndTime{}
	}
	return model.EndTime{Unix: *ts, Known: true}
}

func stringOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
