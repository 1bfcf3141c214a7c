package model

import (
	"encoding/json"
)

// RawPlayer is one side of a game as reported by the archive source.
// Every field is optional.
type RawPlayer struct {
	Username *string `json:"username,omitempty"`
	Rating   *int    `json:"rating,omitempty"`
	Result   *string `json:"result,omitempty"`
}

// RawGame is a single entry of a monthly archive. Any key may be absent.
type RawGame struct {
	URL         *string    `json:"url,omitempty"`
	PGN         *string    `json:"pgn,omitempty"`
	TimeControl *string    `json:"time_control,omitempty"`
	TimeClass   *string    `json:"time_class,omitempty"`
	EndTime     *int64     `json:"end_time,omitempty"`
	Rated       *bool      `json:"rated,omitempty"`
	Rules       *string    `json:"rules,omitempty"`
	Result      *string    `json:"result,omitempty"`
	Status      *string    `json:"status,omitempty"`
	White       *RawPlayer `json:"white,omitempty"`
	Black       *RawPlayer `json:"black,omitempty"`

	// Raw keeps the original entry bytes for diagnostics.
	Raw json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes a RawGame and keeps a copy of the source bytes.
func (g *RawGame) UnmarshalJSON(data []byte) error {
	type Alias RawGame
	var a Alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*g = RawGame(a)
	g.Raw = append(json.RawMessage(nil), data...)
	return nil
}
