package model

import (
	"encoding/json"
	"fmt"
)

// FormatError records an archive entry that could not be normalized.
type FormatError struct {
	Index int             `json:"index"`
	Raw   json.RawMessage `json:"raw_game"`
	Err   string          `json:"error"`
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format game %d: %s", e.Index, e.Err)
}
