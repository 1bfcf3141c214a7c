package normalize

import (
	"strings"

	"moveAnalyzer/internal/model"
)

const (
	rulesChess = "chess"
	drawSuffix = "1/2-1/2"
)

// ClassifyOutcome assigns the outcome token for a raw game.
//
// A win flag on either side yields "win" without recording which side won.
// Standard chess games whose PGN ends with the literal "1/2-1/2" are draws;
// the suffix is matched exactly, so trailing whitespace defeats it. Other
// standard games pass white's result token through, even when empty, and
// everything else is "unknown".
func ClassifyOutcome(raw model.RawGame) string {
	if res, _ := sideResult(raw.White); res == model.OutcomeWin {
		return model.OutcomeWin
	}
	if res, _ := sideResult(raw.Black); res == model.OutcomeWin {
		return model.OutcomeWin
	}

	if raw.Rules != nil && *raw.Rules == rulesChess {
		if raw.PGN != nil && strings.HasSuffix(*raw.PGN, drawSuffix) {
			return model.OutcomeDraw
		}
		if res, ok := sideResult(raw.White); ok {
			return res
		}
		return model.OutcomeUnknown
	}

	return model.OutcomeUnknown
}

// sideResult reports the side's result token and whether it was present.
// A present but empty token is passed through as is.
func sideResult(p *model.RawPlayer) (string, bool) {
	if p == nil || p.Result == nil {
		return "", false
	}
	return *p.Result, true
}
