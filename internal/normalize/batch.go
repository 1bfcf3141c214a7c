package normalize

import (
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"moveAnalyzer/internal/model"
)

// Batch is the result of normalizing a monthly archive.
type Batch struct {
	Games  []model.Game
	Errors []model.FormatError
}

// ExtractBatch normalizes every entry of an archive in order. A malformed
// entry is recorded in Errors and skipped; it never aborts the batch.
func ExtractBatch(entries []json.RawMessage, logger *zap.Logger) Batch {
	if logger == nil {
		logger = zap.NewNop()
	}

	batch := Batch{Games: make([]model.Game, 0, len(entries))}
	for i, entry := range entries {
		logger.Debug("raw game", zap.Int("index", i), zap.ByteString("raw", entry))

		game, err := Decode(i, entry)
		if err != nil {
			var formatErr *model.FormatError
			if !errors.As(err, &formatErr) {
				formatErr = &model.FormatError{Index: i, Raw: entry, Err: err.Error()}
			}
			logger.Warn("skip malformed game", zap.Int("index", i), zap.String("error", formatErr.Err))
			batch.Errors = append(batch.Errors, *formatErr)
			continue
		}
		batch.Games = append(batch.Games, game)
	}
	return batch
}
