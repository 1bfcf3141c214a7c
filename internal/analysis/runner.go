// Package analysis runs one end-to-end game analysis for a player.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"moveAnalyzer/internal/metrics"
	"moveAnalyzer/internal/model"
	"moveAnalyzer/internal/narrative"
	"moveAnalyzer/internal/normalize"
	"moveAnalyzer/internal/report"
	"moveAnalyzer/internal/storage"
)

// Archive fetches raw data for a player.
type Archive interface {
	FetchPlayerMeta(ctx context.Context, username string) (model.PlayerMeta, error)
	FetchLatestArchive(ctx context.Context, username string) ([]json.RawMessage, error)
}

// Narrator writes a narrative for a game.
type Narrator interface {
	Generate(ctx context.Context, game model.Game, provider narrative.Provider) string
}

// RunConfig holds runtime settings for an analysis.
type RunConfig struct {
	Provider narrative.Provider
	// Limit keeps only the N most recent matching games; 0 keeps all.
	Limit    int
	Location *time.Location
	Now      func() time.Time
}

// Result is either a status message or the rendered rows.
type Result struct {
	Status    string
	Rows      []report.Row
	Fetched   int
	Malformed int
}

// Runner fetches, normalizes, narrates and persists games one at a time.
type Runner struct {
	cfg      RunConfig
	archive  Archive
	narrator Narrator
	sink     storage.Sink
	errLog   *storage.FormatErrorLog
	metrics  *metrics.Pipeline
	logger   *zap.Logger
}

// NewRunner builds a Runner with its dependencies. sink and errLog may be nil.
func NewRunner(cfg RunConfig, archive Archive, narrator Narrator, sink storage.Sink, errLog *storage.FormatErrorLog, m *metrics.Pipeline, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if m == nil {
		m = metrics.NewPipeline()
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Runner{
		cfg:      cfg,
		archive:  archive,
		narrator: narrator,
		sink:     sink,
		errLog:   errLog,
		metrics:  m,
		logger:   logger,
	}
}

// Analyze runs the whole pipeline for username with the given filter
// selector. It never returns an error; failures become Result.Status.
func (r *Runner) Analyze(ctx context.Context, username, selector string) Result {
	username = strings.TrimSpace(username)
	if username == "" {
		return r.finish(Result{Status: "Please enter a player name"}, "invalid")
	}
	if r.archive == nil || r.narrator == nil {
		return r.finish(Result{Status: "Error: analyzer is not configured"}, "error")
	}

	filter := report.ParseFilter(selector)
	runID := uuid.NewString()
	logger := r.logger.With(
		zap.String("run_id", runID),
		zap.String("username", username),
		zap.String("filter", filter.String()),
	)
	logger.Info("analysis start", zap.String("provider", r.cfg.Provider.String()), zap.Int("limit", r.cfg.Limit))

	if _, err := r.archive.FetchPlayerMeta(ctx, username); err != nil {
		r.metrics.FetchErrors.Inc()
		logger.Warn("fetch player failed", zap.Error(err))
		return r.finish(Result{Status: fmt.Sprintf("Error: %v", err)}, "fetch_error")
	}

	entries, err := r.archive.FetchLatestArchive(ctx, username)
	if err != nil {
		r.metrics.FetchErrors.Inc()
		logger.Warn("fetch archive failed", zap.Error(err))
		return r.finish(Result{Status: fmt.Sprintf("Error: %v", err)}, "fetch_error")
	}
	r.metrics.GamesFetched.Add(float64(len(entries)))

	batch := normalize.ExtractBatch(entries, logger)
	r.metrics.GamesMalformed.Add(float64(len(batch.Errors)))
	if err := r.errLog.PutFormatErrors(runID, username, batch.Errors); err != nil {
		logger.Warn("write format errors failed", zap.Error(err))
	}

	res := Result{Fetched: len(entries), Malformed: len(batch.Errors)}
	if len(batch.Games) == 0 {
		res.Status = "No games found for this player"
		return r.finish(res, "empty")
	}

	games := filter.Apply(batch.Games, r.cfg.Now().In(r.cfg.Location))
	report.SortByRecency(games)
	if r.cfg.Limit > 0 && len(games) > r.cfg.Limit {
		games = games[:r.cfg.Limit]
	}
	if len(games) == 0 {
		res.Status = fmt.Sprintf("No games found matching the filter: %s", filter)
		return r.finish(res, "empty")
	}

	res.Rows = make([]report.Row, 0, len(games))
	for _, game := range games {
		if err := ctx.Err(); err != nil {
			res.Status = fmt.Sprintf("Error: %v", err)
			res.Rows = nil
			return r.finish(res, "canceled")
		}

		text := r.narrate(ctx, game, logger)
		r.persist(ctx, game, text, logger)

		res.Rows = append(res.Rows, report.Row{
			GameID:    game.CompositeID(),
			Date:      game.EndTime.Format(r.cfg.Location),
			White:     game.WhitePlayer,
			Black:     game.BlackPlayer,
			Result:    game.Outcome,
			Narrative: text,
		})
	}

	logger.Info("analysis complete",
		zap.Int("fetched", res.Fetched),
		zap.Int("malformed", res.Malformed),
		zap.Int("rows", len(res.Rows)),
	)
	return r.finish(res, "ok")
}

func (r *Runner) narrate(ctx context.Context, game model.Game, logger *zap.Logger) string {
	provider := r.cfg.Provider.String()
	start := time.Now()
	text := r.narrator.Generate(ctx, game, r.cfg.Provider)
	r.metrics.NarrativeTime.WithLabelValues(provider).Observe(time.Since(start).Seconds())

	status := "ok"
	if narrative.IsFailure(text) {
		status = "error"
	}
	r.metrics.Narratives.WithLabelValues(provider, status).Inc()
	logger.Debug("narrative done", zap.String("game_id", game.CompositeID()), zap.String("status", status))
	return text
}

func (r *Runner) persist(ctx context.Context, game model.Game, text string, logger *zap.Logger) {
	if r.sink == nil {
		return
	}
	written, err := r.sink.Put(ctx, model.NewAnalysisRecord(game, text, r.cfg.Location))
	switch {
	case err != nil:
		r.metrics.RecordsPersisted.WithLabelValues("error").Inc()
		logger.Warn("persist analysis failed", zap.String("game_id", game.CompositeID()), zap.Error(err))
	case written:
		r.metrics.RecordsPersisted.WithLabelValues("written").Inc()
	default:
		r.metrics.RecordsPersisted.WithLabelValues("duplicate").Inc()
		logger.Info("game already exists in log", zap.String("game_id", game.CompositeID()))
	}
}

func (r *Runner) finish(res Result, status string) Result {
	r.metrics.Analyses.WithLabelValues(status).Inc()
	return res
}
