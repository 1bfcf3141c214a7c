package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"moveAnalyzer/internal/config"
	"moveAnalyzer/internal/model"
	"moveAnalyzer/internal/report"
	"moveAnalyzer/internal/storage"
)

func runHistory(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sink, err := openSink(ctx, cfg)
	if err != nil {
		return err
	}
	if sink == nil {
		return fmt.Errorf("history needs a sink, got %q", cfg.Sink)
	}
	defer sink.Close()

	lister, ok := sink.(storage.Lister)
	if !ok {
		return fmt.Errorf("sink %q cannot list analyses", cfg.Sink)
	}

	records, err := lister.List(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved analyses")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), report.RenderTable(historyRows(records, cfg.Limit), report.ParseMode(cfg.Format), narrativeWidth))
	return nil
}

// historyRows keeps the newest limit records. Dates sort lexically.
func historyRows(records []model.AnalysisRecord, limit int) []report.Row {
	rows := make([]report.Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, report.Row{
			GameID:    rec.GameID,
			Date:      rec.Date,
			White:     fmt.Sprintf("%s (%s)", rec.WhitePlayer, rec.WhiteRating),
			Black:     fmt.Sprintf("%s (%s)", rec.BlackPlayer, rec.BlackRating),
			Result:    rec.Result,
			Narrative: rec.Analysis,
		})
	}
	report.SortRowsByDate(rows)
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
