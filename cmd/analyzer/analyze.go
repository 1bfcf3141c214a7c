package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"moveAnalyzer/internal/analysis"
	"moveAnalyzer/internal/config"
	"moveAnalyzer/internal/metrics"
	"moveAnalyzer/internal/narrative"
	"moveAnalyzer/internal/report"
	"moveAnalyzer/internal/storage"
)

const narrativeWidth = 80

func runAnalyze(cmd *cobra.Command, args []string) error {
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

	runner, sink, err := buildRunner(ctx, cfg, metrics.NewPipeline(), logger)
	if err != nil {
		return err
	}
	if sink != nil {
		defer sink.Close()
	}

	logger.Info("analyzer start",
		zap.String("username", args[0]),
		zap.String("provider", cfg.Provider),
		zap.String("filter", cfg.Filter),
		zap.Int("limit", cfg.Limit),
		zap.String("sink", cfg.Sink),
	)

	res := runner.Analyze(ctx, args[0], cfg.Filter)
	out := cmd.OutOrStdout()
	if res.Status != "" {
		fmt.Fprintln(out, res.Status)
		return nil
	}
	fmt.Fprintln(out, report.RenderTable(res.Rows, report.ParseMode(cfg.Format), narrativeWidth))
	return nil
}

// buildRunner wires the archive client, narrative backends and sink into a
// Runner. The returned sink is nil when persistence is disabled.
func buildRunner(ctx context.Context, cfg config.Config, m *metrics.Pipeline, logger *zap.Logger) (*analysis.Runner, storage.Sink, error) {
	provider, err := narrative.ParseProvider(cfg.Provider)
	if err != nil {
		return nil, nil, err
	}

	backends, err := newBackends(ctx, cfg, provider, logger)
	if err != nil {
		return nil, nil, err
	}

	sink, err := openSink(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	runner := analysis.NewRunner(analysis.RunConfig{
		Provider: provider,
		Limit:    cfg.Limit,
	}, newArchiveClient(cfg), narrative.NewGenerator(backends, logger), sink, newErrorLog(cfg), m, logger)

	return runner, sink, nil
}
