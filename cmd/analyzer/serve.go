package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"moveAnalyzer/internal/config"
	"moveAnalyzer/internal/metrics"
	"moveAnalyzer/internal/server"
)

func runServe(cmd *cobra.Command, _ []string) error {
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

	m := metrics.NewPipeline()
	runner, sink, err := buildRunner(ctx, cfg, m, logger)
	if err != nil {
		return err
	}
	if sink != nil {
		defer sink.Close()
	}

	srv := server.New(server.Config{Addr: cfg.Listen}, runner, m, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving", zap.String("listen", cfg.Listen), zap.String("provider", cfg.Provider))
		errCh <- srv.Serve()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
