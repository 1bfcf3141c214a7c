package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"moveAnalyzer/internal/archive"
	"moveAnalyzer/internal/config"
	"moveAnalyzer/internal/narrative"
	"moveAnalyzer/internal/storage"
)

func newArchiveClient(cfg config.Config) *archive.Client {
	return archive.NewClient(archive.Config{
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.HTTPTimeout,
	})
}

// newBackends builds a backend for every provider with an API key.
func newBackends(ctx context.Context, cfg config.Config, selected narrative.Provider, logger *zap.Logger) (map[narrative.Provider]narrative.Backend, error) {
	backends := make(map[narrative.Provider]narrative.Backend)

	if cfg.OpenAIAPIKey != "" {
		b, err := narrative.NewOpenAIBackend(narrative.OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
		})
		if err != nil {
			return nil, err
		}
		backends[narrative.OpenAI] = b
	}

	if cfg.GeminiAPIKey != "" {
		b, err := narrative.NewGeminiBackend(ctx, narrative.GeminiConfig{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
		})
		if err != nil {
			return nil, err
		}
		backends[narrative.Gemini] = b
	}

	if _, ok := backends[selected]; !ok {
		logger.Warn("no api key configured for provider, narratives will fail", zap.String("provider", selected.String()))
	}

	providers := make([]string, 0, len(backends))
	for p := range backends {
		providers = append(providers, p.String())
	}
	logger.Debug("narrative backends ready", zap.Strings("providers", providers))
	return backends, nil
}

func openSink(ctx context.Context, cfg config.Config) (storage.Sink, error) {
	sink, err := storage.Open(ctx, storage.Options{
		Kind:       cfg.Sink,
		CSVPath:    cfg.CSVPath,
		SQLitePath: cfg.SQLitePath,
		PGDSN:      cfg.PGDSN,
	})
	if err != nil {
		return nil, fmt.Errorf("open sink: %w", err)
	}
	return sink, nil
}

func newErrorLog(cfg config.Config) *storage.FormatErrorLog {
	if cfg.Errors == "" {
		return nil
	}
	return storage.NewFormatErrorLog(cfg.Errors)
}
