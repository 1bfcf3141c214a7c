// Package narrative asks a language model for a short written summary of a game.
package narrative

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"moveAnalyzer/internal/model"
)

// ErrorPrefix starts every narrative that reports a failure instead of an analysis.
const ErrorPrefix = "An error occurred: "

// Backend sends a prompt to one model provider and returns its text.
type Backend interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Generator dispatches narrative requests to the backend of a provider.
type Generator struct {
	backends map[Provider]Backend
	logger   *zap.Logger
}

// NewGenerator builds a Generator over the configured backends.
func NewGenerator(backends map[Provider]Backend, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	copied := make(map[Provider]Backend, len(backends))
	for p, b := range backends {
		if b != nil {
			copied[p] = b
		}
	}
	return &Generator{backends: copied, logger: logger}
}

// Generate returns the narrative for game. Failures never surface as errors:
// the returned text starts with ErrorPrefix instead.
func (g *Generator) Generate(ctx context.Context, game model.Game, provider Provider) string {
	backend, ok := g.backends[provider]
	if !ok {
		return failure(fmt.Errorf("provider %s is not configured", provider))
	}

	prompt, err := BuildPrompt(game)
	if err != nil {
		return failure(fmt.Errorf("build prompt: %w", err))
	}

	text, err := backend.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		g.logger.Warn("narrative failed",
			zap.String("provider", provider.String()),
			zap.String("game_id", game.CompositeID()),
			zap.Error(err),
		)
		return failure(err)
	}
	return text
}

// IsFailure reports whether text is a failure message rather than an analysis.
func IsFailure(text string) bool {
	return strings.HasPrefix(text, ErrorPrefix)
}

func failure(err error) string {
	return ErrorPrefix + err.Error()
}
