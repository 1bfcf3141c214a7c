package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "analyzer",
		Short:        "Chess game archive analyzer",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	analyzeCmd := &cobra.Command{
		Use:   "analyze <username>",
		Short: "Analyze the latest month of a player's games",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}

	addArchiveFlags(analyzeCmd.Flags())
	addNarrativeFlags(analyzeCmd.Flags())
	addSinkFlags(analyzeCmd.Flags())
	analyzeCmd.Flags().String("filter", "All", "game filter (All, Today, Last 7 days, Last 30 days, or an outcome such as win)")
	analyzeCmd.Flags().Int("limit", 0, "analyze only the N most recent matching games, 0 means all")
	analyzeCmd.Flags().String("format", "table", "output format (table, markdown)")
	analyzeCmd.Flags().String("errors", "", "append malformed archive entries to this JSONL file")
	analyzeCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(analyzeCmd)

	playerCmd := &cobra.Command{
		Use:   "player <username>",
		Short: "Show a player's public profile",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlayer,
	}

	addArchiveFlags(playerCmd.Flags())
	playerCmd.Flags().String("format", "table", "output format (table, markdown)")
	playerCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(playerCmd)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis web form and metrics",
		RunE:  runServe,
	}

	addArchiveFlags(serveCmd.Flags())
	addNarrativeFlags(serveCmd.Flags())
	addSinkFlags(serveCmd.Flags())
	serveCmd.Flags().String("listen", ":7860", "HTTP listen address")
	serveCmd.Flags().String("errors", "", "append malformed archive entries to this JSONL file")
	serveCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(serveCmd)

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List saved analyses",
		RunE:  runHistory,
	}

	addSinkFlags(historyCmd.Flags())
	historyCmd.Flags().Int("limit", 0, "show only the N most recent analyses, 0 means all")
	historyCmd.Flags().String("format", "table", "output format (table, markdown)")
	historyCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(historyCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func addArchiveFlags(flags *pflag.FlagSet) {
	flags.String("base-url", "https://api.chess.com/pub", "game archive API base URL")
	flags.String("user-agent", "", "User-Agent header sent to the archive API")
	flags.Duration("http-timeout", 30*time.Second, "HTTP request timeout")
}

func addNarrativeFlags(flags *pflag.FlagSet) {
	flags.String("provider", "openai", "narrative provider (openai, gemini)")
	flags.String("openai-model", "gpt-4o", "OpenAI chat model")
	flags.String("openai-base-url", "", "OpenAI API base URL override")
	flags.String("gemini-model", "gemini-2.0-flash", "Gemini model")
	flags.String("gemini-base-url", "", "Gemini API base URL override")
}

func addSinkFlags(flags *pflag.FlagSet) {
	flags.String("sink", "csv", "analysis log (none, csv, sqlite, postgres)")
	flags.String("csv-path", "./data/chessdb.csv", "CSV analysis log path")
	flags.String("sqlite-path", "./data/chessdb.sqlite", "SQLite analysis log path")
	flags.String("pg-dsn", "", "Postgres DSN")
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
