// Package config loads analyzer settings from flags, environment and an
// optional config file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds configuration values loaded from flags, env, or config file.
type Config struct {
	BaseURL     string
	UserAgent   string
	HTTPTimeout time.Duration

	Provider      string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	Sink       string
	CSVPath    string
	SQLitePath string
	PGDSN      string
	Errors     string

	Filter string
	Limit  int
	Format string
	Listen string

	LogLevel string
}

// Load merges config file, environment variables, and flags into Config.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ANALYZER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// Provider keys also come from the variables the vendor SDKs use.
	if err := v.BindEnv("openai-api-key", "ANALYZER_OPENAI_API_KEY", "OPENAI_API_KEY"); err != nil {
		return Config{}, fmt.Errorf("bind env: %w", err)
	}
	if err := v.BindEnv("gemini-api-key", "ANALYZER_GEMINI_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY"); err != nil {
		return Config{}, fmt.Errorf("bind env: %w", err)
	}

	v.SetDefault("base-url", "https://api.chess.com/pub")
	v.SetDefault("http-timeout", 30*time.Second)
	v.SetDefault("provider", "openai")
	v.SetDefault("openai-model", "gpt-4o")
	v.SetDefault("gemini-model", "gemini-2.0-flash")
	v.SetDefault("sink", "csv")
	v.SetDefault("csv-path", "./data/chessdb.csv")
	v.SetDefault("sqlite-path", "./data/chessdb.sqlite")
	v.SetDefault("filter", "All")
	v.SetDefault("format", "table")
	v.SetDefault("listen", ":7860")
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		BaseURL:       v.GetString("base-url"),
		UserAgent:     v.GetString("user-agent"),
		HTTPTimeout:   v.GetDuration("http-timeout"),
		Provider:      v.GetString("provider"),
		OpenAIAPIKey:  v.GetString("openai-api-key"),
		OpenAIModel:   v.GetString("openai-model"),
		OpenAIBaseURL: v.GetString("openai-base-url"),
		GeminiAPIKey:  v.GetString("gemini-api-key"),
		GeminiModel:   v.GetString("gemini-model"),
		GeminiBaseURL: v.GetString("gemini-base-url"),
		Sink:          strings.ToLower(strings.TrimSpace(v.GetString("sink"))),
		CSVPath:       v.GetString("csv-path"),
		SQLitePath:    v.GetString("sqlite-path"),
		PGDSN:         v.GetString("pg-dsn"),
		Errors:        v.GetString("errors"),
		Filter:        v.GetString("filter"),
		Limit:         v.GetInt("limit"),
		Format:        v.GetString("format"),
		Listen:        v.GetString("listen"),
		LogLevel:      v.GetString("log-level"),
	}

	if cfg.Limit < 0 {
		return Config{}, fmt.Errorf("limit must not be negative: %d", cfg.Limit)
	}

	return cfg, nil
}
