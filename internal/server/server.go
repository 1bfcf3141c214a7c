// Package server serves the analysis form, its results and the pipeline
// metrics over HTTP.
package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"moveAnalyzer/internal/analysis"
	"moveAnalyzer/internal/metrics"
	"moveAnalyzer/internal/report"
)

// Analyzer runs one analysis for a username and filter selector.
type Analyzer interface {
	Analyze(ctx context.Context, username, selector string) analysis.Result
}

// Config holds the HTTP listener settings.
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type Server struct {
	analyzer Analyzer
	logger   *zap.Logger
	server   *http.Server
}

func New(cfg Config, analyzer Analyzer, m *metrics.Pipeline, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 10 * time.Second
	}
	// Narratives are generated inside the request, one model call per game.
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 10 * time.Minute
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = 60 * time.Second
	}

	s := &Server{analyzer: analyzer, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/analyze", s.handleAnalyze)
	if m != nil {
		mux.Handle("/metrics", m.Handler())
	}
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s
}

// Handler exposes the routes without a listener.
func (s *Server) Handler() http.Handler { return s.server.Handler }

func (s *Server) Serve() error                       { return s.server.ListenAndServe() }
func (s *Server) Shutdown(ctx context.Context) error { return s.server.Shutdown(ctx) }

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.render(w, pageData{Filter: report.LabelAll, Choices: report.FilterChoices})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	filter := r.FormValue("filter")
	if filter == "" {
		filter = report.LabelAll
	}

	res := s.analyzer.Analyze(r.Context(), username, filter)

	data := pageData{
		Username: username,
		Filter:   filter,
		Choices:  report.FilterChoices,
		Status:   res.Status,
	}
	for _, row := range res.Rows {
		data.Rows = append(data.Rows, pageRow{
			Date:      row.Date,
			White:     row.White,
			Black:     row.Black,
			Result:    row.Result,
			Narrative: narrativeHTML(row.Narrative),
		})
	}
	s.render(w, data)
}

func (s *Server) render(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		s.logger.Warn("render page failed", zap.Error(err))
	}
}
