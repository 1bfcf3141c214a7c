// Package metrics holds the Prometheus collectors of the analysis pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "move_analyzer"

// Pipeline counts what each analysis stage did.
type Pipeline struct {
	registry *prometheus.Registry

	Analyses         *prometheus.CounterVec
	FetchErrors      prometheus.Counter
	GamesFetched     prometheus.Counter
	GamesMalformed   prometheus.Counter
	Narratives       *prometheus.CounterVec
	NarrativeTime    *prometheus.HistogramVec
	RecordsPersisted *prometheus.CounterVec
}

// NewPipeline registers the pipeline collectors on a fresh registry.
func NewPipeline() *Pipeline {
	p := &Pipeline{registry: prometheus.NewRegistry()}

	p.Analyses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analyses_total",
		Help:      "Analysis requests by final status",
	}, []string{"status"})
	p.FetchErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "archive_fetch_errors_total",
		Help:      "Failed requests to the game archive API",
	})
	p.GamesFetched = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "games_fetched_total",
		Help:      "Archive entries received",
	})
	p.GamesMalformed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "games_malformed_total",
		Help:      "Archive entries dropped because they could not be normalized",
	})
	p.Narratives = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "narratives_total",
		Help:      "Narrative requests by provider and status",
	}, []string{"provider", "status"})
	p.NarrativeTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "narrative_duration_seconds",
		Help:      "Time spent waiting for a narrative",
		Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 80},
	}, []string{"provider"})
	p.RecordsPersisted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_persisted_total",
		Help:      "Analysis log writes by status (written, duplicate, error)",
	}, []string{"status"})

	p.registry.MustRegister(
		p.Analyses, p.FetchErrors, p.GamesFetched, p.GamesMalformed,
		p.Narratives, p.NarrativeTime, p.RecordsPersisted,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return p
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Pipeline) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
