// Package metrics records run outcomes in Prometheus text format.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/histo/internal/core/domain"
	"go.trai.ch/histo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Metrics = (*Recorder)(nil)

// Cache artifact label values.
const (
	ArtifactDataset   = "dataset"
	ArtifactReference = "reference"
)

// Recorder implements ports.Metrics with a private Prometheus registry.
type Recorder struct {
	registry         *prometheus.Registry
	solutionDuration *prometheus.GaugeVec
	runPassed        *prometheus.GaugeVec
	cacheHits        *prometheus.CounterVec
	failures         *prometheus.CounterVec
}

// NewRecorder creates a Recorder with all harness metrics registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		solutionDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "histo_solution_duration_milliseconds",
			Help: "Wall-clock time of the solution under test.",
		}, []string{"n", "b"}),
		runPassed: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "histo_run_passed",
			Help: "1 when the candidate histogram matched the reference, 0 otherwise.",
		}, []string{"n", "b"}),
		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "histo_cache_hits_total",
			Help: "Fixtures served from the cache instead of being rebuilt.",
		}, []string{"artifact"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "histo_run_failures_total",
			Help: "Failed runs by failure kind.",
		}, []string{"kind"}),
	}

	r.registry.MustRegister(r.solutionDuration, r.runPassed, r.cacheHits, r.failures)
	return r
}

// Observe records the outcome of a run.
func (r *Recorder) Observe(result *domain.Result) {
	if result == nil {
		return
	}

	n := strconv.FormatInt(int64(result.Params.N), 10)
	b := strconv.FormatInt(int64(result.Params.B), 10)

	if result.Passed() {
		r.runPassed.WithLabelValues(n, b).Set(1)
		r.solutionDuration.WithLabelValues(n, b).Set(float64(result.ElapsedMS))
	} else {
		r.runPassed.WithLabelValues(n, b).Set(0)
		r.failures.WithLabelValues(result.Kind.String()).Inc()
	}

	if result.Cache.Dataset {
		r.cacheHits.WithLabelValues(ArtifactDataset).Inc()
	}
	if result.Cache.Reference {
		r.cacheHits.WithLabelValues(ArtifactReference).Inc()
	}
}

// WriteTextfile writes every recorded metric to path for node_exporter's textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return zerr.With(domain.Wrap(domain.ErrMetricsWriteFailed, err), "path", path)
	}
	return nil
}

// Registry exposes the underlying registry for callers that gather directly.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
