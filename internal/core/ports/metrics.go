package ports

import "go.trai.ch/histo/internal/core/domain"

//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks

// Metrics records run outcomes for external scraping.
type Metrics interface {
	// Observe records the outcome of a run.
	Observe(result *domain.Result)
	// WriteTextfile writes the recorded metrics in Prometheus text format.
	WriteTextfile(path string) error
}
