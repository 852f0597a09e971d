// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"time"

	"go.trai.ch/histo/internal/core/domain"
)

// FixtureStore persists datasets and reference histograms and reads solution output.
//
// Load methods return nil, nil on a miss. A cached file of the wrong size counts as a miss.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type FixtureStore interface {
	// DatasetPath returns the cache path of the dataset of n values.
	DatasetPath(dir string, n int32) string
	// ReferencePath returns the cache path of the reference histogram for (n, b).
	ReferencePath(dir string, n, b int32) string

	LoadDataset(dir string, n int32) (domain.Dataset, error)
	SaveDataset(dir string, n int32, data domain.Dataset) error
	LoadReference(dir string, n, b int32) (domain.Histogram, error)
	SaveReference(dir string, n, b int32, hist domain.Histogram) error

	// ReadCandidate reads exactly b values from a solution output file.
	// A file of any other size yields a *domain.TruncatedError.
	ReadCandidate(path string, b int32) (domain.Histogram, error)
	// ReadDataset reads exactly n values from an arbitrary dataset file.
	ReadDataset(path string, n int32) (domain.Dataset, error)
	// WriteHistogram atomically writes hist to an arbitrary path.
	WriteHistogram(path string, hist domain.Histogram) error

	// Remove deletes a harness file. A missing file is not an error.
	Remove(path string) error
	// List returns the harness-owned files in dir.
	List(dir string) ([]domain.CacheEntry, error)
}

// FixtureLocker serializes fixture builders across processes.
type FixtureLocker interface {
	// Lock blocks until the caller is the only builder of path or wait elapses.
	// The returned function releases the lock.
	Lock(ctx context.Context, path string, wait time.Duration) (func() error, error)
}

// Hasher fingerprints datasets.
type Hasher interface {
	HashDataset(data domain.Dataset) string
}
