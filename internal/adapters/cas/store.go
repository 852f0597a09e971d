// Package cas implements the on-disk fixture cache shared across harness runs.
package cas

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/histo/internal/core/domain"
	"go.trai.ch/histo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FixtureStore = (*Store)(nil)

// Store implements ports.FixtureStore with one raw binary file per fixture.
type Store struct {
	logger ports.Logger
}

// NewStore creates a Store that reports discarded fixtures through logger.
func NewStore(logger ports.Logger) *Store {
	return &Store{logger: logger}
}

// DatasetPath returns the cache path of the dataset of n values.
func (s *Store) DatasetPath(dir string, n int32) string {
	return filepath.Join(dir, domain.DatasetFileName(n))
}

// ReferencePath returns the cache path of the reference histogram for (n, b).
func (s *Store) ReferencePath(dir string, n, b int32) string {
	return filepath.Join(dir, domain.ReferenceFileName(n, b))
}

// LoadDataset reads the cached dataset of n values.
func (s *Store) LoadDataset(dir string, n int32) (domain.Dataset, error) {
	path := s.DatasetPath(dir, n)
	values, err := s.loadFixture(path, n)
	if err != nil {
		return nil, zerr.With(domain.Wrap(domain.ErrDatasetReadFailed, err), "path", path)
	}
	if values == nil {
		return nil, nil
	}
	return domain.Dataset(values), nil
}

// SaveDataset atomically persists data as the dataset of n values.
func (s *Store) SaveDataset(dir string, n int32, data domain.Dataset) error {
	path := s.DatasetPath(dir, n)
	if err := s.saveFixture(path, data); err != nil {
		return zerr.With(domain.Wrap(domain.ErrDatasetWriteFailed, err), "path", path)
	}
	return nil
}

// LoadReference reads the cached reference histogram for (n, b).
func (s *Store) LoadReference(dir string, n, b int32) (domain.Histogram, error) {
	path := s.ReferencePath(dir, n, b)
	values, err := s.loadFixture(path, b)
	if err != nil {
		return nil, zerr.With(domain.Wrap(domain.ErrReferenceReadFailed, err), "path", path)
	}
	if values == nil {
		return nil, nil
	}
	return domain.Histogram(values), nil
}

// SaveReference atomically persists hist as the reference histogram for (n, b).
func (s *Store) SaveReference(dir string, n, b int32, hist domain.Histogram) error {
	path := s.ReferencePath(dir, n, b)
	if err := s.saveFixture(path, hist); err != nil {
		return zerr.With(domain.Wrap(domain.ErrReferenceWriteFailed, err), "path", path)
	}
	return nil
}

// ReadCandidate reads the b bins a solution wrote to path.
// The buffer starts zeroed and the file size is checked before any value is decoded.
func (s *Store) ReadCandidate(path string, b int32) (domain.Histogram, error) {
	values, err := readExact(path, b)
	if err != nil {
		var truncated *domain.TruncatedError
		switch {
		case errors.As(err, &truncated):
			return nil, err
		case errors.Is(err, fs.ErrNotExist):
			return nil, zerr.With(domain.Wrap(domain.ErrCandidateMissing, nil), "path", path)
		default:
			return nil, zerr.With(domain.Wrap(domain.ErrCandidateReadFailed, err), "path", path)
		}
	}
	return domain.Histogram(values), nil
}

// ReadDataset reads the n values of the dataset file at path.
func (s *Store) ReadDataset(path string, n int32) (domain.Dataset, error) {
	values, err := readExact(path, n)
	if err != nil {
		var truncated *domain.TruncatedError
		if errors.As(err, &truncated) {
			return nil, err
		}
		return nil, zerr.With(domain.Wrap(domain.ErrDatasetReadFailed, err), "path", path)
	}
	return domain.Dataset(values), nil
}

// readExact decodes a file that must hold exactly count values.
// A file of any other size, shorter or longer, yields a *domain.TruncatedError.
func readExact(path string, count int32) ([]int32, error) {
	//nolint:gosec // path is chosen by the harness or reported by the solution under test
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if want := domain.ByteSize(count); info.Size() != want {
		return nil, &domain.TruncatedError{Path: path, WantBytes: want, GotBytes: info.Size()}
	}

	values := make([]int32, count)
	if err := readValues(f, values); err != nil {
		return nil, err
	}
	return values, nil
}

// WriteHistogram atomically writes hist to path.
func (s *Store) WriteHistogram(path string, hist domain.Histogram) error {
	if err := s.saveFixture(path, hist); err != nil {
		return zerr.With(domain.Wrap(domain.ErrReferenceWriteFailed, err), "path", path)
	}
	return nil
}

// Remove deletes path. A missing file is not an error.
func (s *Store) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(domain.Wrap(domain.ErrCleanFailed, err), "path", path)
	}
	return nil
}

// List returns the harness-owned files in dir, sorted by path.
func (s *Store) List(dir string) ([]domain.CacheEntry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(domain.Wrap(domain.ErrCacheDirUnavailable, err), "path", dir)
	}

	entries := make([]domain.CacheEntry, 0, len(dirEntries))
	for _, d := range dirEntries {
		if d.IsDir() {
			continue
		}
		kind, ok := domain.ClassifyEntry(d.Name())
		if !ok {
			continue
		}
		info, err := d.Info()
		if err != nil {
			// Removed concurrently.
			continue
		}
		entries = append(entries, domain.CacheEntry{
			Path:    filepath.Join(dir, d.Name()),
			Kind:    kind,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}

// loadFixture returns nil, nil when the file is absent or not exactly count values long.
func (s *Store) loadFixture(path string, count int32) ([]int32, error) {
	values, err := readExact(path, count)
	if err == nil {
		return values, nil
	}

	var truncated *domain.TruncatedError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, nil
	case errors.As(err, &truncated):
		s.logger.Warn(fmt.Sprintf("discarding %s: expected %d bytes, found %d", path, truncated.WantBytes, truncated.GotBytes))
		return nil, nil
	default:
		return nil, err
	}
}

// saveFixture writes to a temporary file in the target directory and renames it into place,
// so readers never observe a partial fixture.
func (s *Store) saveFixture(path string, values []int32) (err error) {
	dir := filepath.Dir(path)
	if mkErr := os.MkdirAll(dir, domain.DirPerm); mkErr != nil {
		return zerr.With(domain.Wrap(domain.ErrCacheDirUnavailable, mkErr), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, domain.TempPattern)
	if err != nil {
		return zerr.With(domain.Wrap(domain.ErrCacheDirUnavailable, err), "path", dir)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = writeValues(tmp, values); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
