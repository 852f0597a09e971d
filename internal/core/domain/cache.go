package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// EntryKind identifies what a file in the cache directory holds.
type EntryKind string

const (
	// EntryDataset is a cached input dataset.
	EntryDataset EntryKind = "dataset"
	// EntryReference is a cached reference histogram.
	EntryReference EntryKind = "reference"
	// EntryLock is a builder lock file.
	EntryLock EntryKind = "lock"
	// EntryTemp is a partially written fixture.
	EntryTemp EntryKind = "temp"
)

// CacheEntry describes one harness-owned file in the cache directory.
type CacheEntry struct {
	Path    string
	Kind    EntryKind
	Size    int64
	ModTime time.Time
}

// ClassifyEntry reports the kind of a cache directory file by name.
// Files not owned by the harness return false.
func ClassifyEntry(name string) (EntryKind, bool) {
	switch {
	case strings.HasSuffix(name, FixtureExt+LockExt):
		return EntryLock, true
	case matches(TempPattern, name):
		return EntryTemp, true
	case strings.HasPrefix(name, DatasetPrefix) && strings.HasSuffix(name, FixtureExt):
		return EntryDataset, true
	case strings.HasPrefix(name, ReferencePrefix) && strings.HasSuffix(name, FixtureExt):
		return EntryReference, true
	default:
		return "", false
	}
}

func matches(pattern, name string) bool {
	ok, err := filepath.Match(pattern, name)
	return err == nil && ok
}
