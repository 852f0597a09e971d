package domain

import (
	"fmt"
	"os"
)

const (
	// ConfigFileName is the default name of the optional configuration file.
	ConfigFileName = "histo.yaml"

	// EnvPrefix prefixes every environment override, e.g. HISTO_CACHE_DIR.
	EnvPrefix = "HISTO"

	// DatasetPrefix prefixes cached dataset file names.
	DatasetPrefix = "input-"

	// ReferencePrefix prefixes cached reference histogram file names.
	ReferencePrefix = "sol-"

	// FixtureExt is the extension shared by all cached fixtures.
	FixtureExt = ".dat"

	// LockExt is appended to a fixture name while a builder holds it.
	LockExt = ".lock"

	// TempPattern is the os.CreateTemp pattern used for atomic writes.
	TempPattern = ".histo-*.tmp"

	// ValueSize is the on-disk size of one value in bytes.
	ValueSize = 4

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCacheDir returns the shared temporary directory used when none is configured.
func DefaultCacheDir() string {
	return os.TempDir()
}

// DatasetFileName returns the cache file name for a dataset of n values.
func DatasetFileName(n int32) string {
	return fmt.Sprintf("%s%d%s", DatasetPrefix, n, FixtureExt)
}

// ReferenceFileName returns the cache file name for the reference histogram of (n, b).
func ReferenceFileName(n, b int32) string {
	return fmt.Sprintf("%s%d-%d%s", ReferencePrefix, n, b, FixtureExt)
}

// ByteSize returns the exact file size for count values.
func ByteSize(count int32) int64 {
	return int64(count) * ValueSize
}
