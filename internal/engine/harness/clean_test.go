package harness_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/histo/internal/core/domain"
	"go.trai.ch/histo/internal/engine/harness"
)

func populate(t *testing.T, dir string) {
	t.Helper()
	old := time.Now().Add(-time.Hour)
	for _, file := range []struct {
		name  string
		stale bool
	}{
		{name: "input-10.dat"},
		{name: "sol-10-4.dat"},
		{name: "input-10.dat.lock", stale: true},
		{name: "sol-10-8.dat.lock"},
		{name: ".histo-123.tmp", stale: true},
		{name: ".histo-456.tmp"},
		{name: "notes.txt"},
	} {
		path := filepath.Join(dir, file.name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
		if file.stale {
			require.NoError(t, os.Chtimes(path, old, old))
		}
	}
}

func names(entries []domain.CacheEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, filepath.Base(e.Path))
	}
	return out
}

func TestHarness_Clean(t *testing.T) {
	f := setup(t)
	populate(t, f.dir)

	removed, err := f.harness.Clean(context.Background(), harness.CleanOptions{
		CacheDir: f.dir,
		LockWait: time.Minute,
	})
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]string{"input-10.dat", "sol-10-4.dat", "input-10.dat.lock", ".histo-123.tmp"},
		names(removed),
	)
	for _, kept := range []string{"sol-10-8.dat.lock", ".histo-456.tmp", "notes.txt"} {
		assert.FileExists(t, filepath.Join(f.dir, kept))
	}
	for _, gone := range names(removed) {
		assert.NoFileExists(t, filepath.Join(f.dir, gone))
	}
}

func TestHarness_Clean_DryRun(t *testing.T) {
	f := setup(t)
	populate(t, f.dir)

	removed, err := f.harness.Clean(context.Background(), harness.CleanOptions{
		CacheDir: f.dir,
		LockWait: time.Minute,
		DryRun:   true,
	})
	require.NoError(t, err)

	assert.Len(t, removed, 4)
	for _, e := range removed {
		assert.FileExists(t, e.Path)
	}
}

func TestHarness_Clean_MissingDir(t *testing.T) {
	f := setup(t)

	removed, err := f.harness.Clean(context.Background(), harness.CleanOptions{
		CacheDir: filepath.Join(f.dir, "absent"),
	})
	require.NoError(t, err)
	assert.Empty(t, removed)
}
