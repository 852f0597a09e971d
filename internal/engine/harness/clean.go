package harness

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/histo/internal/core/domain"
)

// CleanOptions configures a cache cleaning pass.
type CleanOptions struct {
	CacheDir string
	// LockWait is the age below which lock and temporary files are considered live.
	LockWait time.Duration
	DryRun   bool
}

// Clean removes cached fixtures from the cache directory, along with lock and temporary files
// older than LockWait. It returns the entries removed, or those that would be with DryRun.
func (h *Harness) Clean(ctx context.Context, opts CleanOptions) ([]domain.CacheEntry, error) {
	entries, err := h.store.List(opts.CacheDir)
	if err != nil {
		return nil, err
	}

	wait := opts.LockWait
	if wait <= 0 {
		wait = domain.DefaultLockWait
	}
	now := h.now()

	removed := make([]domain.CacheEntry, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}

		switch entry.Kind {
		case domain.EntryLock, domain.EntryTemp:
			if now.Sub(entry.ModTime) < wait {
				h.logger.Info(fmt.Sprintf("skipping live %s %s", entry.Kind, entry.Path))
				continue
			}
		case domain.EntryDataset, domain.EntryReference:
		}

		if !opts.DryRun {
			if err := h.store.Remove(entry.Path); err != nil {
				return removed, err
			}
		}
		removed = append(removed, entry)
	}
	return removed, nil
}
