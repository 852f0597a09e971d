package harness

import (
	"fmt"

	"go.trai.ch/histo/internal/core/domain"
)

// Compare checks cand against ref bin by bin, starting at bin 0.
// It returns a *domain.MismatchError for the first differing bin.
func Compare(ref, cand domain.Histogram) error {
	for i, want := range ref {
		var got int32
		if i < len(cand) {
			got = cand[i]
		}
		if got != want {
			return &domain.MismatchError{Bin: i, Expected: want, Actual: got}
		}
	}
	return nil
}

// verify reads the candidate at path and compares it with reference.
// A verified candidate is removed unless keep is set.
func (h *Harness) verify(reference domain.Histogram, path string, b int32, keep bool) error {
	cand, err := h.store.ReadCandidate(path, b)
	if err != nil {
		return err
	}
	if err := Compare(reference, cand); err != nil {
		return err
	}
	if keep {
		return nil
	}
	if err := h.store.Remove(path); err != nil {
		h.logger.Warn(fmt.Sprintf("failed to remove solution output %s: %v", path, err))
	}
	return nil
}
