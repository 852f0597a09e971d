package harness

import (
	"context"
	"path/filepath"

	"github.com/google/uuid"
	"go.trai.ch/histo/internal/core/domain"
	"go.trai.ch/histo/internal/core/ports"
	"go.trai.ch/zerr"
)

// ReferenceCommand selects ReferenceSolution in place of an external command.
const ReferenceCommand = "@reference"

var _ ports.Solution = (*ReferenceSolution)(nil)

// ReferenceSolution is an in-process solution backed by the oracle. It reads the input the
// same way an external solution would and writes its histogram to a fresh file in dir.
type ReferenceSolution struct {
	store ports.FixtureStore
	dir   string
}

// NewReferenceSolution creates a ReferenceSolution that writes its output under dir.
func NewReferenceSolution(store ports.FixtureStore, dir string) *ReferenceSolution {
	return &ReferenceSolution{store: store, dir: dir}
}

// IsReferenceCommand reports whether command selects the in-process reference solution.
func IsReferenceCommand(command []string) bool {
	return len(command) == 1 && command[0] == ReferenceCommand
}

// Compute implements ports.Solution.
func (s *ReferenceSolution) Compute(ctx context.Context, inputPath string, n, b int32) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := s.store.ReadDataset(inputPath, n)
	if err != nil {
		return "", zerr.With(domain.Wrap(domain.ErrSolutionFailed, err), "command", ReferenceCommand)
	}
	if i, _ := data.OutOfRange(b); i >= 0 {
		err := zerr.With(domain.Wrap(domain.ErrSolutionFailed, nil), "command", ReferenceCommand)
		return "", zerr.With(err, "index", i)
	}

	path := filepath.Join(s.dir, "out-"+uuid.NewString()+domain.FixtureExt)
	if err := s.store.WriteHistogram(path, Reference(data, b)); err != nil {
		return "", zerr.With(domain.Wrap(domain.ErrSolutionFailed, err), "command", ReferenceCommand)
	}
	return path, nil
}
