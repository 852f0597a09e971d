package app_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"go.trai.ch/histo/internal/app"
	"go.trai.ch/histo/internal/core/domain"
)

func mismatchResult() *domain.Result {
	seed := uint64(42)
	result := &domain.Result{
		RunID:         "7d6b1c3e-5f2a-4c1b-9e8d-0a1b2c3d4e5f",
		StartedAt:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Params:        domain.Params{N: 1000, B: 16}.WithSeed(seed),
		GeneratedSeed: &seed,
		ElapsedMS:     17,
		InputPath:     "/cache/input-1000.dat",
		ReferencePath: "/cache/sol-1000-16.dat",
		DatasetDigest: "xxh64:0123456789abcdef",
		Cache:         domain.CacheHits{Dataset: true},
	}
	result.Advance(domain.StageInputReady)
	result.Advance(domain.StageReferenceReady)
	result.Advance(domain.StageSolutionRan)
	result.Fail(&domain.MismatchError{Bin: 3, Expected: 61, Actual: 62})
	return result
}

func TestMarshalReport(t *testing.T) {
	data, err := app.MarshalReport(mismatchResult())
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "report_mismatch", data)
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, app.WriteReport(path, mismatchResult()))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	want, err := app.MarshalReport(mismatchResult())
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestWriteReport_Fails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.json")

	err := app.WriteReport(path, mismatchResult())
	require.ErrorIs(t, err, domain.ErrReportWriteFailed)
	require.Equal(t, domain.KindIO, domain.KindOf(err))
}
