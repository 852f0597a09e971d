package harness_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/histo/internal/core/domain"
	"go.trai.ch/histo/internal/core/ports/mocks"
	"go.trai.ch/histo/internal/engine/harness"
	"go.uber.org/mock/gomock"
)

type mockedHarness struct {
	store      *mocks.MockFixtureStore
	locker     *mocks.MockFixtureLocker
	hasher     *mocks.MockHasher
	randomizer *mocks.MockRandomizer
	logger     *mocks.MockLogger
	harness    *harness.Harness
}

func setupMocked(t *testing.T) (*gomock.Controller, *mockedHarness) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &mockedHarness{
		store:      mocks.NewMockFixtureStore(ctrl),
		locker:     mocks.NewMockFixtureLocker(ctrl),
		hasher:     mocks.NewMockHasher(ctrl),
		randomizer: mocks.NewMockRandomizer(ctrl),
		logger:     mocks.NewMockLogger(ctrl),
	}
	m.harness = harness.New(m.store, m.locker, m.hasher, m.randomizer, m.logger)

	m.store.EXPECT().DatasetPath("/cache", gomock.Any()).Return("/cache/input.dat").AnyTimes()
	m.store.EXPECT().ReferencePath("/cache", gomock.Any(), gomock.Any()).Return("/cache/sol.dat").AnyTimes()
	m.hasher.EXPECT().HashDataset(gomock.Any()).Return("xxh64:0000000000000000").AnyTimes()
	return ctrl, m
}

func mockedOptions(ctrl *gomock.Controller, solution *mocks.MockSolution) harness.RunOptions {
	progress := mocks.NewMockProgress(ctrl)
	progress.EXPECT().Step(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	progress.EXPECT().Detail(gomock.Any()).AnyTimes()
	progress.EXPECT().Passed(gomock.Any()).AnyTimes()

	return harness.RunOptions{
		CacheDir: "/cache",
		LockWait: 5 * time.Second,
		Solution: solution,
		Tracer:   noopTracer(ctrl),
		Progress: progress,
	}
}

func TestFixtures_RecheckAfterLock(t *testing.T) {
	ctrl, m := setupMocked(t)
	solution := mocks.NewMockSolution(ctrl)
	data := domain.Dataset{0, 1, 1, 2}
	ref := domain.Histogram{1, 2, 1}

	released := 0
	release := func() error {
		released++
		return nil
	}

	gomock.InOrder(
		m.store.EXPECT().LoadDataset("/cache", int32(4)).Return(nil, nil),
		m.locker.EXPECT().Lock(gomock.Any(), "/cache/input.dat", 5*time.Second).Return(release, nil),
		// Another process finished building while we waited.
		m.store.EXPECT().LoadDataset("/cache", int32(4)).Return(data, nil),
	)
	gomock.InOrder(
		m.store.EXPECT().LoadReference("/cache", int32(4), int32(3)).Return(nil, nil),
		m.locker.EXPECT().Lock(gomock.Any(), "/cache/sol.dat", 5*time.Second).Return(release, nil),
		m.store.EXPECT().LoadReference("/cache", int32(4), int32(3)).Return(ref, nil),
	)
	solution.EXPECT().Compute(gomock.Any(), "/cache/input.dat", int32(4), int32(3)).Return("/out.dat", nil)
	m.store.EXPECT().ReadCandidate("/out.dat", int32(3)).Return(ref, nil)
	m.store.EXPECT().Remove("/out.dat").Return(nil)

	result, err := m.harness.Run(context.Background(), domain.Params{N: 4, B: 3}, mockedOptions(ctrl, solution))
	require.NoError(t, err)

	assert.True(t, result.Cache.Dataset)
	assert.True(t, result.Cache.Reference)
	assert.Equal(t, 2, released)
}

func TestFixtures_GeneratesFromSource(t *testing.T) {
	ctrl, m := setupMocked(t)
	solution := mocks.NewMockSolution(ctrl)
	seed := uint64(9)

	src := mocks.NewMockRandomSource(ctrl)
	gomock.InOrder(
		src.EXPECT().Int32N(int32(2)).Return(int32(1)),
		src.EXPECT().Int32N(int32(2)).Return(int32(0)),
		src.EXPECT().Int32N(int32(2)).Return(int32(1)),
	)
	src.EXPECT().Seed().Return(seed)

	m.store.EXPECT().LoadDataset(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	// A freshly generated dataset never trusts a cached reference: no LoadReference call.
	m.locker.EXPECT().Lock(gomock.Any(), gomock.Any(), gomock.Any()).Return(func() error { return nil }, nil).Times(2)
	m.randomizer.EXPECT().NewSource(&seed).Return(src, nil)
	m.store.EXPECT().SaveDataset("/cache", int32(3), domain.Dataset{1, 0, 1}).Return(nil)
	m.store.EXPECT().SaveReference("/cache", int32(3), int32(2), domain.Histogram{1, 2}).Return(nil)
	solution.EXPECT().Compute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("/out.dat", nil)
	m.store.EXPECT().ReadCandidate("/out.dat", int32(2)).Return(domain.Histogram{1, 2}, nil)
	m.store.EXPECT().Remove("/out.dat").Return(nil)

	result, err := m.harness.Run(context.Background(), domain.Params{N: 3, B: 2, Seed: &seed}, mockedOptions(ctrl, solution))
	require.NoError(t, err)
	require.NotNil(t, result.GeneratedSeed)
	assert.Equal(t, seed, *result.GeneratedSeed)
}

func TestFixtures_Errors(t *testing.T) {
	writeErr := errors.New("disk full")

	tests := []struct {
		name    string
		prepare func(m *mockedHarness)
		wantErr error
		wantAt  domain.Stage
	}{
		{
			name: "dataset read",
			prepare: func(m *mockedHarness) {
				m.store.EXPECT().LoadDataset(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDatasetReadFailed)
			},
			wantErr: domain.ErrDatasetReadFailed,
			wantAt:  domain.StageInit,
		},
		{
			name: "lock timeout",
			prepare: func(m *mockedHarness) {
				m.store.EXPECT().LoadDataset(gomock.Any(), gomock.Any()).Return(nil, nil)
				m.locker.EXPECT().Lock(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, domain.ErrLockTimeout)
			},
			wantErr: domain.ErrLockTimeout,
			wantAt:  domain.StageInit,
		},
		{
			name: "reference write",
			prepare: func(m *mockedHarness) {
				m.store.EXPECT().LoadDataset(gomock.Any(), gomock.Any()).Return(domain.Dataset{0}, nil)
				m.store.EXPECT().LoadReference(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
				m.locker.EXPECT().Lock(gomock.Any(), gomock.Any(), gomock.Any()).Return(func() error { return nil }, nil)
				m.store.EXPECT().SaveReference(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.Wrap(domain.ErrReferenceWriteFailed, writeErr))
			},
			wantErr: writeErr,
			wantAt:  domain.StageInputReady,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, m := setupMocked(t)
			tt.prepare(m)

			result, err := m.harness.Run(context.Background(), domain.Params{N: 1, B: 1},
				mockedOptions(ctrl, mocks.NewMockSolution(ctrl)))
			require.ErrorIs(t, err, tt.wantErr)
			require.NotNil(t, result.FailedAfter)
			assert.Equal(t, tt.wantAt, *result.FailedAfter)
		})
	}
}

func TestFixtures_ReleaseFailureIsLogged(t *testing.T) {
	ctrl, m := setupMocked(t)
	solution := mocks.NewMockSolution(ctrl)

	m.store.EXPECT().LoadDataset(gomock.Any(), gomock.Any()).Return(domain.Dataset{0}, nil)
	m.store.EXPECT().LoadReference(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	m.locker.EXPECT().Lock(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(func() error { return errors.New("gone") }, nil)
	m.store.EXPECT().SaveReference(gomock.Any(), gomock.Any(), gomock.Any(), domain.Histogram{1}).Return(nil)
	m.logger.EXPECT().Warn("failed to release lock for /cache/sol.dat: gone")
	solution.EXPECT().Compute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("/out.dat", nil)
	m.store.EXPECT().ReadCandidate("/out.dat", int32(1)).Return(domain.Histogram{1}, nil)
	m.store.EXPECT().Remove("/out.dat").Return(nil)

	_, err := m.harness.Run(context.Background(), domain.Params{N: 1, B: 1}, mockedOptions(ctrl, solution))
	require.NoError(t, err)
}
