package cas_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/histo/internal/adapters/cas"
	"go.trai.ch/histo/internal/core/domain"
	"go.trai.ch/histo/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLocker(t *testing.T) (*cas.Locker, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return cas.NewLocker(log), log
}

func TestLocker_AcquireRelease(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "input-8.dat")
	locker, _ := newLocker(t)

	unlock, err := locker.Lock(context.Background(), target, time.Second)
	require.NoError(t, err)
	_, err = os.Stat(target + domain.LockExt)
	require.NoError(t, err, "lock file should exist while held")

	require.NoError(t, unlock())
	_, err = os.Stat(target + domain.LockExt)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, unlock(), "double release is harmless")
}

func TestLocker_WaitsForRelease(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "sol-8-2.dat")
	locker, _ := newLocker(t)

	unlock, err := locker.Lock(context.Background(), target, 5*time.Second)
	require.NoError(t, err)

	var released atomic.Bool
	go func() {
		time.Sleep(150 * time.Millisecond)
		released.Store(true)
		_ = unlock()
	}()

	second, err := locker.Lock(context.Background(), target, 5*time.Second)
	require.NoError(t, err)
	assert.True(t, released.Load(), "second holder must wait for the first")
	require.NoError(t, second())
}

func TestLocker_Timeout(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "input-1.dat")
	locker, _ := newLocker(t)

	unlock, err := locker.Lock(context.Background(), target, time.Minute)
	require.NoError(t, err)
	defer func() { _ = unlock() }()

	// The lock is fresh, so a short wait expires before it counts as stale.
	require.NoError(t, os.Chtimes(target+domain.LockExt, time.Now().Add(time.Hour), time.Now().Add(time.Hour)))

	_, err = locker.Lock(context.Background(), target, 200*time.Millisecond)
	require.ErrorIs(t, err, domain.ErrLockTimeout)
	assert.Equal(t, domain.KindEnvironment, domain.KindOf(err))
}

func TestLocker_BreaksStaleLock(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "input-2.dat")
	locker, log := newLocker(t)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	lockPath := target + domain.LockExt
	require.NoError(t, os.WriteFile(lockPath, []byte("999999\n"), 0o600))
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(lockPath, old, old))

	unlock, err := locker.Lock(context.Background(), target, time.Second)
	require.NoError(t, err)
	require.NoError(t, unlock())
}

func TestLocker_ReleaseKeepsTakenOverLock(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "sol-9-3.dat")
	lockPath := target + domain.LockExt
	slow, _ := newLocker(t)
	thief, log := newLocker(t)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	unlock, err := slow.Lock(context.Background(), target, time.Second)
	require.NoError(t, err)

	// The first holder looks abandoned, so a waiter breaks the lock and takes it.
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(lockPath, old, old))
	stolen, err := thief.Lock(context.Background(), target, time.Second)
	require.NoError(t, err)

	err = unlock()
	require.ErrorIs(t, err, domain.ErrLockLost)
	assert.FileExists(t, lockPath, "the new holder's lock survives")

	require.NoError(t, stolen())
	assert.NoFileExists(t, lockPath)
}

func TestLocker_ContextCancel(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "input-3.dat")
	locker, _ := newLocker(t)

	unlock, err := locker.Lock(context.Background(), target, time.Minute)
	require.NoError(t, err)
	defer func() { _ = unlock() }()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err = locker.Lock(ctx, target, time.Minute)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
