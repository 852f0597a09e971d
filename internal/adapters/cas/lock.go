package cas

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"go.trai.ch/histo/internal/core/domain"
	"go.trai.ch/histo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FixtureLocker = (*Locker)(nil)

// pollInterval bounds how long a waiter sleeps when no filesystem event arrives.
const pollInterval = 100 * time.Millisecond

// Locker implements ports.FixtureLocker with O_EXCL lock files next to each fixture.
type Locker struct {
	logger ports.Logger
}

// NewLocker creates a Locker that reports broken locks through logger.
func NewLocker(logger ports.Logger) *Locker {
	return &Locker{logger: logger}
}

// Lock creates path+".lock" exclusively. While another process holds it, Lock waits for the
// lock to disappear, watching the directory with fsnotify and polling as a fallback.
// A lock older than wait is treated as abandoned and removed. The returned release removes
// the lock only while it still carries this holder's token.
func (l *Locker) Lock(ctx context.Context, path string, wait time.Duration) (func() error, error) {
	if wait <= 0 {
		wait = domain.DefaultLockWait
	}
	lockPath := path + domain.LockExt
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(domain.Wrap(domain.ErrCacheDirUnavailable, err), "path", dir)
	}

	var events <-chan fsnotify.Event
	if watcher, err := fsnotify.NewWatcher(); err == nil {
		defer func() { _ = watcher.Close() }()
		if watcher.Add(dir) == nil {
			events = watcher.Events
		}
	}

	deadline := time.NewTimer(wait)
	defer deadline.Stop()
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	token := strconv.Itoa(os.Getpid()) + " " + uuid.NewString()
	for {
		acquired, err := tryLock(lockPath, token)
		if err != nil {
			return nil, zerr.With(domain.Wrap(domain.ErrCacheDirUnavailable, err), "path", lockPath)
		}
		if acquired {
			return func() error { return unlock(lockPath, token) }, nil
		}

		if l.breakStale(lockPath, wait) {
			continue
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline.C:
			return nil, zerr.With(zerr.With(domain.Wrap(domain.ErrLockTimeout, nil), "path", lockPath), "wait", wait.String())
		case _, ok := <-events:
			if !ok {
				events = nil
			}
		case <-ticker.C:
		}
	}
}

func tryLock(lockPath, token string) (bool, error) {
	//nolint:gosec // lockPath is derived from the cache directory and fixture key
	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, err
	}
	_, writeErr := f.WriteString(token + "\n")
	closeErr := f.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		_ = os.Remove(lockPath)
		return false, err
	}
	return true, nil
}

func unlock(lockPath, token string) error {
	//nolint:gosec // lockPath is derived from the cache directory and fixture key
	content, err := os.ReadFile(lockPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return zerr.With(domain.Wrap(domain.ErrCleanFailed, err), "path", lockPath)
	}
	if strings.TrimSpace(string(content)) != token {
		// Broken as stale and now held by another builder.
		return zerr.With(domain.Wrap(domain.ErrLockLost, nil), "path", lockPath)
	}

	if err := os.Remove(lockPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(domain.Wrap(domain.ErrCleanFailed, err), "path", lockPath)
	}
	return nil
}

// breakStale removes lockPath when it is older than maxAge and reports whether it did.
func (l *Locker) breakStale(lockPath string, maxAge time.Duration) bool {
	info, err := os.Stat(lockPath)
	if err != nil {
		// Released between the create attempt and now.
		return errors.Is(err, fs.ErrNotExist)
	}
	age := time.Since(info.ModTime())
	if age < maxAge {
		return false
	}
	if err := os.Remove(lockPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false
	}
	l.logger.Warn(fmt.Sprintf("removed stale lock %s (age %s)", lockPath, age.Round(time.Second)))
	return true
}
