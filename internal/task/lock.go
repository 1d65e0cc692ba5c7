package task

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const defaultRetryDelay = 50 * time.Millisecond

// LockOptions configures the advisory lock held around each store operation.
type LockOptions struct {
	Enabled    bool
	Timeout    time.Duration
	RetryDelay time.Duration
}

// fileLock provides an exclusive advisory lock next to the tasks file.
type fileLock struct {
	fl *flock.Flock
}

// acquireLock locks path, polling until opts.Timeout elapses.
// A zero timeout makes a single attempt.
func acquireLock(ctx context.Context, path string, opts LockOptions) (*fileLock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: create lock dir: %w", ErrReadWrite, err)
	}
	fl := flock.New(path)

	if opts.Timeout <= 0 {
		ok, err := fl.TryLock()
		if err != nil {
			return nil, fmt.Errorf("%w: lock %s: %w", ErrReadWrite, path, err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrLocked, path)
		}
		return &fileLock{fl: fl}, nil
	}

	retry := opts.RetryDelay
	if retry <= 0 {
		retry = defaultRetryDelay
	}
	lockCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()
	ok, err := fl.TryLockContext(lockCtx, retry)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s (waited %s)", ErrLocked, path, opts.Timeout)
		}
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: lock %s: %w", ErrReadWrite, path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}
	return &fileLock{fl: fl}, nil
}

// Release releases the lock.
func (l *fileLock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
