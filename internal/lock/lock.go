// Package lock provides advisory file locking around config writes.
package lock

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/flock"
)

// ErrAlreadyLocked is returned when another skl process holds the lock.
var ErrAlreadyLocked = errors.New("another skl process is writing the config")

// Flocker abstracts the subset of flock.Flock used for advisory locking.
type Flocker interface {
	TryLock() (bool, error)
	Unlock() error
}

// Lock provides fail-fast advisory locking.
type Lock struct {
	flocker Flocker
}

// New creates a Lock from the given Flocker.
func New(f Flocker) *Lock {
	return &Lock{flocker: f}
}

// NewFromPath creates a Lock backed by a file at the given path.
func NewFromPath(path string) *Lock {
	return New(flock.New(path))
}

// TryLock attempts a non-blocking acquisition. It returns ErrAlreadyLocked
// when the lock is held elsewhere.
func (l *Lock) TryLock(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ok, err := l.flocker.TryLock()
	if err != nil {
		return fmt.Errorf("acquiring lock: %w", err)
	}
	if !ok {
		return ErrAlreadyLocked
	}
	return nil
}

// Unlock releases the advisory lock.
func (l *Lock) Unlock() error {
	if err := l.flocker.Unlock(); err != nil {
		return fmt.Errorf("releasing lock: %w", err)
	}
	return nil
}

// Do runs fn while holding the lock. An error from fn takes precedence over
// an error releasing the lock.
func (l *Lock) Do(ctx context.Context, fn func() error) (err error) {
	if err := l.TryLock(ctx); err != nil {
		return err
	}
	defer func() {
		if uerr := l.Unlock(); uerr != nil && err == nil {
			err = uerr
		}
	}()
	return fn()
}
