// Package lock guards a media directory against concurrent runs.
package lock

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

var ErrLocked = errors.New("another mux run holds the directory lock")

// DirLock is an advisory, non-blocking lock on one directory. The lock file
// lives in the OS temp dir so the media directory only ever holds media.
type DirLock struct {
	path string
	lock *flock.Flock
}

// New prepares a lock for dir without acquiring it.
func New(dir string) *DirLock {
	path := PathFor(dir)
	return &DirLock{path: path, lock: flock.New(path)}
}

// PathFor returns the lock file used for dir.
func PathFor(dir string) string {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	sum := sha256.Sum256([]byte(dir))
	return filepath.Join(os.TempDir(), "muxflow-"+hex.EncodeToString(sum[:8])+".lock")
}

// Path returns the lock file location.
func (l *DirLock) Path() string {
	return l.path
}

// Acquire takes the lock or returns ErrLocked if another process holds it.
func (l *DirLock) Acquire() error {
	ok, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrLocked, l.path)
	}
	return nil
}

// Release unlocks. The lock file itself is left in place.
func (l *DirLock) Release() error {
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	return nil
}
