package catalog

import (
	"fmt"

	"github.com/gofrs/flock"
)

// Lock is an advisory file lock beside the catalog database.
// Sync holds it exclusively; readers share it.
type Lock struct {
	fl *flock.Flock
}

// LockPath returns the lock file used for the database at dbPath.
func LockPath(dbPath string) string {
	return dbPath + ".lock"
}

// AcquireLock takes the catalog lock without blocking. Exclusive locks are used
// by writers. Returns ErrLocked if a conflicting lock is held elsewhere.
func AcquireLock(dbPath string, exclusive bool) (*Lock, error) {
	fl := flock.New(LockPath(dbPath))

	var ok bool
	var err error
	if exclusive {
		ok, err = fl.TryLock()
	} else {
		ok, err = fl.TryRLock()
	}
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}
	return &Lock{fl: fl}, nil
}

// Release drops the lock.
func (l *Lock) Release() error {
	return l.fl.Unlock()
}
