package jsonfile

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// withLock runs fn while holding an exclusive advisory lock scoped to the
// store's path. The lock lives on a sidecar file because the data file
// itself is replaced by rename on every write; locking the data file would
// leave later lockers on a different inode. Callers block until the lock
// is available; the kernel releases it if the process dies.
func (s *Store) withLock(fn func() error) error {
	lockPath := s.path + ".lock"

	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("failed to open lock file: %w", err)
	}
	defer f.Close()

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		return fmt.Errorf("failed to lock %s: %w", lockPath, err)
	}
	defer unix.Flock(int(f.Fd()), unix.LOCK_UN)

	return fn()
}
