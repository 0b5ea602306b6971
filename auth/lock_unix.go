//go:build linux || darwin

package auth

import (
	"os"

	"golang.org/x/sys/unix"
)

// lock takes an advisory lock on the token file for the duration of a read or write.
func lock(f *os.File, exclusive bool) (func(), error) {
	how := unix.LOCK_SH
	if exclusive {
		how = unix.LOCK_EX
	}

	fd := int(f.Fd())
	if err := unix.Flock(fd, how); err != nil {
		return nil, err
	}

	return func() {
		unix.Flock(fd, unix.LOCK_UN)
	}, nil
}
