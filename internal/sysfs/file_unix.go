//go:build unix

package sysfs

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// readFd exposes unix.Read.
func readFd(fd uintptr, buf []byte) (int, syscall.Errno) {
	if len(buf) == 0 {
		return 0, 0 // Short-circuit 0-len reads.
	}
	n, err := unix.Read(int(fd), buf)
	if err != nil {
		return 0, UnwrapOSError(err)
	}
	return n, 0
}
