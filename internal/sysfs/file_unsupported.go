//go:build !unix

package sysfs

import "syscall"

// readFd returns ENOSYS on unsupported platforms.
func readFd(fd uintptr, buf []byte) (int, syscall.Errno) {
	return 0, syscall.ENOSYS
}
