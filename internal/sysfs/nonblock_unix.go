//go:build unix

package sysfs

import (
	"syscall"

	"golang.org/x/sys/unix"
)

func setNonblock(fd uintptr, enable bool) syscall.Errno {
	return UnwrapOSError(unix.SetNonblock(int(fd), enable))
}
