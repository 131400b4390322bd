//go:build !unix

package sysfs

import "syscall"

func setNonblock(fd uintptr, enable bool) syscall.Errno {
	return syscall.ENOSYS
}
