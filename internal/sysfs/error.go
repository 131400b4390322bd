package sysfs

import (
	"errors"
	"io/fs"
	"os"
	"syscall"
)

// UnwrapOSError returns a syscall.Errno or zero if the input is nil.
//
// Errors produced by the os package wrap the underlying errno in path or
// syscall error types. Those wrappers are peeled off before translation so
// that well-known errnos pass through unchanged. Anything unrecognizable
// maps to syscall.EIO, the closest catch-all for a failed I/O operation.
func UnwrapOSError(err error) syscall.Errno {
	if err == nil {
		return 0
	}
	err = underlyingError(err)
	if se, ok := err.(syscall.Errno); ok {
		return se
	}
	// Below are all the fs.ErrXxx in fs.go.
	switch {
	case errors.Is(err, fs.ErrInvalid):
		return syscall.EINVAL
	case errors.Is(err, fs.ErrPermission):
		return syscall.EPERM
	case errors.Is(err, fs.ErrExist):
		return syscall.EEXIST
	case errors.Is(err, fs.ErrNotExist):
		return syscall.ENOENT
	case errors.Is(err, fs.ErrClosed):
		return syscall.EBADF
	}
	return syscall.EIO
}

// underlyingError returns the underlying error if a well-known OS error type.
//
// This impl is basically the same as os.underlyingError in os/error.go
func underlyingError(err error) error {
	switch err := err.(type) {
	case *os.PathError:
		return err.Err
	case *os.LinkError:
		return err.Err
	case *os.SyscallError:
		return err.Err
	}
	return err
}
