// Package sysfs provides the low-level file interface and syscall helpers a
// managed runtime's I/O bridge is built on, notably reading from and skipping
// over pipe descriptors.
//
// The name sysfs follows https://github.com/golang/sys: this package is the
// platform-specific bottom half of the hostio package.
package sysfs

import "syscall"

// File is a minimal bridge to an open pipe or FIFO endpoint, backed by
// syscall functions so raw POSIX read semantics stay observable.
//
// Implementations should embed UnimplementedFile for forward compatability.
// Any unsupported method should return syscall.ENOSYS.
//
// # Errors
//
// All methods that can return an error return a syscall.Errno, which is zero
// on success.
//
// Restricting to syscall.Errno matches host functions bound into a managed
// runtime, which are constrained to well-known error codes translated into
// the runtime's status protocol.
type File interface {
	// Fd returns the host handle of this file.
	//
	// # Notes
	//
	//   - The handle is owned by the caller of the bridge for the duration of
	//     a call: implementations never duplicate or close it here.
	Fd() uintptr

	// IsNonblock returns true if SetNonblock was successfully enabled on this
	// file.
	//
	// # Notes
	//
	//   - This might not match the underlying state of the file descriptor if
	//     it was put into non-blocking mode outside this interface.
	IsNonblock() bool

	// SetNonblock toggles the non-blocking mode (O_NONBLOCK) of this file.
	//
	// # Errors
	//
	// A zero syscall.Errno is success. The below are expected otherwise:
	//   - syscall.ENOSYS: the implementation does not support this function.
	//   - syscall.EBADF: the file was closed.
	//
	// # Notes
	//
	//   - This is like syscall.SetNonblock and `fcntl` with O_NONBLOCK in
	//     POSIX. See https://pubs.opengroup.org/onlinepubs/9699919799/functions/fcntl.html
	SetNonblock(enable bool) syscall.Errno

	// Read attempts to read all bytes in the file into `buf`, and returns the
	// count read even on error.
	//
	// # Errors
	//
	// A zero syscall.Errno is success. The below are expected otherwise:
	//   - syscall.ENOSYS: the implementation does not support this function.
	//   - syscall.EBADF: the file was closed or not readable.
	//   - syscall.EAGAIN: a non-blocking descriptor had no data ready.
	//   - syscall.EINTR: a signal interrupted the read before any data
	//     arrived.
	//
	// # Notes
	//
	//   - This is like `read` in POSIX. See
	//     https://pubs.opengroup.org/onlinepubs/9699919799/functions/read.html
	//   - There is no io.EOF: end of stream is `n` == 0 with a zero errno.
	Read(buf []byte) (n int, errno syscall.Errno)

	// Close closes the underlying file.
	//
	// A zero syscall.Errno is returned if unimplemented or success.
	//
	// # Notes
	//
	//   - This is like syscall.Close and `close` in POSIX. See
	//     https://pubs.opengroup.org/onlinepubs/9699919799/functions/close.html
	Close() syscall.Errno
}

// UnimplementedFile is a File that returns syscall.ENOSYS for all functions.
// This should be embedded to have forward compatible implementations.
type UnimplementedFile struct{}

// Fd implements File.Fd
func (UnimplementedFile) Fd() uintptr { return 0 }

// IsNonblock implements File.IsNonblock
func (UnimplementedFile) IsNonblock() bool { return false }

// SetNonblock implements File.SetNonblock
func (UnimplementedFile) SetNonblock(bool) syscall.Errno { return syscall.ENOSYS }

// Read implements File.Read
func (UnimplementedFile) Read([]byte) (int, syscall.Errno) { return 0, syscall.ENOSYS }

// Close implements File.Close
func (UnimplementedFile) Close() syscall.Errno { return 0 }
