package sysfs

import (
	"os"
	"syscall"
)

// NewPipeFile wraps an os.File known to reference a pipe or FIFO endpoint.
//
// Reads go through the raw file descriptor rather than os.File, so that
// EAGAIN and EINTR stay visible to the caller instead of being absorbed by
// the Go runtime poller.
func NewPipeFile(f *os.File) File {
	// Capture the descriptor once: os.File.Fd puts the file back into
	// blocking mode on each call, which would silently undo SetNonblock.
	return &pipeFile{file: f, fd: f.Fd()}
}

type pipeFile struct {
	UnimplementedFile

	file *os.File
	fd   uintptr

	// nonblock is true when non-blocking mode was enabled via SetNonblock.
	nonblock bool
}

// Fd implements File.Fd
func (f *pipeFile) Fd() uintptr {
	return f.fd
}

// IsNonblock implements File.IsNonblock
func (f *pipeFile) IsNonblock() bool {
	return f.nonblock
}

// SetNonblock implements File.SetNonblock
func (f *pipeFile) SetNonblock(enable bool) syscall.Errno {
	if errno := setNonblock(f.fd, enable); errno != 0 {
		return errno
	}
	f.nonblock = enable
	return 0
}

// Read implements File.Read
func (f *pipeFile) Read(buf []byte) (int, syscall.Errno) {
	return readFd(f.fd, buf)
}

// Close implements File.Close
func (f *pipeFile) Close() syscall.Errno {
	return UnwrapOSError(f.file.Close())
}
