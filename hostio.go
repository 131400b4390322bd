// Package hostio bridges a managed runtime's portable I/O layer to host pipe
// descriptors. The runtime resolves its channel or stream objects to
// descriptors registered here, then calls Dispatcher entry points which issue
// raw POSIX reads and translate the outcome into the runtime's small-integer
// status protocol: a non-negative count on success, or a negative Status
// sentinel otherwise.
//
// Failures other than interruption and an empty non-blocking descriptor are
// passed to a Reporter, the runtime's exception-raising channel, before the
// entry point returns StatusThrown.
package hostio

import (
	"os"
	"strconv"
	"syscall"

	"github.com/vmkit/hostio/internal/descriptor"
	"github.com/vmkit/hostio/internal/sysfs"
)

// Status sentinels returned by Dispatcher entry points in place of a byte
// count. All are negative so they never collide with a count.
const (
	// StatusEOF means the end of the stream was reached before any byte was
	// read.
	StatusEOF int64 = -1

	// StatusUnavailable means a non-blocking descriptor had no data ready.
	StatusUnavailable int64 = -2

	// StatusInterrupted means a signal interrupted the call before it
	// completed. Any partial progress is discarded, not reported: the caller
	// decides whether to retry, typically after checking its own interrupt
	// state.
	StatusInterrupted int64 = -3

	// StatusUnsupported means the platform cannot perform the operation on
	// raw descriptors.
	StatusUnsupported int64 = -4

	// StatusThrown means the operation failed and the failure was already
	// passed to the Reporter.
	StatusThrown int64 = -5
)

// StatusString returns a human-readable name for a Dispatcher result: the
// sentinel name for a Status value, or the count in decimal otherwise.
func StatusString(result int64) string {
	switch result {
	case StatusEOF:
		return "eof"
	case StatusUnavailable:
		return "unavailable"
	case StatusInterrupted:
		return "interrupted"
	case StatusUnsupported:
		return "unsupported"
	case StatusThrown:
		return "thrown"
	}
	return strconv.FormatInt(result, 10)
}

// Reporter is the runtime's error-reporting channel. When an entry point
// returns StatusThrown, the underlying failure was first passed here, with
// `op` naming the syscall that failed (e.g. "read").
//
// Implementations typically raise an exception, or the runtime's equivalent,
// carrying errno.Error() as the message.
type Reporter interface {
	ReportIOError(op string, errno syscall.Errno)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(op string, errno syscall.Errno)

// ReportIOError implements Reporter.ReportIOError
func (f ReporterFunc) ReportIOError(op string, errno syscall.Errno) { f(op, errno) }

// DiscardReporter drops all reports. Useful when the caller only needs the
// status protocol.
type DiscardReporter struct{}

// ReportIOError implements Reporter.ReportIOError
func (DiscardReporter) ReportIOError(string, syscall.Errno) {}

// FileEntry is an open file in the dispatcher's descriptor table.
type FileEntry struct {
	// Name is a caller-chosen label, used only for diagnostics.
	Name string

	// File is always non-nil.
	File sysfs.File
}

// fileTable maps runtime descriptors to open host files.
type fileTable = descriptor.Table[int32, *FileEntry]

// Dispatcher is the set of native entry points a managed runtime binds for
// pipe I/O. Descriptors are assigned by Register and resolved on every call.
//
// A Dispatcher is not safe for concurrent use: the runtime's I/O layer is
// expected to serialize calls per descriptor table, and individual entry
// points hold no state besides the table itself.
type Dispatcher struct {
	reporter Reporter
	files    fileTable
}

// NewDispatcher returns a Dispatcher reporting failures to r, or to a
// DiscardReporter when r is nil.
func NewDispatcher(r Reporter) *Dispatcher {
	if r == nil {
		r = DiscardReporter{}
	}
	return &Dispatcher{reporter: r}
}

// Register inserts f into the descriptor table and returns the descriptor
// the runtime should use for it. The lowest free descriptor is assigned,
// POSIX style.
//
// # Errors
//
// A zero syscall.Errno is success. syscall.EBADF means no descriptor could
// be assigned.
func (d *Dispatcher) Register(name string, f sysfs.File) (int32, syscall.Errno) {
	fd, ok := d.files.Insert(&FileEntry{Name: name, File: f})
	if !ok {
		return 0, syscall.EBADF
	}
	return fd, 0
}

// RegisterPipe is Register for an os.File referencing a pipe or FIFO
// endpoint, such as a side of os.Pipe.
func (d *Dispatcher) RegisterPipe(f *os.File) (int32, syscall.Errno) {
	return d.Register(f.Name(), sysfs.NewPipeFile(f))
}

// LookupFile returns the entry registered for fd, if any.
func (d *Dispatcher) LookupFile(fd int32) (*FileEntry, bool) {
	return d.files.Lookup(fd)
}

// Skip reads and discards up to n bytes from the descriptor fd, returning
// the count actually discarded.
//
// Skipping is destructive: discarded bytes cannot be recovered or pushed
// back onto the stream.
//
// The result is one of:
//   - a count in [0, n]. When n < 1 the count is zero and no syscall is
//     issued. A count below n means the stream ended, or a non-blocking
//     descriptor had nothing more buffered.
//   - StatusInterrupted: a signal interrupted the skip. Bytes already
//     discarded are intentionally not reported, in favor of a caller-level
//     retry decision.
//   - StatusUnsupported: the platform cannot read raw descriptors.
//   - StatusThrown: the read failed; the errno was passed to the Reporter
//     before returning.
func (d *Dispatcher) Skip(fd int32, n int64) int64 {
	if n < 1 {
		return 0
	}

	e, ok := d.files.Lookup(fd)
	if !ok {
		d.reporter.ReportIOError("skip", syscall.EBADF)
		return StatusThrown
	}

	tn, errno := sysfs.Skip(e.File, n)
	switch errno {
	case 0:
		return tn
	case syscall.EINTR:
		return StatusInterrupted
	case syscall.ENOSYS:
		return StatusUnsupported
	default:
		d.reporter.ReportIOError("read", errno)
		return StatusThrown
	}
}

// Drain discards everything currently readable from the descriptor fd until
// end of stream, a dry non-blocking descriptor, or a failure. The result
// protocol is the same as Skip.
func (d *Dispatcher) Drain(fd int32) int64 {
	return d.Skip(fd, maxInt64)
}

// Read reads from the descriptor fd into buf, returning the count read.
//
// The result is one of:
//   - a count in (0, len(buf)]: bytes were read into buf. A zero-length buf
//     returns zero without a syscall.
//   - StatusEOF: the stream ended before any byte arrived.
//   - StatusUnavailable: a non-blocking descriptor had no data ready.
//   - StatusInterrupted: a signal interrupted the read before any data
//     arrived.
//   - StatusUnsupported: the platform cannot read raw descriptors.
//   - StatusThrown: the read failed; the errno was passed to the Reporter
//     before returning.
func (d *Dispatcher) Read(fd int32, buf []byte) int64 {
	if len(buf) == 0 {
		return 0
	}

	e, ok := d.files.Lookup(fd)
	if !ok {
		d.reporter.ReportIOError("read", syscall.EBADF)
		return StatusThrown
	}

	n, errno := e.File.Read(buf)
	switch {
	case errno == 0:
		if n == 0 {
			return StatusEOF
		}
		return int64(n)
	case errno == syscall.EAGAIN || errno == syscall.EWOULDBLOCK:
		return StatusUnavailable
	case errno == syscall.EINTR:
		return StatusInterrupted
	case errno == syscall.ENOSYS:
		return StatusUnsupported
	default:
		d.reporter.ReportIOError("read", errno)
		return StatusThrown
	}
}

// SetNonblock toggles the non-blocking mode of the descriptor fd.
//
// # Errors
//
// A zero syscall.Errno is success. syscall.EBADF means fd is not registered;
// other errnos come from the underlying fcntl.
func (d *Dispatcher) SetNonblock(fd int32, enable bool) syscall.Errno {
	e, ok := d.files.Lookup(fd)
	if !ok {
		return syscall.EBADF
	}
	return e.File.SetNonblock(enable)
}

// Close removes the descriptor fd from the table and closes the underlying
// file.
//
// # Errors
//
// A zero syscall.Errno is success. syscall.EBADF means fd is not registered;
// other errnos come from the underlying close.
func (d *Dispatcher) Close(fd int32) syscall.Errno {
	e, ok := d.files.Lookup(fd)
	if !ok {
		return syscall.EBADF
	}
	d.files.Delete(fd)
	return e.File.Close()
}

const maxInt64 = 1<<63 - 1
