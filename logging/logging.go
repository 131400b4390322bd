// Package logging decorates a hostio.Dispatcher so that every entry point
// logs its parameters and result. This exists for tracing guest I/O while
// debugging a runtime integration; the primitives themselves never log.
package logging

import (
	"syscall"

	"github.com/go-pkgz/lgr"

	"github.com/vmkit/hostio"
)

// Dispatcher wraps a hostio.Dispatcher, logging each call at DEBUG level
// before returning its result unchanged.
type Dispatcher struct {
	d   *hostio.Dispatcher
	log lgr.L
}

// NewDispatcher returns a logging wrapper around d, writing to l or to
// lgr.Default() when l is nil.
func NewDispatcher(d *hostio.Dispatcher, l lgr.L) *Dispatcher {
	if l == nil {
		l = lgr.Default()
	}
	return &Dispatcher{d: d, log: l}
}

// Skip implements the same method as documented on hostio.Dispatcher.
func (w *Dispatcher) Skip(fd int32, n int64) int64 {
	res := w.d.Skip(fd, n)
	w.log.Logf("[DEBUG] skip fd=%d n=%d => %s", fd, n, hostio.StatusString(res))
	return res
}

// Drain implements the same method as documented on hostio.Dispatcher.
func (w *Dispatcher) Drain(fd int32) int64 {
	res := w.d.Drain(fd)
	w.log.Logf("[DEBUG] drain fd=%d => %s", fd, hostio.StatusString(res))
	return res
}

// Read implements the same method as documented on hostio.Dispatcher.
func (w *Dispatcher) Read(fd int32, buf []byte) int64 {
	res := w.d.Read(fd, buf)
	w.log.Logf("[DEBUG] read fd=%d len=%d => %s", fd, len(buf), hostio.StatusString(res))
	return res
}

// SetNonblock implements the same method as documented on hostio.Dispatcher.
func (w *Dispatcher) SetNonblock(fd int32, enable bool) syscall.Errno {
	errno := w.d.SetNonblock(fd, enable)
	w.log.Logf("[DEBUG] set_nonblock fd=%d enable=%v => %s", fd, enable, errnoString(errno))
	return errno
}

// Close implements the same method as documented on hostio.Dispatcher.
func (w *Dispatcher) Close(fd int32) syscall.Errno {
	errno := w.d.Close(fd)
	w.log.Logf("[DEBUG] close fd=%d => %s", fd, errnoString(errno))
	return errno
}

func errnoString(errno syscall.Errno) string {
	if errno == 0 {
		return "ok"
	}
	return errno.Error()
}
