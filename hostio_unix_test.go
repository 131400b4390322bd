//go:build unix

package hostio_test

import (
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vmkit/hostio"
)

func TestDispatcherSkipPipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	d := hostio.NewDispatcher(nil)
	fd, errno := d.RegisterPipe(r)
	require.Equal(t, syscall.Errno(0), errno)

	_, err = w.Write([]byte("0123456789"))
	require.NoError(t, err)

	// Skip the first four bytes, then read what is left to prove exactly
	// four were consumed.
	require.Equal(t, int64(4), d.Skip(fd, 4))

	buf := make([]byte, 10)
	n := d.Read(fd, buf)
	require.Equal(t, int64(6), n)
	require.Equal(t, "456789", string(buf[:n]))
}

func TestDispatcherSkipPipeEndOfStream(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	d := hostio.NewDispatcher(nil)
	fd, errno := d.RegisterPipe(r)
	require.Equal(t, syscall.Errno(0), errno)

	_, err = w.Write([]byte("abc"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	// Only three bytes were ever written: a larger request returns what the
	// stream had.
	require.Equal(t, int64(3), d.Skip(fd, 100))
	require.Equal(t, hostio.StatusEOF, d.Read(fd, make([]byte, 4)))
}

func TestDispatcherSkipPipeNonblock(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	d := hostio.NewDispatcher(nil)
	fd, errno := d.RegisterPipe(r)
	require.Equal(t, syscall.Errno(0), errno)

	require.Equal(t, syscall.Errno(0), d.SetNonblock(fd, true))

	// An empty non-blocking pipe is not an error: zero bytes were skipped.
	require.Zero(t, d.Skip(fd, 16))
	require.Equal(t, hostio.StatusUnavailable, d.Read(fd, make([]byte, 4)))
}

func TestDispatcherDrainPipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	d := hostio.NewDispatcher(nil)
	fd, errno := d.RegisterPipe(r)
	require.Equal(t, syscall.Errno(0), errno)

	_, err = w.Write(make([]byte, 5000))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	require.Equal(t, int64(5000), d.Drain(fd))
	require.Equal(t, hostio.StatusEOF, d.Read(fd, make([]byte, 4)))
}

func TestDispatcherClosePipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer w.Close()

	d := hostio.NewDispatcher(nil)
	fd, errno := d.RegisterPipe(r)
	require.Equal(t, syscall.Errno(0), errno)

	require.Equal(t, syscall.Errno(0), d.Close(fd))
	require.Equal(t, syscall.EBADF, d.Close(fd))
}
