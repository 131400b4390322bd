package sysfs

import "syscall"

// maxSkipBufferSize bounds the scratch buffer used when discarding data, so
// a large skip request cannot pin an equally large allocation.
const maxSkipBufferSize = 4096

// Skip reads and discards up to n bytes from f, returning the count actually
// discarded. The scratch buffer is sized min(n, maxSkipBufferSize) and not
// retained after return.
//
// Skipping consumes data: the bytes are gone from the stream once this
// returns.
//
// # Errors
//
// A zero syscall.Errno is success, even when fewer than n bytes were
// discarded: end of stream and a non-blocking descriptor with nothing
// buffered both end the skip early with the count discarded so far.
//
// The below are expected otherwise:
//   - syscall.EINTR: a signal interrupted the underlying read. The count
//     returned is zero even if data was already discarded; whether to retry
//     the whole skip is the caller's decision.
//   - other errno: the underlying read failed.
func Skip(f File, n int64) (int64, syscall.Errno) {
	if n < 1 {
		return 0, 0
	}

	bs := n
	if bs > maxSkipBufferSize {
		bs = maxSkipBufferSize
	}
	buf := make([]byte, bs)

	var tn int64
	for {
		count := n - tn
		if count > bs {
			count = bs
		}

		nr, errno := f.Read(buf[:count])
		if errno == syscall.EAGAIN || errno == syscall.EWOULDBLOCK {
			// Nothing buffered right now on a non-blocking descriptor.
			return tn, 0
		} else if errno == syscall.EINTR {
			return 0, syscall.EINTR
		} else if errno != 0 {
			return 0, errno
		}

		if nr > 0 {
			tn += int64(nr)
		}
		if int64(nr) == bs {
			continue // the buffer filled exactly: more data may remain.
		}
		return tn, 0 // short read: no more data is immediately available.
	}
}
