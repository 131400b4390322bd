//go:build unix

package hostio_test

import (
	"fmt"
	"log"
	"os"

	"github.com/vmkit/hostio"
)

// This example shows the typical call sequence of a runtime's portable I/O
// layer: register a pipe endpoint, discard a header it does not care about,
// then read the payload.
func ExampleDispatcher_Skip() {
	r, w, err := os.Pipe()
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	if _, err = w.Write([]byte("junkpayload")); err != nil {
		log.Fatal(err)
	}

	d := hostio.NewDispatcher(nil)
	fd, errno := d.RegisterPipe(r)
	if errno != 0 {
		log.Fatal(errno)
	}

	fmt.Println("skipped:", d.Skip(fd, 4))

	buf := make([]byte, 16)
	n := d.Read(fd, buf)
	fmt.Println("payload:", string(buf[:n]))

	// Output:
	// skipped: 4
	// payload: payload
}
