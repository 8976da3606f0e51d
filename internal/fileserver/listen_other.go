//go:build !unix

package fileserver

import (
	"fmt"
	"net"
)

// Listen binds 127.0.0.1:port. The backlog is left to the runtime on
// platforms without golang.org/x/sys/unix.
func Listen(port int) (net.Listener, error) {
	addr := fmt.Sprintf("%s:%d", BindHost, port)
	ln, err := net.Listen("tcp4", addr)
	if err != nil {
		return nil, &SetupError{Op: "bind", Addr: addr, Err: err}
	}
	return ln, nil
}
