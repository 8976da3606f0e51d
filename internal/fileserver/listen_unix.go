//go:build unix

package fileserver

import (
	"fmt"
	"net"
	"os"

	"golang.org/x/sys/unix"
)

// Listen binds a TCP socket to 127.0.0.1:port and puts it in listening mode
// with a backlog of Backlog. Port 0 picks an ephemeral port.
func Listen(port int) (net.Listener, error) {
	addr := fmt.Sprintf("%s:%d", BindHost, port)

	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM, 0)
	if err != nil {
		return nil, &SetupError{Op: "socket", Addr: addr, Err: err}
	}
	unix.CloseOnExec(fd)

	sa := &unix.SockaddrInet4{Port: port, Addr: [4]byte{127, 0, 0, 1}}
	if err := unix.Bind(fd, sa); err != nil {
		unix.Close(fd)
		return nil, &SetupError{Op: "bind", Addr: addr, Err: err}
	}
	if err := unix.Listen(fd, Backlog); err != nil {
		unix.Close(fd)
		return nil, &SetupError{Op: "listen", Addr: addr, Err: err}
	}

	// FileListener dups the descriptor, so f is closed either way.
	f := os.NewFile(uintptr(fd), "tcp:"+addr)
	defer f.Close()

	ln, err := net.FileListener(f)
	if err != nil {
		return nil, &SetupError{Op: "listen", Addr: addr, Err: err}
	}
	return ln, nil
}
