package fileserver

import (
	"io"
	"net"
)

// Fetch asks the server at addr for name and copies the reply into w until
// the server closes the connection. A missing file shows up as ChunkSize
// zero bytes; Fetch cannot tell that apart from a real file.
func Fetch(addr, name string, mode RequestMode, w io.Writer) (int64, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	req := []byte(name)
	if mode == RequestLine {
		req = append(req, '\n')
	}
	// The raw server takes a single read as the whole name, so send it in one write.
	if _, err := conn.Write(req); err != nil {
		return 0, err
	}

	return io.Copy(w, conn)
}
