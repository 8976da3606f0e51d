package fileserver

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const (
	// ChunkSize bounds both the filename read and every write of file data.
	ChunkSize = 32
	// Backlog is the listen queue length.
	Backlog = 5
)

// Server answers one filename request per connection. The zero value logs
// through the logrus standard logger in raw request mode.
type Server struct {
	Log     logrus.FieldLogger
	Request RequestMode
}

func NewServer(log logrus.FieldLogger, mode RequestMode) *Server {
	return &Server{Log: log, Request: mode}
}

func (s *Server) logger() logrus.FieldLogger {
	if s.Log == nil {
		return logrus.StandardLogger()
	}
	return s.Log
}

// Serve reads a filename from conn and writes the file back in chunks of at
// most ChunkSize bytes. If the file cannot be opened a single zero-filled
// chunk is written and a *NotFoundError returned. The name is used as given,
// relative to the working directory, with no sanitizing.
func (s *Server) Serve(conn io.ReadWriter) error {
	name, err := s.readFilename(conn)
	if err != nil {
		return err
	}
	log := s.logger().WithField("file", name)
	log.Info("file requested")

	file, err := os.Open(name)
	if err != nil {
		log.WithError(err).Error("no such file")
		// The peer cannot tell this from a file of 32 NUL bytes.
		conn.Write(make([]byte, ChunkSize))
		return &NotFoundError{Name: name, Err: err}
	}
	defer file.Close()

	written, chunks, err := sendFile(file, conn)
	if err != nil {
		log.WithError(err).Error("transfer failed")
		return err
	}
	log.WithFields(logrus.Fields{
		"bytes":  written,
		"chunks": chunks,
	}).Info("transfer complete")
	return nil
}

func (s *Server) readFilename(conn io.Reader) (string, error) {
	var name []byte
	switch s.Request {
	case RequestLine:
		line, err := bufio.NewReaderSize(conn, ChunkSize).ReadSlice('\n')
		if errors.Is(err, bufio.ErrBufferFull) {
			return "", &TransferError{Op: "read", Err: fmt.Errorf("filename longer than %d bytes", ChunkSize)}
		}
		if err != nil && err != io.EOF {
			return "", &TransferError{Op: "read", Err: err}
		}
		name = bytes.TrimRight(line, "\r\n")
	default:
		buf := make([]byte, ChunkSize)
		n, err := conn.Read(buf)
		if err != nil && err != io.EOF {
			return "", &TransferError{Op: "read", Err: err}
		}
		name = buf[:n]
	}
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	return string(name), nil
}

// sendFile copies file to conn one chunk per write. It stops at the first
// empty read or when conn accepts zero bytes.
func sendFile(file io.Reader, conn io.Writer) (written int64, chunks int, err error) {
	buf := make([]byte, ChunkSize)
	defer clear(buf)

	for {
		n, rerr := file.Read(buf)
		if n > 0 {
			w, werr := conn.Write(buf[:n])
			written += int64(w)
			if werr != nil {
				return written, chunks, &TransferError{Op: "write", Written: written, Err: werr}
			}
			if w == 0 {
				return written, chunks, nil
			}
			chunks++
		}
		if rerr == io.EOF || (n == 0 && rerr == nil) {
			return written, chunks, nil
		}
		if rerr != nil {
			return written, chunks, &TransferError{Op: "file", Written: written, Err: rerr}
		}
	}
}
