package fileserver

import "fmt"

// SetupError is returned when the listening endpoint cannot be created or
// when accepting the single client fails.
type SetupError struct {
	Op   string // socket, bind, listen or accept
	Addr string
	Err  error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Addr, e.Err)
}

func (e *SetupError) Unwrap() error { return e.Err }

// NotFoundError is returned when the requested file cannot be opened. The
// peer has already been sent a zero-filled chunk by the time it is returned.
type NotFoundError struct {
	Name string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no such file %q: %v", e.Name, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// TransferError reports a failure while reading the request or streaming the
// file contents.
type TransferError struct {
	Op      string // read, write or file
	Written int64
	Err     error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer %s after %d bytes: %v", e.Op, e.Written, e.Err)
}

func (e *TransferError) Unwrap() error { return e.Err }
