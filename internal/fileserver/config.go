package fileserver

import (
	"fmt"
	"net"
	"strconv"
)

// BindHost is the only address the server ever binds to.
const BindHost = "127.0.0.1"

// RequestMode selects how the filename is read off the connection.
type RequestMode int

const (
	// RequestRaw takes whatever a single read returns as the filename.
	RequestRaw RequestMode = iota
	// RequestLine reads up to a newline, across several reads if needed.
	RequestLine
)

func (m RequestMode) String() string {
	switch m {
	case RequestRaw:
		return "raw"
	case RequestLine:
		return "line"
	}
	return "RequestMode(" + strconv.Itoa(int(m)) + ")"
}

func (m RequestMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *RequestMode) UnmarshalText(b []byte) error {
	switch string(b) {
	case "raw", "":
		*m = RequestRaw
	case "line":
		*m = RequestLine
	default:
		return fmt.Errorf("unknown request mode %q (want raw or line)", b)
	}
	return nil
}

// Config holds the server settings. The struct tags drive command line
// parsing in cmd/fileserver.
type Config struct {
	Port     int         `arg:"positional,required" help:"TCP port to listen on (loopback only)"`
	Request  RequestMode `arg:"--request" default:"raw" help:"filename framing: raw (single read) or line (newline terminated)"`
	LogLevel string      `arg:"--log-level,env:FILESERVER_LOG_LEVEL" default:"info" help:"logrus level"`
}

func (Config) Description() string {
	return "Serves exactly one file to exactly one client, then exits."
}

// Validate checks the fields the parser cannot.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range 1-65535", c.Port)
	}
	return nil
}

// Addr is the loopback host:port the server binds to.
func (c Config) Addr() string {
	return net.JoinHostPort(BindHost, strconv.Itoa(c.Port))
}
