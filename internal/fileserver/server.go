package fileserver

import (
	"net"

	"github.com/sirupsen/logrus"
)

// Run listens on the loopback port from cfg, serves exactly one client and
// closes the listener. The returned error is the transfer's result.
func Run(cfg Config, log logrus.FieldLogger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	ln, err := Listen(cfg.Port)
	if err != nil {
		return err
	}
	defer ln.Close()

	log.WithField("addr", ln.Addr().String()).Info("listening")
	return NewServer(log, cfg.Request).ServeOne(ln)
}

// ServeOne blocks until a single client connects, serves it and closes the
// connection. It does not close ln.
func (s *Server) ServeOne(ln net.Listener) error {
	conn, err := ln.Accept()
	if err != nil {
		return &SetupError{Op: "accept", Addr: ln.Addr().String(), Err: err}
	}
	defer conn.Close()

	fields := logrus.Fields{"remote": conn.RemoteAddr().String()}
	if a, ok := ln.Addr().(*net.TCPAddr); ok {
		fields["port"] = a.Port
	}
	s.logger().WithFields(fields).Info("client connected")

	return s.Serve(conn)
}
