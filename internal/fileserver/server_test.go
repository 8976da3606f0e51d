package fileserver

import (
	"bytes"
	"net"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenBindsLoopbackOnly(t *testing.T) {
	ln, err := Listen(0)
	require.NoError(t, err)
	defer ln.Close()

	addr, ok := ln.Addr().(*net.TCPAddr)
	require.True(t, ok)
	assert.True(t, addr.IP.Equal(net.IPv4(127, 0, 0, 1)), "bound to %v", addr.IP)
	assert.NotZero(t, addr.Port)
}

func TestListenPortInUse(t *testing.T) {
	ln, err := Listen(0)
	require.NoError(t, err)
	defer ln.Close()

	_, err = Listen(ln.Addr().(*net.TCPAddr).Port)
	var se *SetupError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "bind", se.Op)
}

func TestRunRejectsBadPort(t *testing.T) {
	log, _ := test.NewNullLogger()
	assert.Error(t, Run(Config{Port: 0}, log))
	assert.Error(t, Run(Config{Port: 70000}, log))
}

// serveOnce starts a server on an ephemeral port and returns its address and
// the channel its result arrives on.
func serveOnce(t *testing.T, mode RequestMode) (string, <-chan error) {
	t.Helper()
	ln, err := Listen(0)
	require.NoError(t, err)

	log, _ := test.NewNullLogger()
	done := make(chan error, 1)
	go func() {
		defer ln.Close()
		done <- NewServer(log, mode).ServeOne(ln)
	}()
	return ln.Addr().String(), done
}

func TestFetchRoundTrip(t *testing.T) {
	data := content(100)
	chdirTemp(t, map[string][]byte{"testdata/a.txt": data})

	var outputs [][]byte
	for i := 0; i < 2; i++ {
		addr, done := serveOnce(t, RequestRaw)

		var got bytes.Buffer
		n, err := Fetch(addr, "./testdata/a.txt", RequestRaw, &got)
		require.NoError(t, err)
		assert.Equal(t, int64(100), n)
		require.NoError(t, <-done)
		outputs = append(outputs, got.Bytes())
	}
	assert.Equal(t, data, outputs[0])
	assert.Equal(t, outputs[0], outputs[1])
}

func TestFetchLineMode(t *testing.T) {
	data := content(33)
	chdirTemp(t, map[string][]byte{"f.txt": data})

	addr, done := serveOnce(t, RequestLine)

	var got bytes.Buffer
	_, err := Fetch(addr, "f.txt", RequestLine, &got)
	require.NoError(t, err)
	require.NoError(t, <-done)
	assert.Equal(t, data, got.Bytes())
}

func TestFetchMissingFile(t *testing.T) {
	chdirTemp(t, nil)

	addr, done := serveOnce(t, RequestRaw)

	var got bytes.Buffer
	n, err := Fetch(addr, "./missing.txt", RequestRaw, &got)
	require.NoError(t, err)
	assert.Equal(t, int64(ChunkSize), n)
	assert.Equal(t, make([]byte, ChunkSize), got.Bytes())

	var nf *NotFoundError
	assert.ErrorAs(t, <-done, &nf)
}

func TestServeOneAcceptError(t *testing.T) {
	ln, err := Listen(0)
	require.NoError(t, err)
	ln.Close()

	log, _ := test.NewNullLogger()
	var se *SetupError
	require.ErrorAs(t, NewServer(log, RequestRaw).ServeOne(ln), &se)
	assert.Equal(t, "accept", se.Op)
}
