package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/sirupsen/logrus"

	"github.com/douglasmakey/tcp-file-server/internal/fileserver"
)

type args struct {
	Port     int                    `arg:"positional,required" help:"server port on 127.0.0.1"`
	Filename string                 `arg:"positional,required" help:"path to request, relative to the server's working directory"`
	Output   string                 `arg:"-o,--output" help:"write the file here instead of stdout"`
	Request  fileserver.RequestMode `arg:"--request" default:"raw" help:"raw or line, must match the server"`
}

func main() {
	var a args
	arg.MustParse(&a)

	var out io.Writer = os.Stdout
	if a.Output != "" {
		// Create the file
		file, err := os.Create(a.Output)
		if err != nil {
			logrus.WithError(err).Fatal("could not create output file")
		}
		defer file.Close()
		out = file
	}

	addr := fileserver.Config{Port: a.Port}.Addr()
	n, err := fileserver.Fetch(addr, a.Filename, a.Request, out)
	if err != nil {
		logrus.WithError(err).Fatal("fetch failed")
	}
	if a.Output != "" {
		fmt.Fprintf(os.Stderr, "received %d bytes into %s\n", n, a.Output)
	}
}
