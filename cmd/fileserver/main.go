package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/sirupsen/logrus"

	"github.com/douglasmakey/tcp-file-server/internal/fileserver"
)

func main() {
	var cfg fileserver.Config
	p, err := arg.NewParser(arg.Config{Program: "fileserver"}, &cfg)
	if err != nil {
		logrus.WithError(err).Fatal("could not build argument parser")
	}

	err = p.Parse(os.Args[1:])
	switch {
	case errors.Is(err, arg.ErrHelp):
		p.WriteHelp(os.Stdout)
		os.Exit(0)
	case err == nil:
		err = cfg.Validate()
	}
	if err != nil {
		p.WriteUsage(os.Stdout)
		fmt.Fprintln(os.Stdout, "error:", err)
		os.Exit(1)
	}

	log := logrus.New()
	log.SetOutput(os.Stdout)
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("invalid log level")
	}
	log.SetLevel(level)

	if err := fileserver.Run(cfg, log); err != nil {
		log.WithError(err).Error("server failed")
		os.Exit(1)
	}
}
