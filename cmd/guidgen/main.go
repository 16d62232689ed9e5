// Command guidgen writes Go source declaring GUID variables from
// registry-format literals. Run it from a go:generate directive so that a
// malformed literal fails the build instead of surfacing at run time:
//
//	//go:generate go run github.com/bogu9821/guidparser/cmd/guidgen -pkg mypkg -o zguid.go Name={01234567-89ab-cdef-0123-456789abcdef}
//
// Definitions may also be read from a file with -f, one `Name {guid} [doc]`
// per line.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/bogu9821/guidparser/internal/literal"
)

type options struct {
	pkg    string
	out    string
	file   string
	imp    string
	table  string
	debug  bool
	pairs  []string
	stdout io.Writer
}

func main() {
	var opts options
	flag.StringVar(&opts.pkg, "pkg", os.Getenv("GOPACKAGE"), "package name of the generated file (defaults to $GOPACKAGE)")
	flag.StringVar(&opts.out, "o", "", "output file (default stdout)")
	flag.StringVar(&opts.file, "f", "", "`path` of a definitions file, one Name {guid} [doc] per line")
	flag.StringVar(&opts.imp, "import", literal.DefaultImport, "import path of the GUID package; empty to generate into it")
	flag.StringVar(&opts.table, "table", "", "name of a map[GUID]string listing all definitions")
	flag.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s -pkg name [flags] [Name={guid} ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	opts.pairs = flag.Args()
	opts.stdout = os.Stdout

	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if opts.debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := run(opts); err != nil {
		logrus.WithError(err).Fatal("guidgen failed")
	}
}

func run(opts options) error {
	if opts.pkg == "" {
		return errors.New("-pkg is required outside of go generate")
	}

	var defs []literal.Definition
	if opts.file != "" {
		f, err := os.Open(opts.file)
		if err != nil {
			return err
		}
		defer f.Close()
		defs, err = literal.ParseDefinitions(f)
		if err != nil {
			return errors.Wrap(err, opts.file)
		}
	}
	for _, p := range opts.pairs {
		d, err := literal.ParseArg(p)
		if err != nil {
			return err
		}
		defs = append(defs, d)
	}
	if len(defs) == 0 {
		return errors.New("no definitions given")
	}
	for _, d := range defs {
		logrus.WithFields(logrus.Fields{
			"name": d.Name,
			"guid": d.Value,
		}).Debug("definition")
	}

	// Render fully before touching the output so a failure leaves no file.
	var buf bytes.Buffer
	cfg := literal.Config{Package: opts.pkg, Import: opts.imp, Table: opts.table}
	if err := literal.Generate(&buf, cfg, defs); err != nil {
		return err
	}

	if opts.out == "" {
		_, err := buf.WriteTo(opts.stdout)
		return err
	}
	if err := os.WriteFile(opts.out, buf.Bytes(), 0644); err != nil {
		return errors.Wrap(err, "write output")
	}
	logrus.WithFields(logrus.Fields{
		"file":        opts.out,
		"definitions": len(defs),
	}).Info("generated")
	return nil
}
