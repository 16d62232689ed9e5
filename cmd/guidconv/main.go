// Command guidconv validates registry-format GUIDs and prints their canonical
// form and binary layouts. GUIDs are taken from the arguments, or one per line
// from stdin when there are none. It exits with status 1 if any input is
// malformed.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/bogu9821/guidparser/pkg/guid"
	"github.com/bogu9821/guidparser/pkg/guid/wellknown"
)

var errMalformedInput = errors.New("one or more inputs were malformed")

func main() {
	check := flag.Bool("check", false, "only validate; print nothing for valid input")
	verbose := flag.Bool("v", false, "log each input as it is processed")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-check] [-v] [{guid} ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	c := converter{check: *check, out: os.Stdout}
	var err error
	if flag.NArg() > 0 {
		err = c.args(flag.Args())
	} else {
		err = c.lines(os.Stdin)
	}
	if err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

type converter struct {
	check bool
	out   io.Writer
	bad   int
}

func (c *converter) args(args []string) error {
	for _, a := range args {
		if err := c.convert(a); err != nil {
			return err
		}
	}
	return c.result()
}

func (c *converter) lines(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		logrus.WithField("line", n).Debug("read")
		if err := c.convert(line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "read input")
	}
	return c.result()
}

func (c *converter) result() error {
	if c.bad > 0 {
		return errors.Wrapf(errMalformedInput, "%d invalid", c.bad)
	}
	return nil
}

// convert reports a malformed input through the log and the bad count; the
// returned error is reserved for output failures.
func (c *converter) convert(s string) error {
	g, err := guid.Parse(s)
	if err != nil {
		c.bad++
		logrus.WithField("input", s).WithError(err).Warn("rejected")
		return nil
	}
	logrus.WithField("guid", g).Debug("parsed")
	if c.check {
		return nil
	}
	return describe(c.out, g)
}

func describe(w io.Writer, g guid.GUID) error {
	win := g.ToWindowsArray()
	be := g.ToArray()
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", g)
	fmt.Fprintf(&b, "  Data1:      0x%08x\n", g.Data1)
	fmt.Fprintf(&b, "  Data2:      0x%04x\n", g.Data2)
	fmt.Fprintf(&b, "  Data3:      0x%04x\n", g.Data3)
	fmt.Fprintf(&b, "  Data4:      % x\n", g.Data4)
	fmt.Fprintf(&b, "  windows:    % x\n", win)
	fmt.Fprintf(&b, "  big-endian: % x\n", be)
	fmt.Fprintf(&b, "  variant:    %s\n", g.Variant())
	fmt.Fprintf(&b, "  version:    %d\n", g.Version())
	if name, ok := wellknown.Lookup(g); ok {
		fmt.Fprintf(&b, "  name:       %s\n", name)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
