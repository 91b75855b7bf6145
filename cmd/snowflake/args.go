package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/desertwitch/recursion/internal/configuration"
)

type options struct {
	config     string
	svg        string
	cpuprofile string
	memprofile string
	noWindow   bool
	debug      bool
	version    bool
}

func newFlagSet(name string, out io.Writer) (*flag.FlagSet, *options) {
	opts := &options{}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)

	fs.StringVar(&opts.config, "config", "", "configuration file (default "+configuration.DefaultFile+", if present)")
	fs.StringVar(&opts.svg, "svg", "", "additionally write the snowflake as SVG to this file")
	fs.BoolVar(&opts.noWindow, "no-window", false, "do not open the window")
	fs.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	fs.BoolVar(&opts.version, "version", false, "print the version and exit")
	fs.StringVar(&opts.cpuprofile, "cpuprofile", "", "write cpu profile to file")
	fs.StringVar(&opts.memprofile, "memprofile", "", "write memory profile to this file")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] [order] [flags]\n", name)
		fs.PrintDefaults()
	}

	return fs, opts
}

// parseArgs parses the flags wherever they appear among args and returns the
// remaining positional arguments in their given order. A negative number is
// always positional, so that it reaches the order validation instead of
// being rejected as an unknown flag. Everything after "--" is positional.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var flagArgs, positional []string

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			positional = append(positional, args[i+1:]...)

			break
		}

		if !isFlagArg(arg) {
			positional = append(positional, arg)

			continue
		}

		flagArgs = append(flagArgs, arg)

		if needsValue(fs, arg) && i+1 < len(args) {
			i++
			flagArgs = append(flagArgs, args[i])
		}
	}

	if err := fs.Parse(flagArgs); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return append(positional, fs.Args()...), nil
}

func isFlagArg(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}

	if _, err := strconv.ParseFloat(arg, 64); err == nil {
		return false
	}

	return true
}

// needsValue reports whether a flag argument takes its value from the
// following argument.
func needsValue(fs *flag.FlagSet, arg string) bool {
	name := strings.TrimLeft(arg, "-")
	if strings.Contains(name, "=") {
		return false
	}

	f := fs.Lookup(name)
	if f == nil {
		return false
	}

	if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
		return false
	}

	return true
}
