//go:build !windows

// Command xargs runs a command one or more times, appending arguments
// read from standard input, packing as many per invocation as the size
// and count limits allow.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/dmora/xargs"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("xargs", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: xargs [-0oprt] [-s NUM] [-n NUM] [-E STR] COMMAND...")
		fmt.Fprintln(fs.Output(), "\nRun command line one or more times, appending arguments from stdin.")
		fmt.Fprintln(fs.Output(), "If command exits with 255, don't launch another even if arguments remain.")
		fmt.Fprintln(fs.Output())
		fs.PrintDefaults()
	}

	f := registerFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	opts, err := f.options()
	if err != nil {
		fmt.Fprintf(os.Stderr, "xargs: %v\n", err)
		return 2
	}

	status, err := xargs.New(fs.Args(), opts...).Run(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return status
}

// cliFlags collects the parsed flag values before validation.
type cliFlags struct {
	nullDelim bool
	stopStr   string
	maxArgs   int
	ttyStdin  bool
	prompt    bool
	skipEmpty bool
	maxBytes  int64
	trace     bool

	fs *flag.FlagSet
}

func registerFlags(fs *flag.FlagSet) *cliFlags {
	f := &cliFlags{fs: fs}
	fs.BoolVar(&f.nullDelim, "0", false, "NUL-terminated arguments, no whitespace processing")
	fs.StringVar(&f.stopStr, "E", "", "stop at token matching `STR`")
	fs.IntVar(&f.maxArgs, "n", 0, "max arguments per command")
	fs.BoolVar(&f.ttyStdin, "o", false, "open tty for the command's stdin (default /dev/null)")
	fs.BoolVar(&f.prompt, "p", false, "prompt for y/n from tty before running each command")
	fs.BoolVar(&f.skipEmpty, "r", false, "don't run the command on empty input")
	fs.Int64Var(&f.maxBytes, "s", 0, "size in bytes per command line")
	fs.BoolVar(&f.trace, "t", false, "trace, print command line to stderr")
	return f
}

// options validates the parsed flags and maps them to runner options.
func (f *cliFlags) options() ([]xargs.Option, error) {
	if f.nullDelim && visited(f.fs, "E") {
		return nil, errors.New("-0 and -E are mutually exclusive")
	}
	if visited(f.fs, "n") && f.maxArgs < 1 {
		return nil, fmt.Errorf("-n must be >= 1, got %d", f.maxArgs)
	}
	if f.maxBytes < 0 {
		return nil, fmt.Errorf("-s must be >= 0, got %d", f.maxBytes)
	}

	var opts []xargs.Option
	if f.nullDelim {
		opts = append(opts, xargs.WithNullDelimited())
	}
	if f.stopStr != "" {
		opts = append(opts, xargs.WithStopString(f.stopStr))
	}
	if f.maxArgs > 0 {
		opts = append(opts, xargs.WithMaxArgs(f.maxArgs))
	}
	if f.maxBytes > 0 {
		opts = append(opts, xargs.WithMaxBytes(f.maxBytes))
	}
	if f.prompt {
		opts = append(opts, xargs.WithPrompt())
	}
	if f.trace {
		opts = append(opts, xargs.WithTrace())
	}
	if f.skipEmpty {
		opts = append(opts, xargs.WithSkipEmpty())
	}
	if f.ttyStdin {
		opts = append(opts, xargs.WithTTYStdin())
	}
	return opts, nil
}

// visited reports whether a flag was set explicitly on the command line.
func visited(fs *flag.FlagSet, name string) bool {
	if fs == nil {
		return false
	}
	found := false
	fs.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			found = true
		}
	})
	return found
}
