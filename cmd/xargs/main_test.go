//go:build !windows

package main

import (
	"flag"
	"io"
	"testing"

	"github.com/dmora/xargs"
)

// parse runs the real flag registration over args and returns the
// validated option set.
func parse(t *testing.T, args ...string) ([]xargs.Option, error) {
	t.Helper()
	fs := flag.NewFlagSet("xargs", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := registerFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse(%q): %v", args, err)
	}
	return f.options()
}

// resolve applies an option set so the resulting configuration can be
// inspected.
func resolve(opts []xargs.Option) xargs.Options {
	var o xargs.Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func TestFlagMapping(t *testing.T) {
	opts, err := parse(t, "-0", "-n", "3", "-s", "4096", "-r", "-t", "-o", "-p")
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	o := resolve(opts)
	if !o.NullDelimited || !o.SkipEmpty || !o.Trace || !o.TTYStdin || !o.Prompt {
		t.Errorf("modes not mapped: %+v", o)
	}
	if o.MaxArgs != 3 {
		t.Errorf("MaxArgs = %d, want 3", o.MaxArgs)
	}
	if o.MaxBytes != 4096 {
		t.Errorf("MaxBytes = %d, want 4096", o.MaxBytes)
	}
}

func TestFlagStopString(t *testing.T) {
	opts, err := parse(t, "-E", "STOP")
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if o := resolve(opts); o.StopString != "STOP" {
		t.Errorf("StopString = %q, want %q", o.StopString, "STOP")
	}
}

func TestFlagValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"null delim conflicts with stop string", []string{"-0", "-E", "STOP"}},
		{"max args below one", []string{"-n", "0"}},
		{"negative max args", []string{"-n", "-2"}},
		{"negative size", []string{"-s", "-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parse(t, tt.args...); err == nil {
				t.Errorf("options(%q) succeeded, want error", tt.args)
			}
		})
	}
}

func TestFlagDefaultsProduceNoOptions(t *testing.T) {
	opts, err := parse(t)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if len(opts) != 0 {
		t.Errorf("got %d options from defaults, want none", len(opts))
	}
}
