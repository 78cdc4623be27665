// Package xargs implements the xargs batching core: it reads a stream of
// tokens from an input reader and repeatedly runs a command, appending as
// many tokens to each invocation as the configured limits allow.
//
// # Core Types
//
//   - [Runner] — drives the fill/flush/run loop, one child at a time
//   - [Option] — functional options for [New]
//   - [Options] — the resolved configuration an Option set produces
//
// # Semantics
//
// Input is split on whitespace by default, or taken as whole NUL-terminated
// records with [WithNullDelimited]. A token is never split across two
// batches. Byte accounting matches what execve will see: the fixed command
// prefix contributes a constant baseline, each token its own length plus a
// terminator, and record mode additionally reserves a pointer slot per
// argument. The default byte ceiling is derived from the system exec limit
// minus the current environment and a 2048-byte reservation.
//
// A child exiting 255 stops the loop without being treated as a failure of
// the runner itself. A single token that can never fit a batch aborts the
// whole run with [ErrArgTooLong].
//
// # Quick Start
//
//	r := xargs.New([]string{"grep", "pattern"},
//	    xargs.WithMaxArgs(64),
//	)
//	status, err := r.Run(ctx)
//	if err != nil { log.Fatal(err) }
//	os.Exit(status)
package xargs
