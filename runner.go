//go:build !windows

package xargs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
)

// Runner drives the batching loop: it reads records from input, packs as
// many tokens into each batch as the ceilings allow, and runs the command
// once per batch with the batch appended to the fixed prefix.
//
// A Runner is single-threaded and strictly serial: batches run in input
// order, one child at a time, and Run blocks until each child exits before
// reading further input. Run consumes the input stream; create a new
// Runner for a new stream.
type Runner struct {
	command []string
	opts    Options

	state    batchState
	baseline int64 // byte cost of the fixed command prefix

	in    *recordReader
	tty   *os.File
	ttyIn *bufio.Reader

	leftover     string // input read but deferred to the next batch
	haveLeftover bool
	done         bool

	lastStatus int
}

// New creates a Runner that appends batched tokens to command. An empty
// command defaults to a single "echo" placeholder. Use Option functions
// to set ceilings and modes.
func New(command []string, opts ...Option) *Runner {
	if len(command) == 0 {
		command = []string{"echo"}
	}
	return &Runner{
		command: append([]string(nil), command...),
		opts:    resolveOptions(opts...),
	}
}

// Run executes the batching loop until input is exhausted, the stop string
// matches, or a child exits 255. It returns the last normalized child exit
// status observed: the exit code as-is, or 128+signal for signal deaths.
//
// Fatal conditions — a token that can never fit a batch, a terminal that
// cannot be opened, a child that cannot be spawned — abort the whole run
// with an error. A child merely exiting non-zero is not an error.
//
// ctx is checked between batches only; a child already running is never
// interrupted.
func (r *Runner) Run(ctx context.Context) (int, error) {
	if err := r.sanity(); err != nil {
		return 0, err
	}
	defer r.closeTTY()

	r.state = batchState{
		maxArgs:   r.opts.MaxArgs,
		maxBytes:  clampBytes(r.opts.MaxBytes),
		stopStr:   r.opts.StopString,
		nullDelim: r.opts.NullDelimited,
	}

	r.baseline = int64(len(r.command)) - 1
	for _, arg := range r.command {
		r.baseline += int64(len(arg))
	}

	delim := byte('\n')
	if r.opts.NullDelimited {
		delim = 0
	}
	r.in = newRecordReader(r.opts.Input, delim)

	for r.haveLeftover || !r.done {
		if err := ctx.Err(); err != nil {
			return r.lastStatus, err
		}
		halt, err := r.runBatch()
		if err != nil {
			return r.lastStatus, err
		}
		if halt {
			break
		}
	}
	return r.lastStatus, nil
}

// sanity validates the resolved options before the loop starts.
func (r *Runner) sanity() error {
	if r.opts.MaxArgs < 0 {
		return fmt.Errorf("xargs: max args must be >= 1, got %d", r.opts.MaxArgs)
	}
	if r.opts.MaxBytes < 0 {
		return fmt.Errorf("xargs: max bytes must be >= 0, got %d", r.opts.MaxBytes)
	}
	if r.opts.NullDelimited && r.opts.StopString != "" {
		return errors.New("xargs: stop string requires whitespace mode")
	}
	if r.opts.Input == nil || r.opts.Diag == nil {
		return errors.New("xargs: nil input or diagnostic stream")
	}
	return nil
}

// runBatch fills one batch, flushes it, and runs the child. halt is true
// when the child exited 255, which stops the loop even with input
// remaining. All per-batch state is released on return.
func (r *Runner) runBatch() (halt bool, err error) {
	r.state.reset(r.baseline)

	tokens, err := r.fill()
	if err != nil {
		return false, err
	}

	// A leftover with nothing accepted means the ceilings can never admit
	// it. Checked before the skip-empty path so SkipEmpty cannot spin on
	// an oversized token forever.
	if len(tokens) == 0 {
		if r.haveLeftover {
			return false, ErrArgTooLong
		}
		if r.opts.SkipEmpty {
			return false, nil
		}
	}

	argv := make([]string, 0, len(r.command)+len(tokens))
	argv = append(argv, r.command...)
	argv = append(argv, tokens...)

	if r.opts.Prompt || r.opts.Trace {
		ok, err := r.confirm(argv)
		if err != nil {
			return false, err
		}
		if !ok {
			// Negative answer skips this batch only; the batch is still
			// consumed and the loop continues.
			return false, nil
		}
	}

	status, err := r.spawn(argv)
	if err != nil {
		return false, err
	}
	r.lastStatus = status
	return status == 255, nil
}

// fill reads records until the batch boundary and returns the accepted
// tokens. A leftover deferred by the previous batch is consumed before
// any new input is read.
func (r *Runner) fill() ([]string, error) {
	var tokens []string
	emit := func(tok string) { tokens = append(tokens, tok) }

	for {
		var rec string
		if r.haveLeftover {
			rec, r.leftover, r.haveLeftover = r.leftover, "", false
		} else {
			var err error
			rec, err = r.in.next()
			if err == io.EOF {
				r.done = true
				return tokens, nil
			}
			if err != nil {
				return nil, fmt.Errorf("xargs: read input: %w", err)
			}
		}

		switch v := r.state.scan(rec, emit); v.kind {
		case needMore:
			continue
		case batchFull:
			r.leftover, r.haveLeftover = rec[v.off:], true
			return tokens, nil
		case batchFullConsumed:
			return tokens, nil
		case stopHit:
			// Flush what was accepted, then stop reading entirely.
			r.done = true
			return tokens, nil
		}
	}
}

// confirm echoes argv to the diagnostic stream and, in prompt mode, asks
// the controlling terminal for a y/N answer. Trace-only mode always
// proceeds.
func (r *Runner) confirm(argv []string) (bool, error) {
	for _, arg := range argv {
		fmt.Fprintf(r.opts.Diag, "%s ", arg)
	}
	if !r.opts.Prompt {
		fmt.Fprintln(r.opts.Diag)
		return true, nil
	}
	fmt.Fprint(r.opts.Diag, "?")
	if err := r.ensurePromptTTY(); err != nil {
		return false, err
	}
	return r.yesno(), nil
}

// spawn runs one batch's child with stdin on the null device (or the
// controlling terminal under TTYStdin) and stdout/stderr passed through,
// blocking until it exits. A failure to spawn is fatal to the whole run,
// not retried and not skipped.
func (r *Runner) spawn(argv []string) (int, error) {
	var stdin *os.File
	if r.opts.TTYStdin {
		tty, err := r.ensureTTY()
		if err != nil {
			return 0, err
		}
		stdin = tty
	} else {
		null, err := os.Open(os.DevNull)
		if err != nil {
			return 0, fmt.Errorf("xargs: child stdin: %w", err)
		}
		defer null.Close()
		stdin = null
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var ee *exec.ExitError
	if !errors.As(err, &ee) {
		return 0, fmt.Errorf("xargs: exec %s: %w", argv[0], err)
	}
	return normalizeStatus(ee.ProcessState), nil
}

// normalizeStatus maps a child's wait status to the shell convention:
// the exit code as-is, 128+signal for signal-terminated children.
func normalizeStatus(state *os.ProcessState) int {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return state.ExitCode()
}
