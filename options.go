package xargs

import (
	"io"
	"os"
)

// Options holds resolved configuration for a Runner. Use New with Option
// functions to populate it; the zero value of each field is the default.
type Options struct {
	// NullDelimited switches input to NUL-terminated records, each taken
	// whole as one argument with no whitespace splitting.
	NullDelimited bool

	// StopString stops reading input once a token matches it exactly.
	// The batch accepted so far still runs. Whitespace mode only;
	// empty disables.
	StopString string

	// MaxArgs caps accepted input tokens per batch. 0 = unlimited.
	MaxArgs int

	// MaxBytes caps the serialized argument-vector size per batch.
	// 0 derives the POSIX default from the system exec limit; values
	// above that limit are clamped down to it.
	MaxBytes int64

	// Prompt asks y/N on the controlling terminal before running each
	// batch. Implies the trace-style echo of the argument vector.
	Prompt bool

	// Trace echoes each batch's argument vector to Diag before running.
	Trace bool

	// SkipEmpty discards batches with zero accepted tokens instead of
	// running the bare command prefix.
	SkipEmpty bool

	// TTYStdin gives children the controlling terminal as stdin instead
	// of the null device.
	TTYStdin bool

	// Input is the record source. Defaults to os.Stdin.
	Input io.Reader

	// Diag receives prompt and trace output. Defaults to os.Stderr.
	Diag io.Writer
}

// Option configures a Runner at construction time.
type Option func(*Options)

// resolveOptions applies functional options over the defaults.
func resolveOptions(opts ...Option) Options {
	o := Options{
		Input: os.Stdin,
		Diag:  os.Stderr,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithNullDelimited switches input to NUL-terminated records.
func WithNullDelimited() Option {
	return func(o *Options) { o.NullDelimited = true }
}

// WithStopString stops reading input at a token exactly matching s.
func WithStopString(s string) Option {
	return func(o *Options) { o.StopString = s }
}

// WithMaxArgs caps accepted tokens per batch. Values < 1 are ignored.
func WithMaxArgs(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxArgs = n
		}
	}
}

// WithMaxBytes caps the per-batch argument-vector size in bytes.
// Values < 1 are ignored.
func WithMaxBytes(n int64) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxBytes = n
		}
	}
}

// WithPrompt asks for confirmation on the controlling terminal before
// each batch.
func WithPrompt() Option {
	return func(o *Options) { o.Prompt = true }
}

// WithTrace echoes each batch's argument vector before running it.
func WithTrace() Option {
	return func(o *Options) { o.Trace = true }
}

// WithSkipEmpty discards batches that accepted zero tokens.
func WithSkipEmpty() Option {
	return func(o *Options) { o.SkipEmpty = true }
}

// WithTTYStdin gives children the controlling terminal as stdin.
func WithTTYStdin() Option {
	return func(o *Options) { o.TTYStdin = true }
}

// WithInput sets the record source. Nil is ignored.
func WithInput(r io.Reader) Option {
	return func(o *Options) {
		if r != nil {
			o.Input = r
		}
	}
}

// WithDiag sets the diagnostic stream for prompt and trace output.
// Nil is ignored.
func WithDiag(w io.Writer) Option {
	return func(o *Options) {
		if w != nil {
			o.Diag = w
		}
	}
}
