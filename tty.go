//go:build !windows

package xargs

import (
	"bufio"
	"fmt"
	"os"
)

// ttyPath is the controlling terminal, used for prompting and as child
// stdin under TTYStdin.
const ttyPath = "/dev/tty"

// ensureTTY opens the controlling terminal, at most once per run. The
// handle is shared between prompting and TTYStdin children and closed
// once at the end of the run.
func (r *Runner) ensureTTY() (*os.File, error) {
	if r.tty == nil {
		f, err := os.Open(ttyPath)
		if err != nil {
			return nil, fmt.Errorf("xargs: open %s: %w", ttyPath, err)
		}
		r.tty = f
	}
	return r.tty, nil
}

// ensurePromptTTY wraps the terminal in a buffered reader, cached so
// input read ahead of one prompt is not lost before the next.
func (r *Runner) ensurePromptTTY() error {
	if r.ttyIn != nil {
		return nil
	}
	f, err := r.ensureTTY()
	if err != nil {
		return err
	}
	r.ttyIn = bufio.NewReader(f)
	return nil
}

// yesno reads one response line from the terminal. Only a leading y or Y
// is a yes; an empty line or read failure is a no.
func (r *Runner) yesno() bool {
	line, _ := r.ttyIn.ReadString('\n')
	if len(line) == 0 {
		return false
	}
	return line[0] == 'y' || line[0] == 'Y'
}

// closeTTY releases the cached terminal handle at the end of a run.
func (r *Runner) closeTTY() {
	if r.tty != nil {
		_ = r.tty.Close()
		r.tty = nil
		r.ttyIn = nil
	}
}
