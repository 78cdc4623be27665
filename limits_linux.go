//go:build linux

package xargs

import "golang.org/x/sys/unix"

// argMax mirrors the kernel's sizing of the exec argument area:
// a quarter of the stack rlimit, floored at 32 pages.
func argMax() int64 {
	var rl unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_STACK, &rl); err != nil || rl.Cur == unix.RLIM_INFINITY {
		return posixArgMax
	}
	if quarter := int64(rl.Cur / 4); quarter > posixArgMax {
		return quarter
	}
	return posixArgMax
}
