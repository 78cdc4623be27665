//go:build darwin

package xargs

import "golang.org/x/sys/unix"

// argMax queries kern.argmax, the fixed exec argument-area size on Darwin.
func argMax() int64 {
	v, err := unix.SysctlUint32("kern.argmax")
	if err != nil {
		return posixArgMax
	}
	return int64(v)
}
