//go:build !linux && !darwin

package xargs

// argMax falls back to the POSIX minimum where no portable query exists.
func argMax() int64 { return posixArgMax }
