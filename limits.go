package xargs

import "os"

const (
	// limitHeadroom is the POSIX-mandated reservation left for the child
	// to grow its environment and still exec another utility.
	limitHeadroom = 2048

	// posixArgMax is the kernel floor for the exec argument area.
	posixArgMax = 128 * 1024
)

// environBytes sizes the current environment the way execve accounts it:
// a pointer slot plus the NUL-terminated string per variable, plus the
// terminating slot.
func environBytes() int64 {
	n := ptrSize
	for _, kv := range os.Environ() {
		n += ptrSize + int64(len(kv)) + 1
	}
	return n
}

// defaultMaxBytes is the ceiling every byte limit is clamped to: the exec
// limit minus the environment already occupying it, minus the reservation.
func defaultMaxBytes() int64 {
	return argMax() - environBytes() - limitHeadroom
}

// clampBytes resolves a requested byte ceiling against the system-derived
// one. Zero or anything above the system ceiling yields the ceiling.
func clampBytes(requested int64) int64 {
	limit := defaultMaxBytes()
	if requested <= 0 || requested > limit {
		return limit
	}
	return requested
}
