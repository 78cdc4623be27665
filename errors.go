package xargs

import "errors"

// Sentinel errors for runner failures.
var (
	// ErrArgTooLong indicates a single input token whose serialized size
	// exceeds the byte ceiling on its own. No batch can ever contain it,
	// so the whole run aborts rather than retrying.
	ErrArgTooLong = errors.New("xargs: argument too long")
)
