package xargs

import "math/bits"

// ptrSize is the per-argument pointer-slot overhead reserved against the
// byte ceiling in record mode. Whitespace mode deliberately omits it,
// matching busybox 1.30.1 and findutils 4.7.0 accounting.
const ptrSize int64 = bits.UintSize / 8

// verdictKind classifies the outcome of scanning one record.
type verdictKind int

const (
	// needMore: the record fit entirely; the batch can take more input.
	needMore verdictKind = iota

	// batchFull: a ceiling was hit; verdict.off marks the start of the
	// unconsumed leftover within the record.
	batchFull

	// batchFullConsumed: a ceiling was hit, but nothing of the record
	// remains unconsumed.
	batchFullConsumed

	// stopHit: a token matched the configured stop string.
	stopHit
)

// verdict is the tagged result of batchState.scan. off is only meaningful
// for batchFull; in record mode it is always 0 (the whole record is the
// leftover).
type verdict struct {
	kind verdictKind
	off  int
}

// batchState holds the running counters for one batch together with the
// ceilings they are checked against. Counters are reset at every batch
// boundary; the ceilings and modes are fixed for the life of a run.
type batchState struct {
	entries int   // accepted input tokens this batch; the prefix is not counted
	bytes   int64 // serialized argv bytes this batch, starting at the prefix baseline

	maxArgs   int    // entry ceiling; 0 = unlimited
	maxBytes  int64  // byte ceiling; 0 = unlimited
	stopStr   string // stop string, whitespace mode only; "" = disabled
	nullDelim bool   // record mode: one record is one token
}

// reset prepares the counters for a new batch. baseline is the byte cost
// of the fixed command prefix.
func (b *batchState) reset(baseline int64) {
	b.entries = 0
	b.bytes = baseline
}

// scan classifies one raw record against the current counters, invoking
// emit for each accepted token. emit may be nil to count without
// collecting; counter updates are identical either way.
func (b *batchState) scan(record string, emit func(string)) verdict {
	if b.nullDelim {
		return b.scanRecord(record, emit)
	}
	return b.scanWords(record, emit)
}

// scanWords chops a whitespace-delimited record into tokens. The byte
// counter advances once per token byte plus once for its terminator,
// checked with >= before the separator test, so an oversized token is
// deferred whole: a token is never split across batches.
func (b *batchState) scanWords(record string, emit func(string)) verdict {
	i := 0
	for i < len(record) {
		for i < len(record) && isBlank(record[i]) {
			i++
		}

		if b.maxArgs > 0 && b.entries >= b.maxArgs {
			if i < len(record) {
				return verdict{kind: batchFull, off: i}
			}
			return verdict{kind: batchFullConsumed}
		}
		if i >= len(record) {
			break
		}

		start := i
		for {
			b.bytes++
			if b.maxBytes > 0 && b.bytes >= b.maxBytes {
				return verdict{kind: batchFull, off: start}
			}
			if i >= len(record) || isBlank(record[i]) {
				break
			}
			i++
		}

		tok := record[start:i]
		if b.stopStr != "" && tok == b.stopStr {
			return verdict{kind: stopHit}
		}
		if emit != nil {
			emit(tok)
		}
		b.entries++
	}
	return verdict{kind: needMore}
}

// scanRecord takes the whole record as one token. The ceilings are checked
// after adding the record's cost; on either ceiling the record itself is
// the leftover, deferred whole to the next batch.
func (b *batchState) scanRecord(record string, emit func(string)) verdict {
	b.bytes += ptrSize + int64(len(record)) + 1
	if b.maxBytes > 0 && b.bytes >= b.maxBytes {
		return verdict{kind: batchFull}
	}
	if b.maxArgs > 0 && b.entries >= b.maxArgs {
		return verdict{kind: batchFull}
	}
	if emit != nil {
		emit(record)
	}
	b.entries++
	return verdict{kind: needMore}
}

// isBlank reports C-locale isspace for a single byte.
func isBlank(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
