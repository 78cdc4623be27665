package xargs

import (
	"strings"
	"testing"
)

// fields splits the way scanWords does, for comparison.
func fields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r < 128 && isBlank(byte(r))
	})
}

// FuzzScanWordsRoundTrip drives a record through repeated batch scans and
// checks the reconstruction property: concatenated across batches, the
// accepted tokens equal the plain whitespace split of the input, in order,
// with no token split or duplicated.
func FuzzScanWordsRoundTrip(f *testing.F) {
	f.Add("a b c", uint8(0), uint16(0))
	f.Add("a  b\tc\n", uint8(2), uint16(8))
	f.Add("  leading and trailing  ", uint8(1), uint16(5))
	f.Add("one", uint8(0), uint16(3))
	f.Add("\x00binary\x01 data", uint8(3), uint16(64))

	f.Fuzz(func(t *testing.T, record string, maxArgs uint8, maxBytes uint16) {
		st := batchState{
			maxArgs:  int(maxArgs % 8),
			maxBytes: int64(maxBytes % 512),
		}

		var got []string
		emit := func(tok string) { got = append(got, tok) }

		rec := record
		for i := 0; ; i++ {
			if i > len(record)+1 {
				t.Fatalf("no progress after %d batches", i)
			}
			st.reset(0)
			before := len(got)
			v := st.scan(rec, emit)

			if st.maxArgs > 0 && st.entries > st.maxArgs {
				t.Fatalf("entries %d exceeded ceiling %d", st.entries, st.maxArgs)
			}
			if st.maxBytes > 0 && st.bytes > st.maxBytes {
				t.Fatalf("bytes %d exceeded ceiling %d", st.bytes, st.maxBytes)
			}

			if v.kind != batchFull {
				// Record consumed (needMore or batchFullConsumed; no
				// stop string is configured here).
				break
			}
			if v.off < 0 || v.off > len(rec) {
				t.Fatalf("leftover offset %d out of range for %q", v.off, rec)
			}
			next := rec[v.off:]
			if len(got) == before && next == rec {
				// Oversized token: no progress is possible. The runner
				// aborts with ErrArgTooLong here; nothing more to check.
				return
			}
			rec = next
		}

		want := fields(record)
		if len(got) != len(want) {
			t.Fatalf("token count = %d, want %d (%q vs %q)", len(got), len(want), got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("token %d = %q, want %q", i, got[i], want[i])
			}
		}
	})
}
