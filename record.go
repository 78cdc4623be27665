package xargs

import (
	"bufio"
	"io"
)

// recordReader reads delimiter-terminated records from a stream. Like
// getdelim, a final record without a trailing delimiter is still
// delivered; the call after it reports io.EOF.
type recordReader struct {
	r     *bufio.Reader
	delim byte
	eof   bool
}

func newRecordReader(r io.Reader, delim byte) *recordReader {
	return &recordReader{r: bufio.NewReader(r), delim: delim}
}

// next returns the next record with its trailing delimiter stripped.
func (rr *recordReader) next() (string, error) {
	if rr.eof {
		return "", io.EOF
	}
	s, err := rr.r.ReadString(rr.delim)
	if err != nil {
		rr.eof = true
		if err == io.EOF && s != "" {
			return s, nil
		}
		return "", err
	}
	return s[:len(s)-1], nil
}
