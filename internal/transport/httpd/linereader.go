package httpd

// LineReader accumulates bytes into discrete request lines. Carriage
// returns are ignored; a line feed completes the line (possibly empty) and
// resets the buffer. Bytes beyond the cap are dropped, so an overlong line
// is still completed on the next line feed with its captured head intact.
type LineReader struct {
	buf []byte
	max int
}

// NewLineReader builds a reader that keeps at most max bytes per line.
func NewLineReader(max int) *LineReader {
	return &LineReader{
		buf: make([]byte, 0, 64),
		max: max,
	}
}

// Feed consumes one byte. When the byte completes a line, Feed returns it
// (carriage returns stripped) with complete=true and clears the buffer.
func (r *LineReader) Feed(b byte) (line string, complete bool) {
	switch b {
	case '\r':
		return "", false
	case '\n':
		line = string(r.buf)
		r.buf = r.buf[:0]
		return line, true
	default:
		if len(r.buf) < r.max {
			r.buf = append(r.buf, b)
		}
		return "", false
	}
}
