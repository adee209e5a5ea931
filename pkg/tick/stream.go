package tick

import (
	"bufio"
	"io"
)

type encodeWriter struct {
	w   io.Writer
	buf []byte
}

// NewEncoder returns a writer that tick-encodes everything written to it
// and passes the result to w.
func NewEncoder(w io.Writer) io.Writer {
	return &encodeWriter{w: w}
}

func (e *encodeWriter) Write(p []byte) (int, error) {
	e.buf, _ = AppendEncode(e.buf[:0], p)
	if _, err := e.w.Write(e.buf); err != nil {
		return 0, err
	}
	return len(p), nil
}

type decodeReader struct {
	br  *bufio.Reader
	it  *DecodeIter
	err error
}

// NewDecoder returns a reader that decodes tick-encoded data read from r.
// Escape sequences may span reads of r.
func NewDecoder(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	return &decodeReader{br: br, it: NewDecodeIter(br)}
}

func (d *decodeReader) Read(p []byte) (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	n := 0
	for n < len(p) {
		// Don't block on the source once there is something to return.
		if n > 0 && d.br.Buffered() == 0 {
			break
		}
		b, err := d.it.Next()
		if err != nil {
			d.err = err
			return n, err
		}
		p[n] = b
		n++
	}
	return n, nil
}
