package tick

import (
	"io"
	"iter"
)

// EncodeIter encodes bytes pulled from a source one output character at
// a time. It consumes the source once and is not restartable.
type EncodeIter struct {
	r   io.ByteReader
	enc encoder
	err error
}

// NewEncodeIter returns an EncodeIter reading from r.
func NewEncodeIter(r io.ByteReader) *EncodeIter {
	return &EncodeIter{r: r}
}

// Next returns the next encoded character. It returns io.EOF once the
// source is exhausted, or the source's error.
func (it *EncodeIter) Next() (byte, error) {
	if c, ok := it.enc.next(); ok {
		return c, nil
	}
	if it.err != nil {
		return 0, it.err
	}
	b, err := it.r.ReadByte()
	if err != nil {
		it.err = err
		return 0, err
	}
	return it.enc.push(b), nil
}

// DecodeIter decodes tick-encoded bytes pulled from a source. After the
// end of input or the first error it returns io.EOF without reading the
// source again.
type DecodeIter struct {
	r        io.ByteReader
	dec      decoder
	consumed int64
}

// NewDecodeIter returns a DecodeIter reading from r.
func NewDecodeIter(r io.ByteReader) *DecodeIter {
	return &DecodeIter{r: r}
}

// Next returns the next decoded byte. It returns a *DecodeError for
// malformed input, the source's error if reading fails, and io.EOF at the
// end.
func (it *DecodeIter) Next() (byte, error) {
	for {
		if it.dec.state == decodeFinished {
			return 0, io.EOF
		}

		b, err := it.r.ReadByte()
		eof := false
		switch {
		case err == io.EOF:
			eof = true
		case err != nil:
			it.dec.state = decodeFinished
			return 0, err
		default:
			it.consumed++
		}

		out, status, err := it.dec.push(b, eof)
		switch status {
		case needMore:
			continue
		case exhausted:
			return 0, io.EOF
		}
		if err != nil {
			return 0, err
		}
		return out, nil
	}
}

// Consumed returns the number of bytes read from the source so far.
func (it *DecodeIter) Consumed() int64 {
	return it.consumed
}

// EncodeSeq returns a sequence of the encoded characters of seq. seq may
// be unbounded.
func EncodeSeq(seq iter.Seq[byte]) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		var enc encoder
		for b := range seq {
			if !yield(enc.push(b)) {
				return
			}
			for c, ok := enc.next(); ok; c, ok = enc.next() {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// DecodeSeq returns a sequence of the bytes decoded from seq. A malformed
// input yields one error and ends the sequence.
func DecodeSeq(seq iter.Seq[byte]) iter.Seq2[byte, error] {
	return func(yield func(byte, error) bool) {
		var dec decoder
		for b := range seq {
			out, status, err := dec.push(b, false)
			switch {
			case status == needMore:
				continue
			case err != nil:
				yield(0, err)
				return
			}
			if !yield(out, nil) {
				return
			}
		}
		if _, status, err := dec.push(0, true); status == emitted && err != nil {
			yield(0, err)
		}
	}
}
