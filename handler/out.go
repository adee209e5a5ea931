package handler

import (
	"io"
	"time"
)

const pkgSize = 64*1024 - 60 - 1

// flushDelay is how long HandleOut waits for more data before writing a
// partial batch.
const flushDelay = 100 * time.Microsecond

// HandleOut batches the chunks received on o and writes them to w until o
// is closed. It returns the number of bytes written. After a write error
// the rest of o is drained so the sender never blocks.
func HandleOut(w io.Writer, o <-chan []byte) (int64, error) {
	var total int64
	buf := make([]byte, 0, pkgSize)

	flush := func() error {
		for off := 0; off < len(buf); {
			l := min(len(buf)-off, pkgSize)
			n, err := w.Write(buf[off : off+l])
			total += int64(n)
			if err != nil {
				return err
			}
			off += l
		}
		buf = buf[:0]
		return nil
	}

	for {
		b, ok := <-o
		if !ok {
			err := flush()
			return total, err
		}
		buf = append(buf, b...)

	bufContext:
		for len(buf) < pkgSize {
			select {
			case b, ok = <-o:
				if !ok {
					err := flush()
					return total, err
				}
				buf = append(buf, b...)
			case <-time.After(flushDelay):
				break bufContext
			}
		}

		if err := flush(); err != nil {
			for range o {
			}
			return total, err
		}
	}
}
