package handler

import "io"

// DefaultChunkSize is the read size used when HandleIn is given none.
const DefaultChunkSize = 64 * 1024

// HandleIn reads r in chunks of up to size bytes and sends a copy of each
// chunk on i. It closes i when r is exhausted or fails, and returns the
// number of bytes read.
func HandleIn(r io.Reader, i chan<- []byte, size int) (int64, error) {
	defer close(i)

	if size <= 0 {
		size = DefaultChunkSize
	}
	buf := make([]byte, size)
	var total int64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			s := make([]byte, n)
			copy(s, buf[:n])
			i <- s
			total += int64(n)
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}
