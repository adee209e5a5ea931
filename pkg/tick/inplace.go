package tick

// DecodeInPlace decodes the tick-encoded buf into its own storage and
// returns the decoded prefix of buf. Bytes past the returned prefix are
// stale. On error the contents of buf are unspecified.
func DecodeInPlace(buf []byte) ([]byte, error) {
	i := firstEscape(buf)
	if i < 0 {
		return buf, nil
	}

	// buf[:write] is decoded, buf[read:] is still encoded. A symbol never
	// decodes to more bytes than it occupies, so write <= read.
	write, read := i, i
	for read < len(buf) {
		b, w, err := decodeSymbol(buf, read)
		if err != nil {
			return nil, err
		}
		buf[write] = b
		write++
		read += w
	}
	return buf[:write], nil
}
