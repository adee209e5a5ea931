package tick

// Marker introduces an escape sequence. Doubled, it stands for itself.
const Marker byte = '`'

var escapeTable = func() [256]bool {
	var t [256]bool
	for i := range t {
		b := byte(i)
		switch {
		case b == Marker:
			t[i] = true
		case b == '\t', b == '\n', b == '\r':
		case b >= ' ' && b <= '~':
		default:
			t[i] = true
		}
	}
	return t
}()

// RequiresEscape reports whether b must be escaped in tick-encoded text.
//
// Tab, newline, carriage return and the printable ASCII range from space
// to tilde are written literally, except for the backtick marker itself.
func RequiresEscape(b byte) bool {
	return escapeTable[b]
}

// firstEscape returns the index of the first byte in p that requires
// escaping, or -1.
func firstEscape(p []byte) int {
	for i, b := range p {
		if escapeTable[b] {
			return i
		}
	}
	return -1
}
