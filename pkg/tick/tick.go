// Package tick implements tick-encoding, a reversible mapping from
// arbitrary bytes to printable ASCII. Text bytes are kept as they are, the
// backtick marker is doubled and every other byte becomes a backtick
// followed by two uppercase hex digits.
package tick

import (
	"slices"
	"strings"
)

// Encode returns the tick-encoding of src. When no byte of src needs
// escaping the result is src itself, so it shares src's storage.
func Encode(src []byte) []byte {
	i := firstEscape(src)
	if i < 0 {
		return src
	}

	dst := make([]byte, i, i+EncodedLen(src[i:]))
	copy(dst, src[:i])
	dst, _ = AppendEncode(dst, src[i:])
	return dst
}

// EncodeToString returns the tick-encoding of src as a string.
func EncodeToString(src []byte) string {
	return string(Encode(src))
}

// Decode returns the bytes represented by the tick-encoded src. When src
// contains no escape sequence the result is src itself.
//
// Only the canonical encoding is accepted; the first malformed symbol is
// reported as a *DecodeError.
func Decode(src []byte) ([]byte, error) {
	i := firstEscape(src)
	if i < 0 {
		return src, nil
	}

	dst := make([]byte, i, len(src))
	copy(dst, src[:i])
	dst, _, err := AppendDecode(dst, src[i:])
	if err != nil {
		return nil, err
	}
	return dst, nil
}

// DecodeString decodes the tick-encoded s.
func DecodeString(s string) ([]byte, error) {
	return Decode([]byte(s))
}

// AppendEncode appends the tick-encoding of src to dst and returns the
// extended buffer along with the number of bytes appended.
func AppendEncode(dst, src []byte) ([]byte, int) {
	dst = slices.Grow(dst, len(src))
	n := 0
	for _, b := range src {
		sym, w := encodeSymbol(b)
		dst = append(dst, sym[:w]...)
		n += w
	}
	return dst, n
}

// EncodeToBuilder writes the tick-encoding of src to sb and returns the
// number of bytes written.
func EncodeToBuilder(sb *strings.Builder, src []byte) int {
	sb.Grow(len(src))
	n := 0
	for _, b := range src {
		sym, w := encodeSymbol(b)
		sb.Write(sym[:w])
		n += w
	}
	return n
}

// AppendDecode decodes src and appends the result to dst. It returns the
// extended buffer and the number of bytes appended. On error, dst holds
// whatever was decoded before the malformed symbol.
func AppendDecode(dst, src []byte) ([]byte, int, error) {
	n := 0
	for i := 0; i < len(src); {
		b, w, err := decodeSymbol(src, i)
		if err != nil {
			return dst, n, err
		}
		dst = append(dst, b)
		n++
		i += w
	}
	return dst, n, nil
}

// EncodedLen returns the length of the tick-encoding of src.
func EncodedLen(src []byte) int {
	n := 0
	for _, b := range src {
		switch {
		case b == Marker:
			n += 2
		case RequiresEscape(b):
			n += 3
		default:
			n++
		}
	}
	return n
}

// MaxEncodedLen returns the worst-case encoded length of n bytes.
func MaxEncodedLen(n int) int {
	return 3 * n
}

func encodeSymbol(b byte) ([3]byte, int) {
	switch {
	case b == Marker:
		return [3]byte{Marker, Marker}, 2
	case RequiresEscape(b):
		hi, lo := byteToHex(b)
		return [3]byte{Marker, hi, lo}, 3
	}
	return [3]byte{b}, 1
}

// decodeSymbol decodes the plain byte, doubled marker or marker+hex pair
// starting at src[i] and returns the byte with the symbol's width.
func decodeSymbol(src []byte, i int) (byte, int, error) {
	c := src[i]
	if c != Marker {
		if RequiresEscape(c) {
			return 0, 0, invalidByte(c)
		}
		return c, 1, nil
	}

	if i+1 >= len(src) {
		return 0, 0, unexpectedEnd()
	}
	hi := src[i+1]
	if hi == Marker {
		return Marker, 2, nil
	}
	if i+2 >= len(src) {
		return 0, 0, unexpectedEnd()
	}
	b, err := hexToByte(hi, src[i+2])
	if err != nil {
		return 0, 0, err
	}
	return b, 3, nil
}
