package tick

const upperhex = "0123456789ABCDEF"

func byteToHex(b byte) (hi, lo byte) {
	return upperhex[b>>4], upperhex[b&0x0f]
}

type digitClass uint8

const (
	digitValid digitClass = iota
	digitLower
	digitInvalid
)

func classifyDigit(c byte) (byte, digitClass) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', digitValid
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, digitValid
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, digitLower
	default:
		return 0, digitInvalid
	}
}

// hexToByte decodes the two digits following a marker. Only the canonical
// form is accepted: uppercase digits, and a value that could not have been
// written literally or as a doubled marker.
func hexToByte(hi, lo byte) (byte, error) {
	h, hc := classifyDigit(hi)
	l, lc := classifyDigit(lo)
	hex := EscapedHex{hi, lo}
	switch {
	case hc == digitInvalid || lc == digitInvalid:
		return 0, &DecodeError{Kind: InvalidHex, Hex: hex}
	case hc == digitLower || lc == digitLower:
		return 0, &DecodeError{Kind: LowercaseHex, Hex: hex}
	}

	b := h<<4 | l
	if b == Marker || !RequiresEscape(b) {
		return 0, &DecodeError{Kind: UnexpectedEscape, Hex: hex, Char: b}
	}
	return b, nil
}
