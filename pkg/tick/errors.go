package tick

import (
	"errors"
	"fmt"
)

// ErrorKind identifies why a tick-encoded input was rejected.
type ErrorKind uint8

const (
	// InvalidByte is a raw byte outside the literal set.
	InvalidByte ErrorKind = iota + 1
	// UnexpectedEnd is input ending after a marker or after one hex digit.
	UnexpectedEnd
	// UnexpectedEscape is a hex pair naming a byte that is never escaped that way.
	UnexpectedEscape
	// LowercaseHex is a hex pair using a-f.
	LowercaseHex
	// InvalidHex is a hex pair with a digit outside 0-9A-Fa-f.
	InvalidHex
)

var (
	ErrInvalidByte      = errors.New("tick: invalid encoded byte")
	ErrUnexpectedEnd    = errors.New("tick: unexpected end after `")
	ErrUnexpectedEscape = errors.New("tick: unexpected escape")
	ErrLowercaseHex     = errors.New("tick: lowercase hex sequence")
	ErrInvalidHex       = errors.New("tick: invalid hex sequence")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case InvalidByte:
		return ErrInvalidByte
	case UnexpectedEnd:
		return ErrUnexpectedEnd
	case UnexpectedEscape:
		return ErrUnexpectedEscape
	case LowercaseHex:
		return ErrLowercaseHex
	case InvalidHex:
		return ErrInvalidHex
	}
	return nil
}

func (k ErrorKind) String() string {
	switch k {
	case InvalidByte:
		return "InvalidByte"
	case UnexpectedEnd:
		return "UnexpectedEnd"
	case UnexpectedEscape:
		return "UnexpectedEscape"
	case LowercaseHex:
		return "LowercaseHex"
	case InvalidHex:
		return "InvalidHex"
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// EscapedHex is the two-digit hex pair that followed a marker.
type EscapedHex [2]byte

func (h EscapedHex) String() string {
	if RequiresEscape(h[0]) || RequiresEscape(h[1]) {
		return fmt.Sprintf("0x%02X 0x%02X", h[0], h[1])
	}
	return string([]byte{Marker, h[0], h[1]})
}

// DecodeError describes the first malformed symbol of a tick-encoded input.
// Byte is set for InvalidByte, Hex for the hex kinds and Char for
// UnexpectedEscape.
type DecodeError struct {
	Kind ErrorKind
	Byte byte
	Hex  EscapedHex
	Char byte
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case InvalidByte:
		return fmt.Sprintf("tick: invalid encoded byte 0x%02x", e.Byte)
	case UnexpectedEnd:
		return ErrUnexpectedEnd.Error()
	case UnexpectedEscape:
		return fmt.Sprintf("tick: unexpected escape %s, expected %c", e.Hex, e.Char)
	case LowercaseHex:
		return fmt.Sprintf("tick: expected uppercase hex sequence, found %s", e.Hex)
	case InvalidHex:
		return fmt.Sprintf("tick: invalid hex sequence %s", e.Hex)
	}
	return "tick: " + e.Kind.String()
}

// Is lets errors.Is match a DecodeError against the Err* sentinels.
func (e *DecodeError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && s == target
}

func unexpectedEnd() error {
	return &DecodeError{Kind: UnexpectedEnd}
}

func invalidByte(b byte) error {
	return &DecodeError{Kind: InvalidByte, Byte: b}
}
