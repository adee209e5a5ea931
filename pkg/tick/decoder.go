package tick

type decodeState uint8

const (
	decodeReady decodeState = iota
	decodeTick
	decodeTickHalfHex
	decodeFinished
)

type decodeStatus uint8

const (
	// needMore: the input was consumed without producing output.
	needMore decodeStatus = iota
	// emitted: a decoded byte or an error is available.
	emitted
	// exhausted: the decoder is finished and produces nothing more.
	exhausted
)

// decoder consumes tick-encoded input one byte at a time. Finished is
// absorbing, so at most one error is reported per decode.
type decoder struct {
	state decodeState
	high  byte
}

// push feeds b into the decoder, or the end of input when eof is set.
func (d *decoder) push(b byte, eof bool) (byte, decodeStatus, error) {
	switch d.state {
	case decodeFinished:
		return 0, exhausted, nil

	case decodeReady:
		switch {
		case eof:
			d.state = decodeFinished
			return 0, exhausted, nil
		case b == Marker:
			d.state = decodeTick
			return 0, needMore, nil
		case RequiresEscape(b):
			d.state = decodeFinished
			return 0, emitted, invalidByte(b)
		}
		return b, emitted, nil

	case decodeTick:
		switch {
		case eof:
			d.state = decodeFinished
			return 0, emitted, unexpectedEnd()
		case b == Marker:
			d.state = decodeReady
			return Marker, emitted, nil
		}
		d.state = decodeTickHalfHex
		d.high = b
		return 0, needMore, nil

	case decodeTickHalfHex:
		if eof {
			d.state = decodeFinished
			return 0, emitted, unexpectedEnd()
		}
		v, err := hexToByte(d.high, b)
		if err != nil {
			d.state = decodeFinished
			return 0, emitted, err
		}
		d.state = decodeReady
		return v, emitted, nil
	}
	panic("tick: unknown decoder state")
}
