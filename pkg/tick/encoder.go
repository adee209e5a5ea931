package tick

type encodeState uint8

const (
	encodeReady encodeState = iota
	encodePendingOne
	encodePendingTwo
)

// encoder turns one input byte into one to three output characters. push
// returns the first character; the rest are drained with next before the
// following push.
type encoder struct {
	state   encodeState
	pending [2]byte
}

func (e *encoder) push(b byte) byte {
	switch {
	case b == Marker:
		e.state = encodePendingOne
		e.pending[0] = Marker
	case RequiresEscape(b):
		e.state = encodePendingTwo
		e.pending[0], e.pending[1] = byteToHex(b)
	default:
		e.state = encodeReady
		return b
	}
	return Marker
}

func (e *encoder) next() (byte, bool) {
	switch e.state {
	case encodePendingOne:
		e.state = encodeReady
		return e.pending[0], true
	case encodePendingTwo:
		e.state = encodePendingOne
		c := e.pending[0]
		e.pending[0] = e.pending[1]
		return c, true
	}
	return 0, false
}
