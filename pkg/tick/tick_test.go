package tick

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codecCases = []struct {
	raw     string
	encoded string
}{
	{"", ""},
	{"hello", "hello"},
	{"`", "``"},
	{"\xFF", "`FF"},
	{"\x00", "`00"},
	{"hello world!\r\n\thi there", "hello world!\r\n\thi there"},
	{"foo bar 🙂", "foo bar `F0`9F`99`82"},
	{"x: \x00", "x: `00"},
	{"``a\x7F", "````a`7F"},
}

func TestEncode(t *testing.T) {
	for _, tt := range codecCases {
		assert.Equal(t, tt.encoded, string(Encode([]byte(tt.raw))), "%q", tt.raw)
		assert.Equal(t, tt.encoded, EncodeToString([]byte(tt.raw)))
	}
}

func TestDecode(t *testing.T) {
	for _, tt := range codecCases {
		got, err := Decode([]byte(tt.encoded))
		require.NoError(t, err, "%q", tt.encoded)
		assert.Equal(t, tt.raw, string(got))

		got, err = DecodeString(tt.encoded)
		require.NoError(t, err)
		assert.Equal(t, tt.raw, string(got))
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, tt := range decodeErrorCases {
		got, err := Decode([]byte(tt.in))
		assert.Nil(t, got)
		assert.Equal(t, tt.want, err, "%q", tt.in)
	}
}

func TestEncodeBorrowsSafeInput(t *testing.T) {
	src := []byte("hello world!\r\n\t~")
	enc := Encode(src)
	require.Len(t, enc, len(src))
	assert.Same(t, &src[0], &enc[0])

	src = []byte("hello\x00")
	enc = Encode(src)
	assert.NotSame(t, &src[0], &enc[0])
}

func TestDecodeBorrowsUnescapedInput(t *testing.T) {
	src := []byte("no markers here")
	dec, err := Decode(src)
	require.NoError(t, err)
	assert.Same(t, &src[0], &dec[0])

	src = []byte("one `` marker")
	dec, err = Decode(src)
	require.NoError(t, err)
	assert.NotSame(t, &src[0], &dec[0])
	assert.Equal(t, "one ` marker", string(dec))
}

func TestAppendEncode(t *testing.T) {
	dst := []byte("prefix:")
	dst, n := AppendEncode(dst, []byte("hello, world! 🙂"))
	assert.Equal(t, "prefix:hello, world! `F0`9F`99`82", string(dst))
	assert.Equal(t, 26, n)

	_, n = AppendEncode(nil, nil)
	assert.Zero(t, n)
}

func TestEncodeToBuilder(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("> ")
	n := EncodeToBuilder(&sb, []byte("hello, world! 🙂"))
	assert.Equal(t, "> hello, world! `F0`9F`99`82", sb.String())
	assert.Equal(t, 26, n)
}

func TestAppendDecode(t *testing.T) {
	dst := []byte("prefix:")
	dst, n, err := AppendDecode(dst, []byte("hello, world! `F0`9F`99`82"))
	require.NoError(t, err)
	assert.Equal(t, "prefix:hello, world! 🙂", string(dst))
	assert.Equal(t, 18, n)
}

func TestAppendDecodeErrors(t *testing.T) {
	for _, tt := range decodeErrorCases {
		_, _, err := AppendDecode([]byte("keep"), []byte(tt.in))
		assert.Equal(t, tt.want, err, "%q", tt.in)
	}

	dst, n, err := AppendDecode(nil, []byte("ab`00`zz"))
	assert.ErrorIs(t, err, ErrInvalidHex)
	assert.Equal(t, []byte{'a', 'b', 0x00}, dst)
	assert.Equal(t, 3, n)
}

func TestEncodedLen(t *testing.T) {
	for _, tt := range codecCases {
		assert.Equal(t, len(tt.encoded), EncodedLen([]byte(tt.raw)))
		assert.LessOrEqual(t, EncodedLen([]byte(tt.raw)), MaxEncodedLen(len(tt.raw)))
	}
}
