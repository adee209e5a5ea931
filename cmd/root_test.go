package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ec-protocol/tick-go/handler"
	"github.com/ec-protocol/tick-go/pkg/tick"
)

func execute(t *testing.T, stdin []byte, args ...string) (string, error) {
	t.Helper()
	in, out, verbose, inPlace, chunk = "-", "-", false, false, handler.DefaultChunkSize

	var stdout bytes.Buffer
	rootCmd.SetIn(bytes.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), err
}

func TestEncodeCommand(t *testing.T) {
	got, err := execute(t, []byte("foo bar \xF0\x9F\x99\x82`"), "encode")
	require.NoError(t, err)
	assert.Equal(t, "foo bar `F0`9F`99`82``", got)
}

func TestDecodeCommand(t *testing.T) {
	got, err := execute(t, []byte("foo bar `F0`9F`99`82``"), "decode", "--chunk", "3")
	require.NoError(t, err)
	assert.Equal(t, "foo bar \xF0\x9F\x99\x82`", got)

	got, err = execute(t, []byte("bytes: `00`01``"), "decode", "--in-place")
	require.NoError(t, err)
	assert.Equal(t, "bytes: \x00\x01`", got)
}

func TestDecodeCommandRejectsInvalidInput(t *testing.T) {
	_, err := execute(t, []byte("ok `fe"), "decode")
	assert.ErrorIs(t, err, tick.ErrLowercaseHex)

	_, err = execute(t, []byte("ok `"), "decode", "--in-place")
	assert.ErrorIs(t, err, tick.ErrUnexpectedEnd)
}

func TestCheckCommand(t *testing.T) {
	got, err := execute(t, []byte("hello `00``"), "check")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", got)

	_, err = execute(t, []byte("hello `65"), "check")
	assert.ErrorIs(t, err, tick.ErrUnexpectedEscape)
	assert.Contains(t, err.Error(), "after 9 bytes")
}

func TestEncodeDecodeFiles(t *testing.T) {
	dir := t.TempDir()
	raw := make([]byte, 256*3)
	for i := range raw {
		raw[i] = byte(i)
	}
	rawPath := filepath.Join(dir, "raw.bin")
	encPath := filepath.Join(dir, "raw.tick")
	decPath := filepath.Join(dir, "raw.out")
	require.NoError(t, os.WriteFile(rawPath, raw, 0644))

	_, err := execute(t, nil, "encode", "-i", rawPath, "-o", encPath, "-v")
	require.NoError(t, err)
	enc, err := os.ReadFile(encPath)
	require.NoError(t, err)
	assert.Equal(t, tick.EncodeToString(raw), string(enc))

	_, err = execute(t, nil, "decode", "-i", encPath, "-o", decPath)
	require.NoError(t, err)
	dec, err := os.ReadFile(decPath)
	require.NoError(t, err)
	assert.Equal(t, raw, dec)
}

func TestMissingInputFile(t *testing.T) {
	_, err := execute(t, nil, "encode", "-i", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
