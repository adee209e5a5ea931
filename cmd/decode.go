package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ec-protocol/tick-go/pkg/tick"
)

var inPlace bool

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "decode tick-encoded input",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		return run(c, func(r io.Reader, w *countingWriter) (int64, error) {
			if inPlace {
				return decodeInPlace(r, w)
			}
			return pipe(tick.NewDecoder(r), w)
		})
	},
}

func init() {
	decodeCmd.Flags().BoolVar(&inPlace, "in-place", false, "read the whole input and decode it in one buffer")
}

func decodeInPlace(r io.Reader, w io.Writer) (int64, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return int64(len(buf)), fmt.Errorf("read input: %w", err)
	}
	dec, err := tick.DecodeInPlace(buf)
	if err != nil {
		return int64(len(buf)), err
	}
	_, err = w.Write(dec)
	return int64(len(buf)), err
}
