package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ec-protocol/tick-go/pkg/tick"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "verify the input is canonical tick-encoding",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		return run(c, func(r io.Reader, w *countingWriter) (int64, error) {
			it := tick.NewDecodeIter(bufio.NewReader(r))
			for {
				_, err := it.Next()
				if err == io.EOF {
					break
				}
				if err != nil {
					return it.Consumed(), fmt.Errorf("after %d bytes: %w", it.Consumed(), err)
				}
			}
			_, err := fmt.Fprintln(w, "ok")
			return it.Consumed(), err
		})
	},
}
