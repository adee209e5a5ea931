package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/ec-protocol/tick-go/pkg/tick"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "tick-encode the input",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		return run(c, func(r io.Reader, w *countingWriter) (int64, error) {
			return pipe(r, tick.NewEncoder(w))
		})
	},
}
