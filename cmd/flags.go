package cmd

import (
	"github.com/spf13/pflag"

	"github.com/ec-protocol/tick-go/handler"
)

func addIOFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&in, "in", "i", "-", "input file path, - for stdin")
	fs.StringVarP(&out, "out", "o", "-", "output file path, - for stdout")
	fs.BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
	fs.IntVar(&chunk, "chunk", handler.DefaultChunkSize, "read chunk size in bytes")
}
