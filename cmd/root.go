package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ec-protocol/tick-go/handler"
)

var verbose bool
var in string
var out string
var chunk int

var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "tick-go",
	Short: "tick-encode and decode binary data",
	Long: `tick-go converts between raw bytes and tick-encoding, a printable ASCII
form that keeps text readable and escapes everything else as ` + "`XX" + ` hex pairs.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
	PersistentPostRun: func(*cobra.Command, []string) {
		_ = logger.Sync()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	addIOFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(encodeCmd, decodeCmd, checkCmd)
}

func setupLogger(*cobra.Command, []string) error {
	if !verbose {
		logger = zap.NewNop()
		return nil
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	logger = l
	return nil
}

func openInput(c *cobra.Command) (io.ReadCloser, error) {
	if in == "" || in == "-" {
		return io.NopCloser(c.InOrStdin()), nil
	}
	f, err := os.Open(in)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func openOutput(c *cobra.Command) (io.WriteCloser, error) {
	if out == "" || out == "-" {
		return nopWriteCloser{c.OutOrStdout()}, nil
	}
	f, err := os.Create(out)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return f, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// pipe moves r to w through the handler pumps and returns the number of
// bytes read from r.
func pipe(r io.Reader, w io.Writer) (int64, error) {
	i := make(chan []byte)
	done := make(chan struct{})
	var read int64
	var rerr error
	go func() {
		read, rerr = handler.HandleIn(r, i, chunk)
		close(done)
	}()

	_, werr := handler.HandleOut(w, i)
	<-done
	if rerr != nil {
		return read, rerr
	}
	return read, werr
}

// run opens the configured input and output and hands them to fn.
func run(c *cobra.Command, fn func(r io.Reader, w *countingWriter) (int64, error)) error {
	r, err := openInput(c)
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := openOutput(c)
	if err != nil {
		return err
	}
	cw := &countingWriter{w: w}

	read, err := fn(r, cw)
	if cerr := w.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close output: %w", cerr)
	}

	fields := []zap.Field{
		zap.String("command", c.Name()),
		zap.String("in", in),
		zap.String("out", out),
		zap.Int64("read", read),
		zap.Int64("written", cw.n),
	}
	if err != nil {
		logger.Error("failed", append(fields, zap.Error(err))...)
		return err
	}
	logger.Info("done", fields...)
	return nil
}
