package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ShayanBytes/Practices/fibo"

	"github.com/spf13/cobra"
)

type options struct {
	verbose bool
	big     bool
}

func newCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "fib",
		Short: "Print the n-th Fibonacci number, reading n from standard input",
		Long: `Reads one integer n from standard input and prints F(n), with F(1) = F(2) = 1.
Values are 32-bit signed and wrap on overflow unless --big is given.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := fibo.NullLog()
			if opts.verbose {
				logger = fibo.WriterLog(cmd.ErrOrStderr(), "fib: ")
			}
			return run(cmd.InOrStdin(), cmd.OutOrStdout(), logger, opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log the parsed index and result to stderr")
	cmd.Flags().BoolVar(&opts.big, "big", false, "use arbitrary precision instead of 32-bit arithmetic")
	return cmd
}

func run(in io.Reader, out io.Writer, logger *log.Logger, opts *options) error {
	if opts.big {
		n, err := fibo.ReadIndex64(in)
		if err != nil {
			return err
		}
		logger.Printf("n = %d (arbitrary precision)", n)
		fn, err := fibo.BigFib(n)
		if err != nil {
			return err
		}
		logger.Printf("F(%d) = %v", n, fn)
		_, err = fmt.Fprintln(out, fn)
		return err
	}

	n, err := fibo.ReadIndex(in)
	if err != nil {
		return err
	}
	logger.Printf("n = %d", n)
	fn, err := fibo.Fib(n)
	if err != nil {
		return err
	}
	logger.Printf("F(%d) = %d", n, fn)
	_, err = fmt.Fprintln(out, fn)
	return err
}

func main() {
	if err := newCommand().Execute(); err != nil {
		die("fib", err)
	}
}

func die(message string, err error) {
	if err == nil {
		fmt.Fprintln(os.Stderr, message)
	} else {
		fmt.Fprintf(os.Stderr, "%s: %v\n", message, err)
	}
	os.Exit(1)
}
