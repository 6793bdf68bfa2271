package cmd

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/classics/factorial"
	"github.com/katalvlaran/classics/internal/cli"
)

const factorialPrompt = "Enter a non-negative integer: "

// NewFactorialCommand returns the factorial command. Without a positional
// argument it prompts on stdout and reads one token from stdin.
func NewFactorialCommand(streams *cli.IOStreams) *cobra.Command {
	var (
		flags  cli.GlobalFlags
		strict bool
	)

	cmd := &cobra.Command{
		Use:           "factorial [n]",
		Short:         "Print n! for a non-negative integer n",
		Long:          "Print n! computed in 64-bit unsigned arithmetic. Results past 20! wrap modulo 2^64 unless --strict is set.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			log := cli.NewLogger(streams.Err, cli.WithLevel(flags.LogLevel()))
			return runFactorial(streams, log, args, strict)
		},
	}

	cli.AddGlobalFlags(cmd.Flags(), &flags)
	cmd.Flags().BoolVar(&strict, "strict", false, "fail instead of wrapping when n! overflows 64 bits")

	return cmd
}

func runFactorial(streams *cli.IOStreams, log *slog.Logger, args []string, strict bool) error {
	token, err := factorialToken(streams, args)
	if err != nil {
		log.Debug("reading input failed", "err", err)
		fmt.Fprintln(streams.Err, invalidInputMessage)
		return reported(fmt.Errorf("%w: %v", ErrInvalidInput, err))
	}

	n, err := strconv.ParseUint(token, 10, 64)
	if err != nil {
		log.Debug("parsing input failed", "token", token, "err", err)
		fmt.Fprintln(streams.Err, invalidInputMessage)
		return reported(fmt.Errorf("%w: %v", ErrInvalidInput, err))
	}
	log.Debug("computing factorial", "n", n, "strict", strict)

	var result uint64
	if strict {
		result, err = factorial.Checked(n)
		if err != nil {
			fmt.Fprintf(streams.Err, "Factorial of %d overflows uint64.\n", n)
			return reported(err)
		}
	} else {
		result = factorial.Factorial(n)
		if n > factorial.MaxExact {
			log.Debug("result wrapped modulo 2^64", "n", n)
		}
	}

	fmt.Fprintf(streams.Out, "Factorial of %d is %d\n", n, result)
	return nil
}

// factorialToken returns the positional argument, or prompts and reads
// one whitespace-delimited token from stdin.
func factorialToken(streams *cli.IOStreams, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	fmt.Fprint(streams.Out, factorialPrompt)
	var token string
	if _, err := fmt.Fscan(streams.In, &token); err != nil {
		return "", err
	}
	return token, nil
}
