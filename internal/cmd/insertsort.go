package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/classics/insertsort"
	"github.com/katalvlaran/classics/internal/cli"
)

// demoValues is sorted when no arguments are given.
var demoValues = [...]int{5, 2, 9, 1, 5, 6}

// NewInsertSortCommand returns the insertsort command. With no arguments
// it sorts the demo array {5, 2, 9, 1, 5, 6}.
func NewInsertSortCommand(streams *cli.IOStreams) *cobra.Command {
	var flags cli.GlobalFlags

	cmd := &cobra.Command{
		Use:           "insertsort [ints...]",
		Short:         "Sort integers with binary insertion sort and print them",
		Long:          "Sort the given integers, or the demo array 5 2 9 1 5 6 when none are given. Put -- before negative values: insertsort -- -3 4.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			log := cli.NewLogger(streams.Err, cli.WithLevel(flags.LogLevel()))
			return runInsertSort(streams, log, args)
		},
	}

	cli.AddGlobalFlags(cmd.Flags(), &flags)

	return cmd
}

func runInsertSort(streams *cli.IOStreams, log *slog.Logger, args []string) error {
	values, err := sortInput(args)
	if err != nil {
		log.Debug("parsing input failed", "err", err)
		fmt.Fprintln(streams.Err, invalidInputMessage)
		return reported(fmt.Errorf("%w: %v", ErrInvalidInput, err))
	}

	insertsort.InsertionSort(values, insertsort.WithOnInsert(func(key, pos, from int) {
		log.Debug("inserted", "key", key, "from", from, "pos", pos, "shifted", from-pos)
	}))
	log.Debug("sorted", "len", len(values), "ok", insertsort.IsSorted(values))

	fmt.Fprintln(streams.Out, formatInts(values))
	return nil
}

// sortInput parses args, falling back to a copy of demoValues.
func sortInput(args []string) ([]int, error) {
	if len(args) == 0 {
		values := demoValues
		return values[:], nil
	}

	values := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func formatInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
