// Command insertsort sorts integers with binary insertion sort and prints them.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/classics/internal/cli"
	"github.com/katalvlaran/classics/internal/cmd"
)

func main() {
	streams := cli.NewIOStreams()
	if err := cmd.NewInsertSortCommand(streams).Execute(); err != nil {
		if !cmd.IsReported(err) {
			fmt.Fprintln(streams.Err, err)
		}
		os.Exit(1)
	}
}
