// Command factorial reads a non-negative integer and prints its factorial.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/classics/internal/cli"
	"github.com/katalvlaran/classics/internal/cmd"
)

func main() {
	streams := cli.NewIOStreams()
	if err := cmd.NewFactorialCommand(streams).Execute(); err != nil {
		if !cmd.IsReported(err) {
			fmt.Fprintln(streams.Err, err)
		}
		os.Exit(1)
	}
}
