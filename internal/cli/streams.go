// Package cli holds the plumbing shared by the command-line drivers:
// stdio streams, logger construction and common flags.
package cli

import (
	"bytes"
	"io"
	"os"
)

// IOStreams bundles STDIN, STDOUT and STDERR so commands can be run
// against in-memory buffers in tests.
type IOStreams struct {
	// In is the STDIN of the command.
	In io.Reader

	// Out is the STDOUT of the command.
	Out io.Writer

	// Err is the STDERR of the command.
	Err io.Writer
}

// NewIOStreams returns IOStreams bound to the process pipes.
func NewIOStreams() *IOStreams {
	return &IOStreams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// NewTestingIOStreams returns IOStreams backed by buffers along with the
// buffers themselves.
func NewTestingIOStreams() (*IOStreams, *bytes.Buffer, *bytes.Buffer, *bytes.Buffer) {
	in := &bytes.Buffer{}
	out := &bytes.Buffer{}
	err := &bytes.Buffer{}
	return &IOStreams{In: in, Out: out, Err: err}, in, out, err
}
