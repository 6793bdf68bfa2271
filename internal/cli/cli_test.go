package cli

import (
	"log/slog"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestingIOStreams(t *testing.T) {
	streams, in, out, errOut := NewTestingIOStreams()
	in.WriteString("42")

	buf := make([]byte, 2)
	_, err := streams.In.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "42", string(buf))

	_, _ = streams.Out.Write([]byte("out"))
	_, _ = streams.Err.Write([]byte("err"))
	assert.Equal(t, "out", out.String())
	assert.Equal(t, "err", errOut.String())
}

func TestNewLogger_DefaultLevel(t *testing.T) {
	_, _, _, errOut := NewTestingIOStreams()
	log := NewLogger(errOut)

	log.Debug("hidden")
	log.Info("hidden")
	assert.Empty(t, errOut.String(), "debug and info must be filtered by default")

	log.Warn("shown", "k", 1)
	assert.Contains(t, errOut.String(), "shown")
	assert.Contains(t, errOut.String(), "k=1")
	assert.NotContains(t, errOut.String(), "\x1b[", "buffers are not terminals, no colour expected")
}

func TestNewLogger_Options(t *testing.T) {
	_, _, _, errOut := NewTestingIOStreams()
	log := NewLogger(errOut, WithLevel(slog.LevelDebug), WithNoColor(true))

	log.Debug("visible")
	assert.Contains(t, errOut.String(), "visible")
}

func TestGlobalFlags(t *testing.T) {
	var f GlobalFlags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddGlobalFlags(fs, &f)

	assert.Equal(t, DefaultLogLevel, f.LogLevel())

	require.NoError(t, fs.Parse([]string{"-v"}))
	assert.True(t, f.Verbose)
	assert.Equal(t, slog.LevelDebug, f.LogLevel())
}
