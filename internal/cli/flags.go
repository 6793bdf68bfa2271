package cli

import (
	"log/slog"

	"github.com/spf13/pflag"
)

// GlobalFlags are the flags every driver accepts.
type GlobalFlags struct {
	Verbose bool
}

// AddGlobalFlags registers GlobalFlags on fs.
func AddGlobalFlags(fs *pflag.FlagSet, f *GlobalFlags) {
	fs.BoolVarP(&f.Verbose, "verbose", "v", false, "write debug logs to stderr")
}

// LogLevel maps the flags to a slog level.
func (f GlobalFlags) LogLevel() slog.Level {
	if f.Verbose {
		return slog.LevelDebug
	}
	return DefaultLogLevel
}
