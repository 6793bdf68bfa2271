package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// DefaultLogLevel keeps regular runs silent on stderr.
const DefaultLogLevel = slog.LevelWarn

// LoggerOption configures NewLogger.
type LoggerOption func(*loggerOptions)

type loggerOptions struct {
	level   slog.Level
	noColor bool
}

// WithLevel sets the minimum level that is written.
func WithLevel(level slog.Level) LoggerOption {
	return func(o *loggerOptions) {
		o.level = level
	}
}

// WithNoColor forces colour on or off, overriding terminal detection.
func WithNoColor(noColor bool) LoggerOption {
	return func(o *loggerOptions) {
		o.noColor = noColor
	}
}

// NewLogger returns a tint-backed slog.Logger writing to w. Colour is
// enabled only when w is a terminal, unless WithNoColor says otherwise.
func NewLogger(w io.Writer, opts ...LoggerOption) *slog.Logger {
	o := loggerOptions{
		level:   DefaultLogLevel,
		noColor: !isTerminal(w),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      o.level,
		TimeFormat: "15:04:05",
		NoColor:    o.noColor,
	}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
