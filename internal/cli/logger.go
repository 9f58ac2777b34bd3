package cli

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewLogger creates the CLI's structured logger on stderr. Terminals get
// human-readable text; pipes and files get JSON so CI log collectors can
// parse it.
func NewLogger(level slog.Level) *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}
