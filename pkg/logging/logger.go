// Package logging provides structured logging for the solver CLI.
//
// The solver core never logs; only the driver does, and always to stderr
// so transcripts on stdout stay machine-readable. Output is a text handler
// when stderr is a terminal and JSON otherwise, following Unix conventions
// for interactive versus piped use.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

// Config controls handler construction.
type Config struct {
	// Level is the minimum level emitted. Defaults to Info.
	Level slog.Leveler

	// Output overrides the destination; nil means stderr.
	Output io.Writer

	// ForceJSON selects the JSON handler regardless of terminal state.
	ForceJSON bool
}

// New builds a logger per config.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	if !cfg.ForceJSON && isTerminal(out) {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}
	return slog.New(handler)
}

// Default returns an Info-level stderr logger.
func Default() *slog.Logger {
	return New(Config{})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
