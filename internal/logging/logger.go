// Package logging builds the logr.Logger used across postwizard. The TUI owns
// the terminal, so log lines go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// Logger pairs a logr.Logger with the file it writes to.
type Logger struct {
	logr.Logger
	file *os.File
}

// New opens (or creates) path for appending and returns a logger writing
// timestamped lines to it. An empty path yields a logger that discards
// everything. verbosity enables V(n) lines up to n.
func New(path string, verbosity int) (*Logger, error) {
	if path == "" {
		return &Logger{Logger: logr.Discard()}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}
	return &Logger{Logger: NewWithWriter(f, verbosity), file: f}, nil
}

// NewWithWriter returns a logger writing to w.
func NewWithWriter(w io.Writer, verbosity int) logr.Logger {
	stdr.SetVerbosity(verbosity)
	std := log.New(w, "", log.LstdFlags|log.LUTC)
	return stdr.NewWithOptions(std, stdr.Options{LogCaller: stdr.Error}).WithName("postwizard")
}

// Close releases the file handle.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}
