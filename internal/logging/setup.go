package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/isseis/go-bounded-str/internal/terminal"
)

// Error definitions for logger setup
var (
	// ErrWriterRequired is returned when no output writer is provided.
	ErrWriterRequired = errors.New("logging: writer is required")

	// ErrCapabilitiesRequired is returned when no terminal capabilities are provided.
	ErrCapabilitiesRequired = errors.New("logging: capabilities are required")
)

// Options configures Setup.
type Options struct {
	// Level is the textual log level: debug, info, warn, or error.
	Level string

	// Writer is the output destination, typically os.Stderr.
	Writer io.Writer

	// Capabilities selects between the interactive and text handlers.
	Capabilities terminal.Capabilities

	// RunID is attached to every record as the "run_id" attribute.
	RunID string
}

// ParseLevel converts a textual level to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", level)
	}
}

// Setup builds the logger for a tester run and installs it as the slog
// default. Interactive terminal sessions get the colored interactive
// handler; everything else gets a standard text handler.
func Setup(opts Options) (*slog.Logger, error) {
	if opts.Writer == nil {
		return nil, ErrWriterRequired
	}
	if opts.Capabilities == nil {
		return nil, ErrCapabilitiesRequired
	}
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	var handler slog.Handler
	if opts.Capabilities.IsInteractive() {
		handler = NewInteractiveHandler(InteractiveHandlerOptions{
			Level:        level,
			Writer:       opts.Writer,
			Capabilities: opts.Capabilities,
		})
	} else {
		handler = slog.NewTextHandler(opts.Writer, &slog.HandlerOptions{Level: level})
	}

	logger := slog.New(handler)
	if opts.RunID != "" {
		logger = logger.With("run_id", opts.RunID)
	}
	slog.SetDefault(logger)
	return logger, nil
}
