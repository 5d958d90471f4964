package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/isseis/go-bounded-str/internal/color"
	"github.com/isseis/go-bounded-str/internal/terminal"
)

// InteractiveHandler is a slog handler for interactive terminal sessions.
// It prints compact, optionally colored lines instead of logfmt records.
type InteractiveHandler struct {
	capabilities terminal.Capabilities
	writer       io.Writer
	level        slog.Level
	attrs        []slog.Attr
	groups       []string
}

// InteractiveHandlerOptions configures the InteractiveHandler.
type InteractiveHandlerOptions struct {
	// Level is the minimum log level to handle
	Level slog.Level

	// Writer is the output destination (typically os.Stderr for interactive output)
	Writer io.Writer

	// Capabilities provides terminal feature detection
	Capabilities terminal.Capabilities
}

// NewInteractiveHandler creates a new InteractiveHandler with the given options.
func NewInteractiveHandler(opts InteractiveHandlerOptions) *InteractiveHandler {
	return &InteractiveHandler{
		capabilities: opts.Capabilities,
		writer:       opts.Writer,
		level:        opts.Level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *InteractiveHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle processes a log record.
func (h *InteractiveHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(h.formatLevel(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)

	for _, attr := range h.attrs {
		fmt.Fprintf(&b, " %s=%v", attr.Key, attr.Value)
	}
	prefix := h.groupPrefix()
	r.Attrs(func(attr slog.Attr) bool {
		fmt.Fprintf(&b, " %s%s=%v", prefix, attr.Key, attr.Value)
		return true
	})
	b.WriteByte('\n')

	_, err := h.writer.Write([]byte(b.String()))
	return err
}

func (h *InteractiveHandler) formatLevel(level slog.Level) string {
	label := level.String()
	if !h.capabilities.SupportsColor() {
		return label
	}
	switch {
	case level >= slog.LevelError:
		return color.Red(label)
	case level >= slog.LevelWarn:
		return color.Yellow(label)
	case level >= slog.LevelInfo:
		return color.Green(label)
	default:
		return color.Gray(label)
	}
}

func (h *InteractiveHandler) groupPrefix() string {
	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

// WithAttrs returns a new handler with additional attributes. Attributes are
// qualified with the group path open at the time they are added.
func (h *InteractiveHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	prefix := h.groupPrefix()
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, attr := range attrs {
		clone.attrs = append(clone.attrs, slog.Attr{Key: prefix + attr.Key, Value: attr.Value})
	}
	return &clone
}

// WithGroup returns a new handler with the given group name appended.
func (h *InteractiveHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = make([]string, 0, len(h.groups)+1)
	clone.groups = append(clone.groups, h.groups...)
	clone.groups = append(clone.groups, name)
	return &clone
}
