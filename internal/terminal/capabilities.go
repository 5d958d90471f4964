package terminal

import (
	"os"
	"strings"
)

// Options contains all terminal-related configuration options
type Options struct {
	// DetectorOptions for interactive detection
	DetectorOptions DetectorOptions

	// NoColor disables color output regardless of terminal support
	NoColor bool
}

// Capabilities provides a unified interface for terminal capability detection
type Capabilities interface {
	IsInteractive() bool
	SupportsColor() bool
}

// DefaultCapabilities implements the Capabilities interface
type DefaultCapabilities struct {
	interactiveDetector InteractiveDetector
	noColor             bool
}

// NewCapabilities creates a new Capabilities instance with the given options
func NewCapabilities(options Options) Capabilities {
	return &DefaultCapabilities{
		interactiveDetector: NewInteractiveDetector(options.DetectorOptions),
		noColor:             options.NoColor,
	}
}

// IsInteractive returns true if the current environment should be treated as interactive
func (c *DefaultCapabilities) IsInteractive() bool {
	return c.interactiveDetector.IsInteractive()
}

// SupportsColor returns true if color output should be enabled.
// Priority: command line flag, NO_COLOR environment variable, CLICOLOR_FORCE,
// then terminal auto-detection.
func (c *DefaultCapabilities) SupportsColor() bool {
	if c.noColor {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force := os.Getenv("CLICOLOR_FORCE"); force != "" && isTruthy(force) {
		return true
	}
	if !c.IsInteractive() {
		return false
	}
	return supportsColorTerm(os.Getenv("TERM"))
}

// supportsColorTerm reports whether a TERM value names a color-capable
// terminal.
func supportsColorTerm(termEnv string) bool {
	if termEnv == "" || termEnv == "dumb" {
		return false
	}
	for _, hint := range []string{"color", "xterm", "screen", "tmux", "rxvt", "vt100", "linux", "ansi"} {
		if strings.Contains(termEnv, hint) {
			return true
		}
	}
	return false
}

// isTruthy checks if a string value should be considered "true"
// Supports: "1", "true", "yes" (case insensitive)
func isTruthy(value string) bool {
	lower := strings.ToLower(strings.TrimSpace(value))
	switch lower {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
