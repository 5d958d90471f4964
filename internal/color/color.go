// Package color provides small helpers for coloring terminal output using
// ANSI escape sequences. Functions here return formatted strings; a Palette
// degrades to plain text when color output is disabled.
//
//nolint:revive // package name conflicts with standard library
package color

// ANSI color codes
const (
	resetCode  = "\033[0m"
	grayCode   = "\033[90m" // Bright black/gray
	greenCode  = "\033[32m"
	yellowCode = "\033[33m"
	redCode    = "\033[31m"
	cyanCode   = "\033[36m"
)

// Color represents a color function that wraps text with ANSI escape
// sequences.
type Color func(text string) string

// NewColor creates a color function with the specified ANSI code.
func NewColor(ansiCode string) Color {
	return func(text string) string {
		return ansiCode + text + resetCode
	}
}

// Plain returns text unchanged. Used in place of a color function when
// color output is disabled.
func Plain(text string) string { return text }

// Predefined color functions
var (
	// Gray colors text in gray (bright black)
	Gray = NewColor(grayCode)

	// Green colors text in green
	Green = NewColor(greenCode)

	// Yellow colors text in yellow
	Yellow = NewColor(yellowCode)

	// Red colors text in red
	Red = NewColor(redCode)

	// Cyan colors text in cyan
	Cyan = NewColor(cyanCode)
)

// Palette bundles the color roles the tester uses, pre-resolved against
// whether color output is enabled.
type Palette struct {
	Success Color
	Failure Color
	Warning Color
	Detail  Color
	Banner  Color
}

// NewPalette returns a Palette that colors output when enabled is true and
// passes text through unchanged otherwise.
func NewPalette(enabled bool) *Palette {
	if !enabled {
		return &Palette{Success: Plain, Failure: Plain, Warning: Plain, Detail: Plain, Banner: Plain}
	}
	return &Palette{Success: Green, Failure: Red, Warning: Yellow, Detail: Gray, Banner: Cyan}
}
