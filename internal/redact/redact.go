// Package redact hides secret profile values in tester output. The tester
// knows exactly which fields are secret, so no pattern scanning is needed:
// values are replaced wholesale with a placeholder.
package redact

import "fmt"

// DefaultPlaceholder is the placeholder used for redaction.
const DefaultPlaceholder = "[REDACTED]"

// Config controls how secret values are presented.
type Config struct {
	// Placeholder replaces secret values (e.g. "[REDACTED]").
	Placeholder string
}

// DefaultConfig returns the default redaction configuration.
func DefaultConfig() *Config {
	return &Config{Placeholder: DefaultPlaceholder}
}

// Value returns value unchanged for public fields and the placeholder for
// secret ones. The byte count is kept visible so a redacted result is still
// diagnosable.
func (c *Config) Value(value string, secret bool) string {
	if !secret {
		return value
	}
	return fmt.Sprintf("%s (%d bytes)", c.Placeholder, len(value))
}
