package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilities_NoColorFlag(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "1")

	caps := NewCapabilities(Options{
		DetectorOptions: DetectorOptions{ForceInteractive: true},
		NoColor:         true,
	})
	assert.False(t, caps.SupportsColor(), "NoColor flag beats CLICOLOR_FORCE")
}

func TestCapabilities_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv("CLICOLOR_FORCE", "")

	caps := NewCapabilities(Options{
		DetectorOptions: DetectorOptions{ForceInteractive: true},
	})
	assert.False(t, caps.SupportsColor())
}

func TestCapabilities_ColorForce(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR_FORCE", "1")

	caps := NewCapabilities(Options{
		DetectorOptions: DetectorOptions{ForceNonInteractive: true},
	})
	assert.True(t, caps.SupportsColor(), "CLICOLOR_FORCE enables color even when non-interactive")
}

func TestCapabilities_NonInteractiveDefaultsToNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR_FORCE", "")

	caps := NewCapabilities(Options{
		DetectorOptions: DetectorOptions{ForceNonInteractive: true},
	})
	assert.False(t, caps.SupportsColor())
}

func TestSupportsColorTerm(t *testing.T) {
	tests := []struct {
		term string
		want bool
	}{
		{term: "", want: false},
		{term: "dumb", want: false},
		{term: "xterm-256color", want: true},
		{term: "screen", want: true},
		{term: "tmux-256color", want: true},
		{term: "linux", want: true},
	}

	for _, tt := range tests {
		t.Run("TERM="+tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, supportsColorTerm(tt.term))
		})
	}
}
