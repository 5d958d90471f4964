package boundedstr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLengthPolicies(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantBytes int
		wantRunes int
	}{
		{name: "empty", input: "", wantBytes: 0, wantRunes: 0},
		{name: "ascii", input: "Alice123", wantBytes: 8, wantRunes: 8},
		{name: "two-byte runes", input: "héllo", wantBytes: 6, wantRunes: 5},
		{name: "emoji", input: "🔥", wantBytes: 4, wantRunes: 1},
		{name: "combining mark counts separately", input: "é", wantBytes: 3, wantRunes: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantBytes, Bytes.LogicalLen(tt.input))
			assert.Equal(t, tt.wantRunes, Runes.LogicalLen(tt.input))
		})
	}
}

func TestFormatPolicies(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		allowAll  bool
		asciiOnly bool
		alnum     bool
	}{
		{name: "empty", input: "", allowAll: true, asciiOnly: true, alnum: true},
		{name: "alphanumeric", input: "a1b2C3", allowAll: true, asciiOnly: true, alnum: true},
		{name: "ascii with punctuation", input: "user-name", allowAll: true, asciiOnly: true, alnum: false},
		{name: "non-ascii", input: "Bob🔥", allowAll: true, asciiOnly: false, alnum: false},
		{name: "control character", input: "a\x00b", allowAll: true, asciiOnly: true, alnum: false},
	}

	alnum := Alphanumeric(0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowAll, AllowAll.Check(tt.input))
			assert.Equal(t, tt.asciiOnly, ASCIIOnly.Check(tt.input))
			assert.Equal(t, tt.alnum, alnum.Check(tt.input))
		})
	}
}

func TestAlphanumeric_ByteCap(t *testing.T) {
	p := Alphanumeric(128)

	assert.True(t, p.Check(strings.Repeat("a", 128)))
	assert.False(t, p.Check(strings.Repeat("a", 129)))
}

func TestFormatFunc(t *testing.T) {
	noSpaces := FormatFunc("no-spaces", func(s string) bool {
		return !strings.ContainsRune(s, ' ')
	})

	assert.True(t, noSpaces.Check("abc"))
	assert.False(t, noSpaces.Check("a b"))
	assert.Equal(t, "no-spaces", noSpaces.String())
}
