package boundedstr

import (
	"fmt"
	"unicode/utf8"
)

// LengthPolicy computes the logical length of a candidate string. It must be
// a pure function of the string's bytes; it is consulted once per
// construction or mutation, never in a hot loop.
type LengthPolicy interface {
	LogicalLen(s string) int
	String() string
}

// FormatPolicy is a pure content predicate. Policies are meant for structural
// constraints (encoding, character class, absence of control characters);
// deeper semantic validation belongs in a parser layered on top of an
// already-bounded string, not here.
type FormatPolicy interface {
	Check(s string) bool
	String() string
}

// Bytes counts logical length as raw byte count.
var Bytes LengthPolicy = bytesPolicy{}

// Runes counts logical length as Unicode scalar values. Multi-byte sequences
// count as one unit each; combining marks count separately.
var Runes LengthPolicy = runesPolicy{}

type bytesPolicy struct{}

func (bytesPolicy) LogicalLen(s string) int { return len(s) }
func (bytesPolicy) String() string          { return "bytes" }

type runesPolicy struct{}

func (runesPolicy) LogicalLen(s string) int { return utf8.RuneCountInString(s) }
func (runesPolicy) String() string          { return "runes" }

// AllowAll accepts every string.
var AllowAll FormatPolicy = allowAllPolicy{}

// ASCIIOnly accepts strings whose every byte is below 0x80.
var ASCIIOnly FormatPolicy = asciiOnlyPolicy{}

type allowAllPolicy struct{}

func (allowAllPolicy) Check(string) bool { return true }
func (allowAllPolicy) String() string    { return "any" }

type asciiOnlyPolicy struct{}

func (asciiOnlyPolicy) Check(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func (asciiOnlyPolicy) String() string { return "ascii" }

// Alphanumeric returns a policy accepting only ASCII letters and digits, with
// an internal byte cap. A maxBytes of zero disables the cap.
func Alphanumeric(maxBytes int) FormatPolicy {
	return alphanumericPolicy{maxBytes: maxBytes}
}

type alphanumericPolicy struct {
	maxBytes int
}

func (p alphanumericPolicy) Check(s string) bool {
	if p.maxBytes > 0 && len(s) > p.maxBytes {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isASCIIAlnum(c) {
			return false
		}
	}
	return true
}

func (p alphanumericPolicy) String() string {
	if p.maxBytes > 0 {
		return fmt.Sprintf("alphanumeric(<=%d bytes)", p.maxBytes)
	}
	return "alphanumeric"
}

func isASCIIAlnum(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// FormatFunc adapts a predicate function into a FormatPolicy. The name is
// used in String() for error messages and profile listings.
func FormatFunc(name string, check func(s string) bool) FormatPolicy {
	return funcPolicy{name: name, check: check}
}

type funcPolicy struct {
	name  string
	check func(s string) bool
}

func (p funcPolicy) Check(s string) bool { return p.check(s) }
func (p funcPolicy) String() string      { return p.name }
