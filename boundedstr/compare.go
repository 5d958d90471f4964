package boundedstr

import (
	"crypto/subtle"

	"github.com/zeebo/blake3"
)

// Equal reports whether two values hold identical text. Equality is derived
// solely from content: an inline-backed and a heap-backed value holding the
// same text compare equal regardless of representation or kind.
func (s *Str) Equal(other *Str) bool {
	if s == nil || other == nil {
		return s == other
	}
	return string(s.buf[:s.n]) == string(other.buf[:other.n])
}

// EqualString reports whether the content equals t.
func (s *Str) EqualString(t string) bool {
	return string(s.buf[:s.n]) == t
}

// ConstantTimeEqual compares two values without early exit on the first
// differing byte. The length check runs first; for equal-length inputs the
// comparison cost does not depend on where the contents differ.
//
// For two inline-backed values of the same capacity the compare covers the
// full capacity (zero-padded past the cursor), so the cost is fixed per
// kind. Heap-backed values are compared over their exact contents; their
// lengths are already observable through allocation behavior, so the
// guarantee there is limited to equal-length buffers.
func (s *Str) ConstantTimeEqual(other *Str) bool {
	if s == nil || other == nil {
		return s == other
	}
	if subtle.ConstantTimeEq(int32(s.n), int32(other.n)) == 0 {
		return false
	}
	if s.rep == RepInline && other.rep == RepInline && len(s.buf) == len(other.buf) {
		return subtle.ConstantTimeCompare(s.buf, other.buf) == 1
	}
	return subtle.ConstantTimeCompare(s.buf[:s.n], other.buf[:other.n]) == 1
}

// Compare returns -1, 0, or 1 ordering s against other by content bytes.
func (s *Str) Compare(other *Str) int {
	a := string(s.buf[:s.n])
	b := string(other.buf[:other.n])
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Digest returns the BLAKE3 hash of the content. Values holding identical
// text produce identical digests regardless of representation, so the digest
// is usable as a map key or content identifier.
func (s *Str) Digest() [32]byte {
	return blake3.Sum256(s.buf[:s.n])
}
