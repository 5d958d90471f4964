package boundedstr

import (
	"fmt"
	"unicode/utf8"
)

// Str is a bounded, validated string. Every externally observable value
// holds valid UTF-8 whose logical length is within its kind's bounds and
// whose content satisfies the kind's format policy.
//
// Str is a single-owner value: it carries no internal locking, and exclusive
// access is assumed for the duration of any Mutate call.
//
// Storage invariants:
//   - rep == RepInline: len(buf) == kind.capacity for the life of the value;
//     buf[:n] is the content and buf[n:] is always zero.
//   - rep == RepHeap: len(buf) == n exactly.
type Str struct {
	kind *Kind
	rep  Representation
	buf  []byte
	n    int
}

// New validates input and returns a new Str. Validation fully precedes the
// byte copy: either a fully valid value is returned, or a typed error and no
// value. No implicit truncation ever occurs.
//
// Check order: UTF-8 validity, logical length bounds, format policy, byte
// capacity. Input that fits Capacity bytes is stored inline; larger input is
// promoted to heap storage when the kind allows it and otherwise fails with
// ErrTooManyBytes.
func (k *Kind) New(input string) (*Str, error) {
	if !utf8.ValidString(input) {
		return nil, fmt.Errorf("%w: not valid UTF-8", ErrInvalidContent)
	}
	logical := k.length.LogicalLen(input)
	if logical < k.min {
		return nil, fmt.Errorf("%w: %d %s < %d", ErrTooShort, logical, k.length, k.min)
	}
	if logical > k.max {
		return nil, fmt.Errorf("%w: %d %s > %d", ErrTooLong, logical, k.length, k.max)
	}
	if !k.format.Check(input) {
		return nil, fmt.Errorf("%w: rejected by %s format", ErrInvalidContent, k.format)
	}

	if len(input) <= k.capacity {
		buf := make([]byte, k.capacity)
		copy(buf, input)
		return &Str{kind: k, rep: RepInline, buf: buf, n: len(input)}, nil
	}
	if !k.allowHeap {
		return nil, fmt.Errorf("%w: %d bytes > capacity %d", ErrTooManyBytes, len(input), k.capacity)
	}
	buf := make([]byte, len(input))
	copy(buf, input)
	return &Str{kind: k, rep: RepHeap, buf: buf, n: len(input)}, nil
}

// MustNew is like New but panics on error. Intended for statically known
// literals at package init; it runs the identical validation path as New and
// rejects exactly the same inputs.
func (k *Kind) MustNew(input string) *Str {
	s, err := k.New(input)
	if err != nil {
		panic(fmt.Sprintf("boundedstr: MustNew(%q): %v", input, err))
	}
	return s
}

// String returns the validated text.
func (s *Str) String() string { return string(s.buf[:s.n]) }

// Len returns the byte length of the content.
func (s *Str) Len() int { return s.n }

// LogicalLen returns the logical length of the content, as computed by the
// kind's length policy.
func (s *Str) LogicalLen() int { return s.kind.length.LogicalLen(s.String()) }

// IsEmpty reports whether the content is empty.
func (s *Str) IsEmpty() bool { return s.n == 0 }

// Kind returns the kind this value was constructed by.
func (s *Str) Kind() *Kind { return s.kind }

// Representation reports which storage variant currently backs the value.
func (s *Str) Representation() Representation { return s.rep }

// Mutate runs fn against a scratch copy of the content and commits the
// result only if it re-validates. fn receives a working buffer pre-filled
// with the current content and returns the new content length; it may write
// arbitrary bytes anywhere in the buffer.
//
// The working buffer is Capacity bytes for inline values and
// max(Capacity, Max, current byte length) bytes for heap values. A reported
// length above the buffer size fails with ErrTooManyBytes; content that is
// not valid UTF-8, is out of logical-length bounds, or is rejected by the
// format policy fails with ErrMutationFailed. On any failure the prior
// content is untouched, byte for byte.
//
// Mutation never changes representation: an inline value cannot grow past
// Capacity through Mutate, and a heap value that shrinks below Capacity
// stays heap-resident (demotion would cost an allocation and copy on every
// shrink).
//
// A panic in fn propagates to the caller unmodified; the committed content
// is unaffected, and for secure-erase kinds the scratch buffer is zeroed
// before the panic unwinds past Mutate.
func (s *Str) Mutate(fn func(buf []byte) int) error {
	var scratch []byte
	if s.rep == RepInline {
		scratch = make([]byte, s.kind.capacity)
	} else {
		ceiling := s.kind.capacity
		if s.kind.max > ceiling {
			ceiling = s.kind.max
		}
		if s.n > ceiling {
			ceiling = s.n
		}
		scratch = make([]byte, ceiling)
	}
	copy(scratch, s.buf[:s.n])

	if s.kind.secureErase {
		// Runs on every exit, including a panicking fn: a failed or aborted
		// mutation must not leak the attempted content.
		defer wipe(scratch)
	}

	newLen := fn(scratch)

	if newLen > len(scratch) {
		return fmt.Errorf("%w: mutator reported %d bytes, buffer holds %d", ErrTooManyBytes, newLen, len(scratch))
	}
	if newLen < 0 {
		return fmt.Errorf("%w: mutator reported negative length %d", ErrMutationFailed, newLen)
	}
	content := scratch[:newLen]
	if !utf8.Valid(content) {
		return fmt.Errorf("%w: not valid UTF-8", ErrMutationFailed)
	}
	text := string(content)
	logical := s.kind.length.LogicalLen(text)
	if logical < s.kind.min || logical > s.kind.max {
		return fmt.Errorf("%w: logical length %d outside [%d, %d]", ErrMutationFailed, logical, s.kind.min, s.kind.max)
	}
	if !s.kind.format.Check(text) {
		return fmt.Errorf("%w: rejected by %s format", ErrMutationFailed, s.kind.format)
	}

	// Commit. All checks passed; the live representation is replaced
	// wholesale, never partially.
	if s.rep == RepInline {
		copy(s.buf, content)
		// Keep the zero-tail invariant: bytes past the cursor must not
		// retain mutator garbage or previous content.
		for i := newLen; i < len(s.buf); i++ {
			s.buf[i] = 0
		}
	} else {
		replacement := make([]byte, newLen)
		copy(replacement, content)
		if s.kind.secureErase {
			wipe(s.buf)
		}
		s.buf = replacement
	}
	s.n = newLen
	return nil
}
