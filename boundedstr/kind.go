package boundedstr

import "fmt"

// Representation identifies which storage variant backs a Str.
type Representation int

// Storage representations. Exactly one is active for any value.
const (
	// RepInline is a fixed-capacity buffer allocated once at construction
	// and never reallocated for the life of the value.
	RepInline Representation = iota

	// RepHeap is an exact-size buffer used when content exceeds the inline
	// capacity and the kind permits heap promotion.
	RepHeap
)

func (r Representation) String() string {
	switch r {
	case RepInline:
		return "inline"
	case RepHeap:
		return "heap"
	default:
		return fmt.Sprintf("Representation(%d)", int(r))
	}
}

// KindSpec describes the parameters of a Kind. Zero-value policies default
// to Bytes length counting and the AllowAll format.
type KindSpec struct {
	// Min and Max are the inclusive bounds on logical length, as computed by
	// the Length policy.
	Min int
	Max int

	// Capacity is the number of bytes available inline before heap promotion
	// is needed.
	Capacity int

	// Length computes logical length. Defaults to Bytes.
	Length LengthPolicy

	// Format is the content predicate. Defaults to AllowAll.
	Format FormatPolicy

	// AllowHeap permits promotion to heap storage when content exceeds
	// Capacity. When false the kind has a guaranteed fixed memory footprint
	// and oversized input fails with ErrTooManyBytes.
	AllowHeap bool

	// SecureErase requests zeroing of every buffer before it is released:
	// the live buffer on Wipe, and any scratch or replaced buffer discarded
	// during Mutate, including after a mutator panic.
	SecureErase bool

	// ConstantTime requests that ConstantTimeEqual be used by comparison
	// helpers. The timing guarantee covers inline-backed values of the same
	// kind; see Str.ConstantTimeEqual.
	ConstantTime bool
}

// Kind is the validated, immutable configuration shared by every Str it
// constructs. Bound mismatches are caught here, before any instance exists,
// so per-value code never re-checks them.
type Kind struct {
	min      int
	max      int
	capacity int
	length   LengthPolicy
	format   FormatPolicy

	allowHeap    bool
	secureErase  bool
	constantTime bool
}

// NewKind validates spec and returns the corresponding Kind.
func NewKind(spec KindSpec) (*Kind, error) {
	if spec.Min < 0 {
		return nil, &KindError{Field: "Min", Value: spec.Min, Reason: "must be >= 0"}
	}
	if spec.Max < spec.Min {
		return nil, &KindError{Field: "Max", Value: spec.Max, Reason: fmt.Sprintf("must be >= Min (%d)", spec.Min)}
	}
	if spec.Capacity < 0 {
		return nil, &KindError{Field: "Capacity", Value: spec.Capacity, Reason: "must be >= 0"}
	}
	if !spec.AllowHeap && spec.Max > spec.Capacity {
		// A string of Max logical length needs at least Max bytes, so no
		// maximum-length value could ever fit a stack-only kind.
		return nil, &KindError{Field: "Max", Value: spec.Max, Reason: fmt.Sprintf("exceeds Capacity (%d) and heap promotion is disabled", spec.Capacity)}
	}

	length := spec.Length
	if length == nil {
		length = Bytes
	}
	format := spec.Format
	if format == nil {
		format = AllowAll
	}

	return &Kind{
		min:          spec.Min,
		max:          spec.Max,
		capacity:     spec.Capacity,
		length:       length,
		format:       format,
		allowHeap:    spec.AllowHeap,
		secureErase:  spec.SecureErase,
		constantTime: spec.ConstantTime,
	}, nil
}

// MustKind is like NewKind but panics on error. Intended for package-level
// kind literals, in the manner of regexp.MustCompile.
func MustKind(spec KindSpec) *Kind {
	k, err := NewKind(spec)
	if err != nil {
		panic(err)
	}
	return k
}

// Min returns the inclusive lower bound on logical length.
func (k *Kind) Min() int { return k.min }

// Max returns the inclusive upper bound on logical length.
func (k *Kind) Max() int { return k.max }

// Capacity returns the inline byte capacity.
func (k *Kind) Capacity() int { return k.capacity }

// AllowHeap reports whether heap promotion is permitted.
func (k *Kind) AllowHeap() bool { return k.allowHeap }

// SecureErase reports whether buffers are zeroed before release.
func (k *Kind) SecureErase() bool { return k.secureErase }

// ConstantTime reports whether constant-time comparison was requested.
func (k *Kind) ConstantTime() bool { return k.constantTime }

// LengthPolicy returns the configured length policy.
func (k *Kind) LengthPolicy() LengthPolicy { return k.length }

// FormatPolicy returns the configured format policy.
func (k *Kind) FormatPolicy() FormatPolicy { return k.format }

func (k *Kind) String() string {
	storage := "stack-only"
	if k.allowHeap {
		storage = "heap-allowed"
	}
	return fmt.Sprintf("Kind[%d..%d %s, cap %d, %s, %s]", k.min, k.max, k.length, k.capacity, k.format, storage)
}
