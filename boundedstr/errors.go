// Package boundedstr provides a bounded, validated string container: a value
// type that guarantees, by construction, that the text it holds satisfies a
// logical length range, a byte capacity limit, and a content format predicate.
//
// Validation happens before any byte is copied, and in-place mutation runs
// against a scratch copy that is only committed after re-validation, so a
// misbehaving or panicking mutator can never leave a value in an invalid or
// torn state. Kinds intended for secret material can additionally request
// secure erasure and constant-time comparison.
package boundedstr

import (
	"errors"
	"fmt"
)

// Validation error definitions. Construction and mutation failures wrap
// exactly one of these sentinels; callers dispatch with errors.Is.
var (
	// ErrTooShort is returned when the logical length is below the kind's minimum.
	ErrTooShort = errors.New("logical length below minimum")

	// ErrTooLong is returned when the logical length is above the kind's maximum.
	ErrTooLong = errors.New("logical length above maximum")

	// ErrTooManyBytes is returned when the byte length exceeds the available
	// capacity and heap promotion is unavailable or still insufficient.
	ErrTooManyBytes = errors.New("byte length exceeds capacity")

	// ErrInvalidContent is returned when the content is not valid UTF-8 or is
	// rejected by the kind's format policy.
	ErrInvalidContent = errors.New("invalid content")

	// ErrMutationFailed is returned when a mutator's scratch result failed the
	// UTF-8, bound, or format re-validation. Capacity overflow is reported as
	// ErrTooManyBytes instead.
	ErrMutationFailed = errors.New("mutation produced invalid content")
)

// KindError is returned when a KindSpec describes an unsatisfiable or
// malformed kind. It is reported once, by NewKind, before any instance of the
// kind can exist.
type KindError struct {
	Field  string
	Value  any
	Reason string
}

func (e *KindError) Error() string {
	return fmt.Sprintf("invalid kind: %s = %v (%s)", e.Field, e.Value, e.Reason)
}
