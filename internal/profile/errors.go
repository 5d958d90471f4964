package profile

import (
	"errors"
	"fmt"
)

// Error definitions for the profile package
var (
	// ErrNoProfiles is returned when a config file defines no profiles.
	ErrNoProfiles = errors.New("config defines no profiles")
)

// ErrInvalidProfile is returned when a profile entry cannot be turned into a
// kind.
type ErrInvalidProfile struct {
	Name  string
	Field string
	Err   error
}

func (e *ErrInvalidProfile) Error() string {
	return fmt.Sprintf("invalid profile %q: %s: %v", e.Name, e.Field, e.Err)
}

func (e *ErrInvalidProfile) Unwrap() error { return e.Err }

// ErrDuplicateProfile is returned when two profiles share a name.
type ErrDuplicateProfile struct {
	Name string
}

func (e *ErrDuplicateProfile) Error() string {
	return fmt.Sprintf("duplicate profile name %q", e.Name)
}
