// Package profile loads the tester's string profiles: named bounded-string
// kinds described in a TOML file, or built-in defaults when no file is
// given. Each profile maps one input field to a boundedstr.Kind.
package profile

import (
	"fmt"

	"github.com/isseis/go-bounded-str/boundedstr"
)

// Length policy names accepted in profile files.
const (
	LengthBytes = "bytes"
	LengthRunes = "runes"
)

// Format policy names accepted in profile files.
const (
	FormatAny          = "any"
	FormatASCII        = "ascii"
	FormatAlphanumeric = "alphanumeric"
)

// Profile describes one named bounded-string kind.
type Profile struct {
	// Name is the field name used for JSON input and output labels.
	Name string `toml:"name"`

	// Min and Max bound the logical length.
	Min int `toml:"min"`
	Max int `toml:"max"`

	// Capacity is the inline byte capacity.
	Capacity int `toml:"capacity"`

	// Length names the length policy: "bytes" or "runes".
	Length string `toml:"length"`

	// Format names the format policy: "any", "ascii", or "alphanumeric".
	Format string `toml:"format"`

	// AllowHeap permits heap promotion past Capacity.
	AllowHeap bool `toml:"allow_heap"`

	// Secret marks the profile as holding secret material: the kind gets
	// secure erase and constant-time comparison, and the tester redacts the
	// value in its output.
	Secret bool `toml:"secret"`
}

// Kind builds the boundedstr.Kind this profile describes.
func (p *Profile) Kind() (*boundedstr.Kind, error) {
	length, err := lengthPolicy(p.Length)
	if err != nil {
		return nil, &ErrInvalidProfile{Name: p.Name, Field: "length", Err: err}
	}
	format, err := formatPolicy(p.Format, p.Capacity)
	if err != nil {
		return nil, &ErrInvalidProfile{Name: p.Name, Field: "format", Err: err}
	}

	kind, err := boundedstr.NewKind(boundedstr.KindSpec{
		Min:          p.Min,
		Max:          p.Max,
		Capacity:     p.Capacity,
		Length:       length,
		Format:       format,
		AllowHeap:    p.AllowHeap,
		SecureErase:  p.Secret,
		ConstantTime: p.Secret,
	})
	if err != nil {
		return nil, &ErrInvalidProfile{Name: p.Name, Field: "bounds", Err: err}
	}
	return kind, nil
}

func lengthPolicy(name string) (boundedstr.LengthPolicy, error) {
	switch name {
	case LengthBytes, "":
		return boundedstr.Bytes, nil
	case LengthRunes:
		return boundedstr.Runes, nil
	default:
		return nil, fmt.Errorf("unknown length policy %q", name)
	}
}

func formatPolicy(name string, capacity int) (boundedstr.FormatPolicy, error) {
	switch name {
	case FormatAny, "":
		return boundedstr.AllowAll, nil
	case FormatASCII:
		return boundedstr.ASCIIOnly, nil
	case FormatAlphanumeric:
		return boundedstr.Alphanumeric(capacity), nil
	default:
		return nil, fmt.Errorf("unknown format policy %q", name)
	}
}

// Defaults returns the built-in profiles used when no config file is given:
// the canonical username and token kinds from the interactive tester.
func Defaults() []Profile {
	return []Profile{
		{
			Name:     "username",
			Min:      3,
			Max:      16,
			Capacity: 16,
			Length:   LengthRunes,
			Format:   FormatASCII,
		},
		{
			Name:     "token",
			Min:      1,
			Max:      128,
			Capacity: 128,
			Length:   LengthRunes,
			Format:   FormatAlphanumeric,
			Secret:   true,
		},
	}
}
