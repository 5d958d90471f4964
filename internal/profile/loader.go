package profile

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/isseis/go-bounded-str/boundedstr"
)

// Config is the top-level TOML document.
type Config struct {
	Version  string    `toml:"version"`
	Profiles []Profile `toml:"profile"`
}

// Set is the loaded, validated profile set: ordered profiles plus their
// constructed kinds.
type Set struct {
	Profiles []Profile
	kinds    map[string]*boundedstr.Kind
}

// Kind returns the kind for a profile name, or nil when unknown.
func (s *Set) Kind(name string) *boundedstr.Kind {
	return s.kinds[name]
}

// Load reads and validates a profile config file. An empty path yields the
// built-in defaults.
func Load(path string) (*Set, error) {
	if path == "" {
		return build(Defaults())
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile config: %w", err)
	}
	return Parse(content)
}

// Parse decodes and validates TOML content. Unknown fields are rejected so a
// typo in a bound name cannot silently loosen a profile.
func Parse(content []byte) (*Set, error) {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(content))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse profile config: %w", err)
	}
	if len(cfg.Profiles) == 0 {
		return nil, ErrNoProfiles
	}
	return build(cfg.Profiles)
}

func build(profiles []Profile) (*Set, error) {
	set := &Set{
		Profiles: profiles,
		kinds:    make(map[string]*boundedstr.Kind, len(profiles)),
	}
	for i := range profiles {
		p := &profiles[i]
		if p.Name == "" {
			return nil, &ErrInvalidProfile{Name: p.Name, Field: "name", Err: fmt.Errorf("must not be empty")}
		}
		if _, exists := set.kinds[p.Name]; exists {
			return nil, &ErrDuplicateProfile{Name: p.Name}
		}
		kind, err := p.Kind()
		if err != nil {
			return nil, err
		}
		set.kinds[p.Name] = kind
	}
	return set, nil
}
