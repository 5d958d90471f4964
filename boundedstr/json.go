package boundedstr

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the validated text as a JSON string.
func (s *Str) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// MarshalText returns the validated text. Implements encoding.TextMarshaler.
func (s *Str) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// FromJSON decodes a single JSON string and constructs a value of this kind.
// A malformed JSON document is reported as a decode error, distinct from and
// before any validation error from New.
func (k *Kind) FromJSON(data []byte) (*Str, error) {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode JSON string: %w", err)
	}
	return k.New(raw)
}
