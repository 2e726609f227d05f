// Package cli holds the logic behind the typedef commands: decoding input
// values, running checks and casts, and describing registered types.
package cli

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeValue parses a single YAML value. JSON is accepted too, being a
// subset of YAML. An empty string decodes to nil.
func DecodeValue(s string) (any, error) {
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("decode value: %w", err)
	}
	return v, nil
}

// DecodeStream calls fn with every document read from r, in order.
// Documents are separated by "---" lines; JSON values may simply follow
// each other.
func DecodeStream(r io.Reader, fn func(any) error) error {
	dec := yaml.NewDecoder(r)
	for i := 0; ; i++ {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("decode document %d: %w", i+1, err)
		}
		if err := fn(v); err != nil {
			return err
		}
	}
}
