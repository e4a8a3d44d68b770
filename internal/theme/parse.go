package theme

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrMalformedSyntax marks input that is not a well-formed structured
// document at all, as opposed to a well-formed document with an invalid
// shape (*SchemaError).
var ErrMalformedSyntax = errors.New("malformed theme document")

// Parse decodes a JSON theme document and canonicalizes it. Unparsable text
// is reported by wrapping ErrMalformedSyntax; shape problems come back as a
// *SchemaError. Content-driven failures are always returned, never panics.
func Parse(data []byte) (*Theme, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSyntax, err)
	}
	return FromDocument(doc)
}

// ParseYAML decodes a YAML theme document and canonicalizes it. YAML is
// accepted as the structured-document equivalent of the JSON form; the
// validation and normalization pipeline is shared.
func ParseYAML(data []byte) (*Theme, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSyntax, err)
	}
	return FromDocument(doc)
}

// FromDocument canonicalizes an already-decoded document value.
func FromDocument(doc any) (*Theme, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}
	return normalize(doc.(map[string]any)), nil
}
