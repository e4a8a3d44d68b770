// Package theme parses untrusted editor theme documents into a canonical,
// immutable in-memory representation.
package theme

import "strings"

// Kind identifies the brightness family a theme declares.
type Kind string

const (
	Dark              Kind = "dark"
	Light             Kind = "light"
	HighContrastDark  Kind = "hc"
	HighContrastLight Kind = "hc-light"
)

// IsDark reports whether the kind belongs to the dark family.
func (k Kind) IsDark() bool {
	return k == Dark || k == HighContrastDark
}

// String returns the document tag for the kind.
func (k Kind) String() string {
	return string(k)
}

// StyleSettings holds the optional presentation attributes of a style rule.
type StyleSettings struct {
	Foreground string
	Background string
	FontStyle  string
}

// IsZero reports whether no attribute is set.
func (s StyleSettings) IsZero() bool {
	return s == StyleSettings{}
}

// StyleRule targets one or more syntax scopes with style settings.
// Scopes is nil when the source rule declared none; such rules act as
// catch-alls for consumers that want a default token style.
type StyleRule struct {
	Name     string
	Scopes   []string
	Settings StyleSettings
}

// SemanticStyle is a semantic-token rule value: either a bare color string
// or a settings object. Exactly one of the two fields is populated.
type SemanticStyle struct {
	Color    string
	Settings StyleSettings
}

// Theme is the canonical, validated and normalized form of a theme document.
// Instances are built once per parse and never mutated afterwards.
type Theme struct {
	// SchemaRef carries the document's $schema value when present. It is
	// informational only; nothing downstream depends on it.
	SchemaRef string

	Name string
	Kind Kind

	// Colors maps dotted workbench identifiers (e.g. "editor.background")
	// to color strings. Only string values survive normalization.
	Colors map[string]string

	Rules []StyleRule

	SemanticHighlighting bool

	// SemanticRules is nil when the document declared no usable semantic
	// token colors.
	SemanticRules map[string]SemanticStyle
}

// Color returns the named workbench color when present with a non-empty
// value. Empty strings count as absent so fallback chains skip them.
func (t *Theme) Color(key string) (string, bool) {
	v, ok := t.Colors[key]
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}
