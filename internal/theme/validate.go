package theme

import (
	"fmt"
	"strings"
)

// SchemaError aggregates every structural violation found in a document.
// Validation is exhaustive rather than fail-fast so callers can report all
// problems in one pass.
type SchemaError struct {
	Issues []string
}

func (e *SchemaError) Error() string {
	return "invalid theme document: " + strings.Join(e.Issues, "; ")
}

// kindTags lists the accepted values of the type discriminator.
var kindTags = map[string]Kind{
	"dark":     Dark,
	"light":    Light,
	"hc":       HighContrastDark,
	"hc-light": HighContrastLight,
}

// typeTag extracts the theme-type discriminator. Documents in the wild use
// either "type" (editor convention) or "kind".
func typeTag(doc map[string]any) (any, bool) {
	if v, ok := doc["type"]; ok {
		return v, true
	}
	v, ok := doc["kind"]
	return v, ok
}

// ruleEntries extracts the style-rule array under its two accepted names.
func ruleEntries(doc map[string]any) (any, bool) {
	if v, ok := doc["tokenColors"]; ok {
		return v, true
	}
	v, ok := doc["rules"]
	return v, ok
}

// Validate structurally checks an untrusted decoded document against the
// required theme shape. It returns nil for a valid document and a
// *SchemaError listing every violation otherwise. Content-level problems
// (e.g. non-string color values) are left to normalization.
func Validate(raw any) error {
	doc, ok := raw.(map[string]any)
	if !ok {
		return &SchemaError{Issues: []string{"theme document must be an object"}}
	}

	var issues []string

	if name, ok := doc["name"].(string); !ok || strings.TrimSpace(name) == "" {
		issues = append(issues, "name must be a non-empty string")
	}

	if tag, ok := typeTag(doc); !ok {
		issues = append(issues, `missing required field "type"`)
	} else if s, ok := tag.(string); !ok || !isKindTag(s) {
		issues = append(issues, `type must be one of "dark", "light", "hc", "hc-light"`)
	}

	if v, ok := doc["colors"]; ok {
		if _, ok := v.(map[string]any); !ok {
			issues = append(issues, "colors must be an object")
		}
	}

	if v, ok := ruleEntries(doc); ok {
		issues = append(issues, validateRules(v)...)
	}

	if v, ok := doc["semanticHighlighting"]; ok {
		if _, ok := v.(bool); !ok {
			issues = append(issues, "semanticHighlighting must be a boolean")
		}
	}

	if v, ok := doc["semanticTokenColors"]; ok {
		if _, ok := v.(map[string]any); !ok {
			issues = append(issues, "semanticTokenColors must be an object")
		}
	}

	if len(issues) > 0 {
		return &SchemaError{Issues: issues}
	}
	return nil
}

func isKindTag(s string) bool {
	_, ok := kindTags[s]
	return ok
}

// validateRules checks the shape of the style-rule array. Non-object array
// elements are not violations: the normalizer drops them silently. An object
// element with missing or malformed content is a hard violation; the
// tolerance boundary sits at the entry's top level, not inside it.
func validateRules(v any) []string {
	entries, ok := v.([]any)
	if !ok {
		return []string{"tokenColors must be an array"}
	}

	var issues []string
	for i, entry := range entries {
		rule, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		settings, ok := rule["settings"]
		if !ok {
			issues = append(issues, fmt.Sprintf("tokenColors[%d]: missing settings", i))
		} else if m, ok := settings.(map[string]any); !ok {
			issues = append(issues, fmt.Sprintf("tokenColors[%d]: settings must be an object", i))
		} else {
			for _, field := range []string{"foreground", "background", "fontStyle"} {
				if fv, ok := m[field]; ok {
					if _, ok := fv.(string); !ok {
						issues = append(issues, fmt.Sprintf("tokenColors[%d]: settings.%s must be a string", i, field))
					}
				}
			}
		}

		if sv, ok := rule["scope"]; ok && !isScopeValue(sv) {
			issues = append(issues, fmt.Sprintf("tokenColors[%d]: scope must be a string or an array of strings", i))
		}
	}
	return issues
}

func isScopeValue(v any) bool {
	switch sv := v.(type) {
	case string:
		return true
	case []any:
		for _, el := range sv {
			if _, ok := el.(string); !ok {
				return false
			}
		}
		return true
	default:
		return false
	}
}
