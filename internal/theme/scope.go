package theme

import "strings"

// MatchesScope reports whether candidate falls under pattern in the dotted
// scope hierarchy: an exact match, or any descendant separated by a dot.
// A rule for "comment" covers "comment.line.double-slash" but not
// "commentary".
func MatchesScope(candidate, pattern string) bool {
	if candidate == pattern {
		return true
	}
	return strings.HasPrefix(candidate, pattern+".")
}

// SettingsForScope returns the settings of the most specific rule covering
// scope. Longer matching patterns win; between equally specific patterns the
// later rule wins, matching how editors layer token rules. The boolean is
// false when no rule covers the scope.
func (t *Theme) SettingsForScope(scope string) (StyleSettings, bool) {
	best := -1
	var settings StyleSettings
	for _, rule := range t.Rules {
		for _, pattern := range rule.Scopes {
			if !MatchesScope(scope, pattern) {
				continue
			}
			if len(pattern) >= best {
				best = len(pattern)
				settings = rule.Settings
			}
		}
	}
	if best < 0 {
		return StyleSettings{}, false
	}
	return settings, true
}
