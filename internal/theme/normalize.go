package theme

import "strings"

// normalize coerces a document that already passed Validate into the
// canonical Theme. It never fails: values validation does not police (color
// entries, rule array garbage, semantic values) are narrowed here, keeping
// only what fits the canonical shape and dropping the rest silently.
func normalize(doc map[string]any) *Theme {
	t := &Theme{
		Colors: map[string]string{},
	}

	if s, ok := doc["$schema"].(string); ok {
		t.SchemaRef = s
	}
	if s, ok := doc["name"].(string); ok {
		t.Name = strings.TrimSpace(s)
	}
	if tag, ok := typeTag(doc); ok {
		if s, ok := tag.(string); ok {
			t.Kind = kindTags[s]
		}
	}

	if raw, ok := doc["colors"].(map[string]any); ok {
		for key, v := range raw {
			if s, ok := v.(string); ok {
				t.Colors[key] = s
			}
		}
	}

	if raw, ok := ruleEntries(doc); ok {
		if entries, ok := raw.([]any); ok {
			t.Rules = normalizeRules(entries)
		}
	}

	if b, ok := doc["semanticHighlighting"].(bool); ok {
		t.SemanticHighlighting = b
	}

	if raw, ok := doc["semanticTokenColors"].(map[string]any); ok {
		t.SemanticRules = normalizeSemanticRules(raw)
	}

	return t
}

func normalizeRules(entries []any) []StyleRule {
	rules := make([]StyleRule, 0, len(entries))
	for _, entry := range entries {
		raw, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		var rule StyleRule
		if s, ok := raw["name"].(string); ok {
			rule.Name = s
		}
		rule.Scopes = normalizeScope(raw["scope"])
		rule.Settings = normalizeSettings(raw["settings"])
		rules = append(rules, rule)
	}
	return rules
}

func normalizeScope(v any) []string {
	switch sv := v.(type) {
	case string:
		return []string{sv}
	case []any:
		scopes := make([]string, 0, len(sv))
		for _, el := range sv {
			if s, ok := el.(string); ok {
				scopes = append(scopes, s)
			}
		}
		if len(scopes) == 0 {
			return nil
		}
		return scopes
	default:
		return nil
	}
}

func normalizeSettings(v any) StyleSettings {
	raw, ok := v.(map[string]any)
	if !ok {
		return StyleSettings{}
	}
	var s StyleSettings
	if fg, ok := raw["foreground"].(string); ok {
		s.Foreground = fg
	}
	if bg, ok := raw["background"].(string); ok {
		s.Background = bg
	}
	if fs, ok := raw["fontStyle"].(string); ok {
		s.FontStyle = fs
	}
	return s
}

// normalizeSemanticRules keeps string values as bare colors and object
// values only when they reduce to non-empty settings. A map that loses all
// entries is dropped entirely (nil), not kept empty.
func normalizeSemanticRules(raw map[string]any) map[string]SemanticStyle {
	out := make(map[string]SemanticStyle, len(raw))
	for key, v := range raw {
		switch sv := v.(type) {
		case string:
			out[key] = SemanticStyle{Color: sv}
		case map[string]any:
			settings := normalizeSettings(sv)
			if !settings.IsZero() {
				out[key] = SemanticStyle{Settings: settings}
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
