package palette

import "github.com/ajramos/themecast/internal/theme"

// Essentials is the reduced six-color view of a theme, for consumers that
// want a quick sketch rather than the full palette. Each field probes a
// shorter candidate chain and falls straight through to a default; no
// derivation happens here.
type Essentials struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
	Accent     string `json:"accent"`
	Muted      string `json:"muted"`
	Border     string `json:"border"`
	Selection  string `json:"selection"`
}

type essentialSpec struct {
	keys  []string
	dark  string
	light string
}

var essentialSpecs = struct {
	background essentialSpec
	foreground essentialSpec
	accent     essentialSpec
	muted      essentialSpec
	border     essentialSpec
	selection  essentialSpec
}{
	background: essentialSpec{
		keys:  []string{"editor.background"},
		dark:  "#1e1e1e",
		light: "#ffffff",
	},
	foreground: essentialSpec{
		keys:  []string{"editor.foreground", "foreground"},
		dark:  "#d4d4d4",
		light: "#333333",
	},
	accent: essentialSpec{
		keys:  []string{"focusBorder", "button.background", "textLink.foreground"},
		dark:  "#007fd4",
		light: "#0078d4",
	},
	muted: essentialSpec{
		keys:  []string{"descriptionForeground", "disabledForeground"},
		dark:  "#9d9d9d",
		light: "#717171",
	},
	border: essentialSpec{
		keys:  []string{"panel.border", "editorGroup.border"},
		dark:  "#3c3c3c",
		light: "#d4d4d4",
	},
	selection: essentialSpec{
		keys:  []string{"editor.selectionBackground"},
		dark:  "#264f78",
		light: "#add6ff",
	},
}

// ResolveEssentials resolves the reduced palette for a canonical theme.
func ResolveEssentials(t *theme.Theme) Essentials {
	pick := func(spec essentialSpec) string {
		if v, ok := probe(t, spec.keys); ok {
			return v
		}
		if t.Kind.IsDark() {
			return spec.dark
		}
		return spec.light
	}
	return Essentials{
		Background: pick(essentialSpecs.background),
		Foreground: pick(essentialSpecs.foreground),
		Accent:     pick(essentialSpecs.accent),
		Muted:      pick(essentialSpecs.muted),
		Border:     pick(essentialSpecs.border),
		Selection:  pick(essentialSpecs.selection),
	}
}
