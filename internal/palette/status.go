package palette

import "github.com/ajramos/themecast/internal/theme"

// StatusPalette holds the five semantic status colors. Unlike UI slots these
// never derive from each other; a slot either probes successfully or takes
// its color from one cohesive preset, so mixed results still sit in the same
// family as the untouched preset entries.
type StatusPalette struct {
	Success string `json:"success"`
	Warning string `json:"warning"`
	Error   string `json:"error"`
	Info    string `json:"info"`
	Neutral string `json:"neutral"`
}

// Candidate chains per status color. Plain ANSI slots outrank their bright
// variants.
var (
	successKeys = []string{
		"terminal.ansiGreen",
		"terminal.ansiBrightGreen",
		"testing.iconPassed",
		"gitDecoration.addedResourceForeground",
		"charts.green",
	}
	warningKeys = []string{
		"editorWarning.foreground",
		"list.warningForeground",
		"terminal.ansiYellow",
		"charts.yellow",
	}
	errorKeys = []string{
		"editorError.foreground",
		"list.errorForeground",
		"errorForeground",
		"terminal.ansiRed",
		"charts.red",
	}
	infoKeys = []string{
		"editorInfo.foreground",
		"terminal.ansiBlue",
		"charts.blue",
		"textLink.foreground",
	}
	neutralKeys = []string{
		"descriptionForeground",
		"disabledForeground",
		"terminal.ansiBrightBlack",
		"editorHint.foreground",
	}
)

// DarkStatusPreset returns the status colors used when a dark theme defines
// none of its own.
func DarkStatusPreset() StatusPalette {
	return StatusPalette{
		Success: "#89d185",
		Warning: "#cca700",
		Error:   "#f48771",
		Info:    "#75beff",
		Neutral: "#8b949e",
	}
}

// LightStatusPreset returns the status colors used when a light theme
// defines none of its own.
func LightStatusPreset() StatusPalette {
	return StatusPalette{
		Success: "#388a34",
		Warning: "#bf8803",
		Error:   "#e51400",
		Info:    "#1a85ff",
		Neutral: "#717171",
	}
}

// ResolveStatus resolves the five status colors for a canonical theme. The
// whole preset matching the theme's brightness is taken first, then each
// color that probes successfully overwrites its preset entry.
func ResolveStatus(t *theme.Theme) StatusPalette {
	out := LightStatusPreset()
	if t.Kind.IsDark() {
		out = DarkStatusPreset()
	}
	if v, ok := probe(t, successKeys); ok {
		out.Success = v
	}
	if v, ok := probe(t, warningKeys); ok {
		out.Warning = v
	}
	if v, ok := probe(t, errorKeys); ok {
		out.Error = v
	}
	if v, ok := probe(t, infoKeys); ok {
		out.Info = v
	}
	if v, ok := probe(t, neutralKeys); ok {
		out.Neutral = v
	}
	return out
}
