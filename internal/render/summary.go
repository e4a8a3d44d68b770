// Package render produces plain-text projections of resolved themes for
// terminal output: an aligned palette summary and a WCAG contrast report.
// It consumes only the resolved palette, never the canonical theme.
package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ajramos/themecast/internal/hexcolor"
	"github.com/ajramos/themecast/internal/palette"
)

// Summary renders a resolved theme as an aligned text block: provenance
// header, one line per palette slot in registry order, then the reduced
// essentials view.
func Summary(resolved *palette.ResolvedTheme) string {
	var b strings.Builder

	meta := resolved.Meta
	label := meta.Label
	if label == "" {
		label = meta.ID
	}
	fmt.Fprintf(&b, "Theme: %s", label)
	if meta.ID != "" && meta.ID != label {
		fmt.Fprintf(&b, " (%s)", meta.ID)
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Kind: %s", meta.Kind)
	if meta.Origin != "" {
		fmt.Fprintf(&b, "    Origin: %s", meta.Origin)
	}
	b.WriteByte('\n')
	if meta.Path != "" {
		fmt.Fprintf(&b, "Source: %s\n", meta.Path)
	}

	width := slotColumnWidth()

	b.WriteString("\nPalette\n")
	for _, slot := range palette.Slots() {
		fmt.Fprintf(&b, "  %s  %s\n", fitWidth(string(slot), width), resolved.Palette[slot])
	}

	b.WriteString("\nEssentials\n")
	ess := resolved.Essentials
	rows := []struct{ name, value string }{
		{"background", ess.Background},
		{"foreground", ess.Foreground},
		{"accent", ess.Accent},
		{"muted", ess.Muted},
		{"border", ess.Border},
		{"selection", ess.Selection},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "  %s  %s\n", fitWidth(row.name, width), row.value)
	}

	return b.String()
}

// contrastPairs lists the text-on-surface pairings the report grades.
var contrastPairs = []struct {
	text    palette.Slot
	surface palette.Slot
}{
	{palette.SlotForeground, palette.SlotBackground},
	{palette.SlotCardForeground, palette.SlotCard},
	{palette.SlotPopoverForeground, palette.SlotPopover},
	{palette.SlotPrimaryForeground, palette.SlotPrimary},
	{palette.SlotSecondaryForeground, palette.SlotSecondary},
	{palette.SlotMutedForeground, palette.SlotMuted},
	{palette.SlotAccentForeground, palette.SlotAccent},
	{palette.SlotDestructiveFg, palette.SlotDestructive},
	{palette.SlotSidebarForeground, palette.SlotSidebar},
	{palette.SlotStatusSuccess, palette.SlotBackground},
	{palette.SlotStatusWarning, palette.SlotBackground},
	{palette.SlotStatusError, palette.SlotBackground},
	{palette.SlotStatusInfo, palette.SlotBackground},
	{palette.SlotStatusNeutral, palette.SlotBackground},
}

// ContrastReport renders WCAG contrast ratios for the palette's text-on-
// surface pairings, graded against the 3.0/4.5/7.0 thresholds. Values that
// do not parse as hex degrade to zero luminance instead of failing.
func ContrastReport(resolved *palette.ResolvedTheme) string {
	width := 0
	names := make([]string, len(contrastPairs))
	for i, pair := range contrastPairs {
		names[i] = fmt.Sprintf("%s on %s", pair.text, pair.surface)
		if w := runewidth.StringWidth(names[i]); w > width {
			width = w
		}
	}

	var b strings.Builder
	b.WriteString("Contrast\n")
	for i, pair := range contrastPairs {
		ratio := hexcolor.ContrastRatio(resolved.Palette[pair.text], resolved.Palette[pair.surface])
		fmt.Fprintf(&b, "  %s  %5.2f  %s\n", fitWidth(names[i], width), ratio, grade(ratio))
	}
	return b.String()
}

// grade maps a contrast ratio onto its WCAG conformance level.
func grade(ratio float64) string {
	switch {
	case ratio >= 7:
		return "AAA"
	case ratio >= 4.5:
		return "AA"
	case ratio >= 3:
		return "AA-large"
	default:
		return "FAIL"
	}
}

// slotColumnWidth returns the display width of the widest slot name.
func slotColumnWidth() int {
	width := 0
	for _, slot := range palette.Slots() {
		if w := runewidth.StringWidth(string(slot)); w > width {
			width = w
		}
	}
	return width
}

// fitWidth truncates and pads on the right to fit a fixed width
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	// Truncate by display width with ellipsis
	s = runewidth.Truncate(s, width, "...")
	// Pad on the right to exact width
	pad := width - runewidth.StringWidth(s)
	if pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
