package palette

import (
	"github.com/ajramos/themecast/internal/hexcolor"
	"github.com/ajramos/themecast/internal/theme"
)

// slotSpec declares how one UI slot resolves: candidate theme keys probed in
// order, an optional derivation over already-resolved slots, and a default
// per brightness class.
type slotSpec struct {
	slot   Slot
	keys   []string
	derive func(*resolution) string
	dark   string
	light  string
}

// resolution carries the in-progress slot assignments while a palette is
// being resolved. Derivations read earlier results through it.
type resolution struct {
	dark   bool
	colors map[Slot]string
}

func (r *resolution) lookup(slot Slot) (string, bool) {
	v, ok := r.colors[slot]
	return v, ok
}

// copyOf reuses another slot's color verbatim.
func (r *resolution) copyOf(slot Slot) string {
	v, _ := r.lookup(slot)
	return v
}

// shifted brightens or dims another slot's color. Dark themes shift surfaces
// toward white, light themes toward black, so derived surfaces always read
// as a nearby shade of their base.
func (r *resolution) shifted(slot Slot, amount float64) string {
	v, ok := r.lookup(slot)
	if !ok {
		return ""
	}
	if !r.dark {
		amount = -amount
	}
	return hexcolor.AdjustBrightness(v, amount)
}

// contrastText picks a readable text color for the given slot's surface.
func (r *resolution) contrastText(slot Slot) string {
	v, ok := r.lookup(slot)
	if !ok {
		return ""
	}
	if hexcolor.IsLight(v) {
		return "#1f1f1f"
	}
	return "#ffffff"
}

// slotRegistry is the single source of truth for UI slot resolution. Order
// matters twice: stylesheet output follows it, and derivations may only read
// slots declared earlier.
var slotRegistry = []slotSpec{
	{
		slot:  SlotBackground,
		keys:  []string{"editor.background"},
		dark:  "#1e1e1e",
		light: "#ffffff",
	},
	{
		slot:  SlotForeground,
		keys:  []string{"editor.foreground", "foreground"},
		dark:  "#d4d4d4",
		light: "#333333",
	},
	{
		slot:   SlotCard,
		keys:   []string{"sideBar.background", "editorWidget.background"},
		derive: func(r *resolution) string { return r.shifted(SlotBackground, 0.03) },
		dark:   "#252526",
		light:  "#f3f3f3",
	},
	{
		slot:   SlotCardForeground,
		keys:   []string{"sideBar.foreground"},
		derive: func(r *resolution) string { return r.copyOf(SlotForeground) },
		dark:   "#d4d4d4",
		light:  "#333333",
	},
	{
		slot:   SlotPopover,
		keys:   []string{"editorWidget.background", "dropdown.background"},
		derive: func(r *resolution) string { return r.shifted(SlotBackground, 0.05) },
		dark:   "#252526",
		light:  "#ffffff",
	},
	{
		slot:   SlotPopoverForeground,
		keys:   []string{"editorWidget.foreground", "dropdown.foreground"},
		derive: func(r *resolution) string { return r.copyOf(SlotForeground) },
		dark:   "#d4d4d4",
		light:  "#333333",
	},
	{
		slot:  SlotPrimary,
		keys:  []string{"button.background", "focusBorder", "textLink.foreground"},
		dark:  "#0e639c",
		light: "#007acc",
	},
	{
		slot:   SlotPrimaryForeground,
		keys:   []string{"button.foreground"},
		derive: func(r *resolution) string { return r.contrastText(SlotPrimary) },
		dark:   "#ffffff",
		light:  "#ffffff",
	},
	{
		slot:   SlotSecondary,
		keys:   []string{"button.secondaryBackground"},
		derive: func(r *resolution) string { return r.shifted(SlotBackground, 0.06) },
		dark:   "#3a3d41",
		light:  "#e5e5e5",
	},
	{
		slot:   SlotSecondaryForeground,
		keys:   []string{"button.secondaryForeground"},
		derive: func(r *resolution) string { return r.copyOf(SlotForeground) },
		dark:   "#ffffff",
		light:  "#1f1f1f",
	},
	{
		slot:   SlotMuted,
		keys:   []string{"input.background"},
		derive: func(r *resolution) string { return r.shifted(SlotBackground, 0.04) },
		dark:   "#2d2d30",
		light:  "#ececec",
	},
	{
		slot:   SlotMutedForeground,
		keys:   []string{"descriptionForeground", "disabledForeground"},
		derive: func(r *resolution) string { return r.shifted(SlotForeground, -0.25) },
		dark:   "#9d9d9d",
		light:  "#717171",
	},
	{
		slot:   SlotAccent,
		keys:   []string{"list.activeSelectionBackground", "list.hoverBackground"},
		derive: func(r *resolution) string { return r.shifted(SlotPrimary, -0.2) },
		dark:   "#04395e",
		light:  "#e4e6f1",
	},
	{
		slot:   SlotAccentForeground,
		keys:   []string{"list.activeSelectionForeground"},
		derive: func(r *resolution) string { return r.copyOf(SlotForeground) },
		dark:   "#ffffff",
		light:  "#1f1f1f",
	},
	{
		slot:  SlotDestructive,
		keys:  []string{"errorForeground", "editorError.foreground", "inputValidation.errorBorder"},
		dark:  "#f48771",
		light: "#e51400",
	},
	{
		slot:   SlotDestructiveFg,
		derive: func(r *resolution) string { return r.contrastText(SlotDestructive) },
		dark:   "#ffffff",
		light:  "#ffffff",
	},
	{
		slot:   SlotBorder,
		keys:   []string{"panel.border", "editorGroup.border", "contrastBorder"},
		derive: func(r *resolution) string { return r.shifted(SlotBackground, 0.1) },
		dark:   "#3c3c3c",
		light:  "#d4d4d4",
	},
	{
		slot:   SlotInput,
		keys:   []string{"input.background", "input.border"},
		derive: func(r *resolution) string { return r.shifted(SlotBackground, 0.06) },
		dark:   "#3c3c3c",
		light:  "#ffffff",
	},
	{
		slot:   SlotRing,
		keys:   []string{"focusBorder"},
		derive: func(r *resolution) string { return r.copyOf(SlotPrimary) },
		dark:   "#007fd4",
		light:  "#0090f1",
	},
	{
		slot:   SlotSelection,
		keys:   []string{"editor.selectionBackground"},
		derive: func(r *resolution) string { return r.shifted(SlotBackground, 0.15) },
		dark:   "#264f78",
		light:  "#add6ff",
	},
	{
		slot:   SlotSidebar,
		keys:   []string{"sideBar.background", "activityBar.background"},
		derive: func(r *resolution) string { return r.shifted(SlotBackground, 0.02) },
		dark:   "#252526",
		light:  "#f3f3f3",
	},
	{
		slot:   SlotSidebarForeground,
		keys:   []string{"sideBar.foreground", "activityBar.foreground"},
		derive: func(r *resolution) string { return r.copyOf(SlotForeground) },
		dark:   "#cccccc",
		light:  "#616161",
	},
	{
		slot:   SlotSidebarPrimary,
		keys:   []string{"activityBarBadge.background"},
		derive: func(r *resolution) string { return r.copyOf(SlotPrimary) },
		dark:   "#0e639c",
		light:  "#007acc",
	},
	{
		slot:   SlotSidebarPrimaryFg,
		keys:   []string{"activityBarBadge.foreground"},
		derive: func(r *resolution) string { return r.copyOf(SlotPrimaryForeground) },
		dark:   "#ffffff",
		light:  "#ffffff",
	},
	{
		slot:   SlotSidebarAccent,
		keys:   []string{"list.hoverBackground"},
		derive: func(r *resolution) string { return r.shifted(SlotSidebar, 0.05) },
		dark:   "#2a2d2e",
		light:  "#e8e8e8",
	},
	{
		slot:   SlotSidebarAccentFg,
		keys:   []string{"list.hoverForeground"},
		derive: func(r *resolution) string { return r.copyOf(SlotSidebarForeground) },
		dark:   "#cccccc",
		light:  "#1f1f1f",
	},
	{
		slot:   SlotSidebarBorder,
		keys:   []string{"sideBar.border"},
		derive: func(r *resolution) string { return r.shifted(SlotSidebar, 0.08) },
		dark:   "#3c3c3c",
		light:  "#d4d4d4",
	},
	{
		slot:   SlotSidebarRing,
		keys:   []string{"focusBorder"},
		derive: func(r *resolution) string { return r.copyOf(SlotRing) },
		dark:   "#007fd4",
		light:  "#0090f1",
	},
}

// ResolvePalette resolves the full output palette for a canonical theme.
// Resolution runs in three complete passes over the registry: first every
// slot probes its candidate keys, then unresolved slots run their
// derivations against the probe results, and finally whatever is still
// missing takes the default matching the theme's brightness. The passes
// never interleave, so a derivation sees exactly the probe results plus the
// derivations declared before it.
func ResolvePalette(t *theme.Theme) Palette {
	r := &resolution{
		dark:   t.Kind.IsDark(),
		colors: make(map[Slot]string, len(slotRegistry)+len(statusSlotOrder)),
	}

	for _, spec := range slotRegistry {
		if v, ok := probe(t, spec.keys); ok {
			r.colors[spec.slot] = v
		}
	}

	for _, spec := range slotRegistry {
		if _, done := r.colors[spec.slot]; done || spec.derive == nil {
			continue
		}
		if v := spec.derive(r); v != "" {
			r.colors[spec.slot] = v
		}
	}

	for _, spec := range slotRegistry {
		if _, done := r.colors[spec.slot]; done {
			continue
		}
		if r.dark {
			r.colors[spec.slot] = spec.dark
		} else {
			r.colors[spec.slot] = spec.light
		}
	}

	status := ResolveStatus(t)
	r.colors[SlotStatusSuccess] = status.Success
	r.colors[SlotStatusWarning] = status.Warning
	r.colors[SlotStatusError] = status.Error
	r.colors[SlotStatusInfo] = status.Info
	r.colors[SlotStatusNeutral] = status.Neutral

	return Palette(r.colors)
}
