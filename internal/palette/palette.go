// Package palette resolves the application's fixed set of output colors from
// a canonical theme. Every slot resolves through the same machinery: an
// ordered probe over candidate workbench color keys, an optional derivation
// from already-resolved slots, and a brightness-matched hard-coded default.
// Resolution is total: consumers never observe a missing slot.
package palette

import "github.com/ajramos/themecast/internal/theme"

// Slot names one output color the application consumes.
type Slot string

const (
	SlotBackground          Slot = "background"
	SlotForeground          Slot = "foreground"
	SlotCard                Slot = "card"
	SlotCardForeground      Slot = "card-foreground"
	SlotPopover             Slot = "popover"
	SlotPopoverForeground   Slot = "popover-foreground"
	SlotPrimary             Slot = "primary"
	SlotPrimaryForeground   Slot = "primary-foreground"
	SlotSecondary           Slot = "secondary"
	SlotSecondaryForeground Slot = "secondary-foreground"
	SlotMuted               Slot = "muted"
	SlotMutedForeground     Slot = "muted-foreground"
	SlotAccent              Slot = "accent"
	SlotAccentForeground    Slot = "accent-foreground"
	SlotDestructive         Slot = "destructive"
	SlotDestructiveFg       Slot = "destructive-foreground"
	SlotBorder              Slot = "border"
	SlotInput               Slot = "input"
	SlotRing                Slot = "ring"
	SlotSelection           Slot = "selection"
	SlotSidebar             Slot = "sidebar"
	SlotSidebarForeground   Slot = "sidebar-foreground"
	SlotSidebarPrimary      Slot = "sidebar-primary"
	SlotSidebarPrimaryFg    Slot = "sidebar-primary-foreground"
	SlotSidebarAccent       Slot = "sidebar-accent"
	SlotSidebarAccentFg     Slot = "sidebar-accent-foreground"
	SlotSidebarBorder       Slot = "sidebar-border"
	SlotSidebarRing         Slot = "sidebar-ring"

	SlotStatusSuccess Slot = "status-success"
	SlotStatusWarning Slot = "status-warning"
	SlotStatusError   Slot = "status-error"
	SlotStatusInfo    Slot = "status-info"
	SlotStatusNeutral Slot = "status-neutral"
)

// Palette maps every declared slot to its resolved color string. Values are
// opaque to this package's consumers; probed colors pass through exactly as
// the theme author wrote them, derived colors are 6-digit hex.
type Palette map[Slot]string

// statusSlotOrder fixes where the status slots sit in the registry.
var statusSlotOrder = []Slot{
	SlotStatusSuccess,
	SlotStatusWarning,
	SlotStatusError,
	SlotStatusInfo,
	SlotStatusNeutral,
}

// Slots returns the full slot registry in declaration order, status slots
// last. The order is stable across calls and releases consume it for
// deterministic stylesheet output.
func Slots() []Slot {
	out := make([]Slot, 0, len(slotRegistry)+len(statusSlotOrder))
	for _, spec := range slotRegistry {
		out = append(out, spec.slot)
	}
	out = append(out, statusSlotOrder...)
	return out
}

// probe returns the first non-empty theme color along the candidate chain.
func probe(t *theme.Theme, keys []string) (string, bool) {
	for _, key := range keys {
		if v, ok := t.Color(key); ok {
			return v, true
		}
	}
	return "", false
}
