package palette

import "github.com/ajramos/themecast/internal/theme"

// Origin tags where a theme document was discovered.
type Origin string

const (
	OriginBuiltin Origin = "builtin"
	OriginCustom  Origin = "custom"
	OriginUser    Origin = "user"
)

// Meta identifies a theme for listings and lookups. It is provenance
// supplied by the caller and passes through resolution untouched; nothing in
// it is computed from the document's colors.
type Meta struct {
	ID     string     `json:"id"`
	Label  string     `json:"label"`
	Kind   theme.Kind `json:"kind"`
	Path   string     `json:"path,omitempty"`
	Origin Origin     `json:"origin"`
}

// ResolvedTheme is the complete artifact handed to palette consumers: the
// caller's metadata, every resolved output surface, and the canonical source
// document for consumers that need token-level styling.
type ResolvedTheme struct {
	Meta       Meta          `json:"meta"`
	Palette    Palette       `json:"palette"`
	Status     StatusPalette `json:"status"`
	Essentials Essentials    `json:"essentials"`
	Source     *theme.Theme  `json:"-"`
}

// BuildResolvedTheme resolves every output surface of a canonical theme in
// one shot. The same theme document always yields the same artifact.
func BuildResolvedTheme(t *theme.Theme, meta Meta) *ResolvedTheme {
	return &ResolvedTheme{
		Meta:       meta,
		Palette:    ResolvePalette(t),
		Status:     ResolveStatus(t),
		Essentials: ResolveEssentials(t),
		Source:     t,
	}
}

// StyleSetter receives palette property writes. Implementations map the
// custom property names onto whatever styling system they drive.
type StyleSetter interface {
	SetProperty(name, value string)
}

// Apply writes every slot onto the target as one batch, in registry order,
// so consumers either see the previous palette or the complete new one.
func (p Palette) Apply(target StyleSetter) {
	for _, slot := range Slots() {
		target.SetProperty(PropertyName(slot), p[slot])
	}
}

// PropertyName returns the CSS custom property name for a slot.
func PropertyName(slot Slot) string {
	return "--" + string(slot)
}
