package palette

import (
	"fmt"
	"strings"
)

// DefaultSelector scopes generated stylesheets to the document root.
const DefaultSelector = ":root"

// Stylesheet renders the palette as a block of CSS custom property
// declarations under the given selector. Slots appear in registry order, so
// output is byte-identical for identical palettes. An empty selector falls
// back to DefaultSelector.
func (p Palette) Stylesheet(selector string) string {
	if strings.TrimSpace(selector) == "" {
		selector = DefaultSelector
	}
	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, slot := range Slots() {
		fmt.Fprintf(&b, "  %s: %s;\n", PropertyName(slot), p[slot])
	}
	b.WriteString("}")
	return b.String()
}
