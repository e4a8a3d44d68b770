package hexcolor

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Luminance returns the WCAG relative luminance of a hex color in [0, 1].
// Unparseable input yields 0 rather than an error.
func Luminance(hex string) float64 {
	c, err := colorful.Hex(strings.ToLower(Normalize(hex)))
	if err != nil {
		return 0
	}
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

// linearize converts an sRGB channel to its linear-light value.
func linearize(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between two colors, in
// [1, 21]. Order of arguments does not matter.
func ContrastRatio(a, b string) float64 {
	la, lb := Luminance(a), Luminance(b)
	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// IsLight reports whether dark text reads better than light text on the
// given color, i.e. whether the color behaves as a light surface.
func IsLight(hex string) bool {
	return ContrastRatio("#000000", hex) > ContrastRatio("#ffffff", hex)
}
