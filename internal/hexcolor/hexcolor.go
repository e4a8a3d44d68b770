// Package hexcolor provides the numeric color handling behind palette
// resolution: hex validation and normalization, brightness adjustment, and
// luminance/contrast helpers. Theme colors come from untrusted authors, so
// nothing here fails on bad input; malformed values pass through unchanged.
package hexcolor

import (
	"fmt"
	"math"
	"strconv"
)

// IsValid reports whether s is "#" followed by exactly 3, 6, or 8 hex digits.
func IsValid(s string) bool {
	if len(s) == 0 || s[0] != '#' {
		return false
	}
	digits := s[1:]
	switch len(digits) {
	case 3, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// Normalize reduces a valid hex color to its 6-digit form: short form digits
// are doubled ("#abc" → "#aabbcc") and an alpha channel is truncated
// ("#aabbccdd" → "#aabbcc"). Anything else, including invalid input, is
// returned unchanged; Normalize never validates.
func Normalize(s string) string {
	if !IsValid(s) {
		return s
	}
	digits := s[1:]
	switch len(digits) {
	case 3:
		return "#" + string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	case 8:
		return s[:7]
	default:
		return s
	}
}

// AdjustBrightness shifts every channel of a hex color by amount, where
// amount is a fraction of the full byte range in [-1, 1]: positive lightens,
// negative darkens, and results clamp to byte bounds. Input that does not
// parse as a hex color is returned unchanged.
func AdjustBrightness(hex string, amount float64) string {
	r, g, b, ok := parseRGB(Normalize(hex))
	if !ok {
		return hex
	}
	return fmt.Sprintf("#%02x%02x%02x", shift(r, amount), shift(g, amount), shift(b, amount))
}

func shift(channel uint8, amount float64) uint8 {
	v := math.Round(float64(channel) + 255*amount)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func parseRGB(hex string) (r, g, b uint8, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	rv, err := strconv.ParseUint(hex[1:3], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	gv, err := strconv.ParseUint(hex[3:5], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	bv, err := strconv.ParseUint(hex[5:7], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(rv), uint8(gv), uint8(bv), true
}
