package hexcolor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLuminance(t *testing.T) {
	assert.InDelta(t, 1.0, Luminance("#ffffff"), 1e-9)
	assert.InDelta(t, 0.0, Luminance("#000000"), 1e-9)
	assert.InDelta(t, 0.2126, Luminance("#ff0000"), 1e-6)
	assert.InDelta(t, 0.2159, Luminance("#808080"), 0.005)

	// Short and alpha forms go through normalization first.
	assert.InDelta(t, 1.0, Luminance("#fff"), 1e-9)
	assert.InDelta(t, 1.0, Luminance("#ffffff00"), 1e-9)

	assert.Zero(t, Luminance("nope"))
}

func TestContrastRatio(t *testing.T) {
	assert.InDelta(t, 21.0, ContrastRatio("#000000", "#ffffff"), 1e-9)
	assert.InDelta(t, 1.0, ContrastRatio("#336699", "#336699"), 1e-9)
	assert.Equal(t, ContrastRatio("#112233", "#eeeeee"), ContrastRatio("#eeeeee", "#112233"))
}

func TestIsLight(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"white", "#ffffff", true},
		{"black", "#000000", false},
		{"light_gray", "#e0e0e0", true},
		{"dark_blue", "#112233", false},
		{"mid_gray_favors_dark_text", "#808080", true},
		{"short_form", "#fff", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLight(tt.input))
		})
	}
}
