package preview

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ajramos/themecast/internal/palette"
	"github.com/ajramos/themecast/internal/theme"
)

func previewTestTheme() *palette.ResolvedTheme {
	src := &theme.Theme{
		Name: "Preview Dark",
		Kind: theme.Dark,
		Colors: map[string]string{
			"editor.background": "#101216",
			"editor.foreground": "#c9d1d9",
		},
	}
	return palette.BuildResolvedTheme(src, palette.Meta{
		ID:     "preview-dark",
		Label:  "Preview Dark",
		Kind:   theme.Dark,
		Origin: palette.OriginBuiltin,
	})
}

func TestNewViewerTableLayout(t *testing.T) {
	v := NewViewer(previewTestTheme())

	if got, want := v.table.GetRowCount(), len(palette.Slots())+1; got != want {
		t.Fatalf("expected %d rows, got %d", want, got)
	}

	headers := []string{"SLOT", "VALUE", "SWATCH"}
	for col, want := range headers {
		if got := v.table.GetCell(0, col).Text; got != want {
			t.Errorf("header %d: got %q, want %q", col, got, want)
		}
	}

	for i, slot := range palette.Slots() {
		if got := v.table.GetCell(i+1, 0).Text; got != string(slot) {
			t.Fatalf("row %d: got slot %q, want %q", i+1, got, slot)
		}
	}
}

func TestNewViewerSwatchColors(t *testing.T) {
	v := NewViewer(previewTestTheme())

	// Background is the first registry slot.
	if got := v.table.GetCell(1, 1).Text; got != "#101216" {
		t.Fatalf("background value: got %q", got)
	}
	swatch := v.table.GetCell(1, 2)
	if got, want := swatch.BackgroundColor, tcell.GetColor("#101216").TrueColor(); got != want {
		t.Errorf("swatch color: got %v, want %v", got, want)
	}
	if swatch.Text != strings.Repeat(" ", swatchWidth) {
		t.Errorf("swatch text: got %q", swatch.Text)
	}
}

func TestViewerTitle(t *testing.T) {
	if got := NewViewer(previewTestTheme()).title(); got != "Preview Dark (dark)" {
		t.Fatalf("title: got %q", got)
	}
}

func TestViewerKeyBindings(t *testing.T) {
	v := NewViewer(previewTestTheme())

	capture := v.table.GetInputCapture()
	if capture == nil {
		t.Fatal("expected input capture to be installed")
	}
	if got := capture(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); got != nil {
		t.Errorf("escape should be consumed")
	}
	if got := capture(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); got != nil {
		t.Errorf("q should be consumed")
	}
	ev := tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone)
	if got := capture(ev); got != ev {
		t.Errorf("other keys should pass through")
	}
}
