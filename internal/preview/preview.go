// Package preview displays a resolved palette as an interactive terminal
// table: one row per slot with its value and a color swatch, drawn in the
// theme's own colors.
package preview

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/ajramos/themecast/internal/hexcolor"
	"github.com/ajramos/themecast/internal/palette"
)

const swatchWidth = 8

// Viewer is a standalone tview application showing a single resolved theme.
type Viewer struct {
	app      *tview.Application
	table    *tview.Table
	footer   *tview.TextView
	root     *tview.Flex
	resolved *palette.ResolvedTheme
}

// NewViewer builds the preview UI for a resolved theme. The application is
// not started until Run is called.
func NewViewer(resolved *palette.ResolvedTheme) *Viewer {
	v := &Viewer{
		app:      tview.NewApplication(),
		table:    tview.NewTable(),
		footer:   tview.NewTextView(),
		resolved: resolved,
	}
	v.buildTable()
	v.buildFooter()

	v.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(v.table, 0, 1, true).
		AddItem(v.footer, 1, 0, false)
	v.root.SetBackgroundColor(v.slotColor(palette.SlotBackground))

	v.bindKeys()
	return v
}

// Run starts the preview and blocks until the user closes it.
func (v *Viewer) Run() error {
	v.app.SetRoot(v.root, true)
	return v.app.Run()
}

// Run is a convenience wrapper that builds and runs a Viewer.
func Run(resolved *palette.ResolvedTheme) error {
	return NewViewer(resolved).Run()
}

func (v *Viewer) buildTable() {
	bg := v.slotColor(palette.SlotBackground)
	fg := v.slotColor(palette.SlotForeground)
	muted := v.slotColor(palette.SlotMutedForeground)

	v.table.SetBackgroundColor(bg)
	v.table.SetBorder(true)
	v.table.SetBorderColor(v.slotColor(palette.SlotBorder))
	v.table.SetTitle(" 🎨 " + v.title() + " ")
	v.table.SetTitleColor(v.slotColor(palette.SlotPrimary))

	v.table.SetBorders(false).
		SetFixed(1, 0).
		SetSelectable(true, false)
	v.table.SetSelectedStyle(tcell.StyleDefault.
		Background(v.slotColor(palette.SlotSelection)).
		Foreground(fg))

	headers := []string{"SLOT", "VALUE", "SWATCH"}
	for col, header := range headers {
		cell := tview.NewTableCell(header).
			SetSelectable(false).
			SetTextColor(v.slotColor(palette.SlotPrimary)).
			SetBackgroundColor(bg)
		if col == 0 {
			cell.SetExpansion(1)
		}
		v.table.SetCell(0, col, cell)
	}

	for i, slot := range palette.Slots() {
		value := v.resolved.Palette[slot]
		row := i + 1

		v.table.SetCell(row, 0, tview.NewTableCell(string(slot)).
			SetTextColor(fg).
			SetBackgroundColor(bg).
			SetExpansion(1))
		v.table.SetCell(row, 1, tview.NewTableCell(value).
			SetTextColor(muted).
			SetBackgroundColor(bg))
		v.table.SetCell(row, 2, tview.NewTableCell(strings.Repeat(" ", swatchWidth)).
			SetBackgroundColor(cellColor(value)))
	}

	v.table.Select(1, 0)
}

func (v *Viewer) buildFooter() {
	v.footer.SetText(" ↑/↓ move   Esc/q close ")
	v.footer.SetTextColor(v.slotColor(palette.SlotMutedForeground))
	v.footer.SetBackgroundColor(v.slotColor(palette.SlotBackground))
}

func (v *Viewer) bindKeys() {
	v.table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape:
			v.app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				v.app.Stop()
				return nil
			}
		}
		return event
	})
}

func (v *Viewer) title() string {
	meta := v.resolved.Meta
	label := meta.Label
	if label == "" {
		label = meta.ID
	}
	if meta.Kind != "" {
		return label + " (" + string(meta.Kind) + ")"
	}
	return label
}

func (v *Viewer) slotColor(slot palette.Slot) tcell.Color {
	return cellColor(v.resolved.Palette[slot])
}

// cellColor converts a palette value to a terminal color. Values are
// normalized to 6-digit hex first; tcell only parses that form.
func cellColor(value string) tcell.Color {
	value = strings.TrimSpace(strings.ToLower(hexcolor.Normalize(value)))
	if value == "" {
		return tcell.ColorDefault
	}
	return tcell.GetColor(value).TrueColor()
}
