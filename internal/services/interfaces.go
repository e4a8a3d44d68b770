// Package services hosts the stateful collaborators around the theme core:
// theme discovery and activation over prioritized directories, and the
// registration cache in front of the token-highlighting engine. The core
// packages stay pure; everything process-wide lives here.
package services

import (
	"context"

	"github.com/ajramos/themecast/internal/palette"
	"github.com/ajramos/themecast/internal/theme"
)

// PaletteUpdateCallback is invoked with the freshly resolved theme whenever
// the active theme changes.
type PaletteUpdateCallback func(*palette.ResolvedTheme) error

// ApplyFunc pushes a resolved theme onto the application's live style target.
type ApplyFunc func(*palette.ResolvedTheme) error

// ThemeService handles theme discovery, resolution and activation
type ThemeService interface {
	ListAvailableThemes(ctx context.Context) ([]palette.Meta, error)
	GetCurrentTheme(ctx context.Context) (string, error)
	GetCurrentResolvedTheme() *palette.ResolvedTheme
	ApplyTheme(ctx context.Context, name string) error
	ResolveTheme(ctx context.Context, name string) (*palette.ResolvedTheme, error)
	PreviewTheme(ctx context.Context, name string) (*palette.ResolvedTheme, error)
	ValidateTheme(ctx context.Context, name string) error
	RegisterComponent(name string, callback PaletteUpdateCallback) error
	UnregisterComponent(name string)
}

// HighlightService hands canonical themes to the token-coloring engine and
// answers scope lookups against the registered theme. It receives the
// canonical theme, never the resolved palette.
type HighlightService interface {
	RegisterTheme(ctx context.Context, id string, t *theme.Theme) error
	CurrentThemeID() string
	StyleForScope(ctx context.Context, scope string) (theme.StyleSettings, bool)
	Reset()
}
