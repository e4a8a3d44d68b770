package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ajramos/themecast/internal/config"
	"github.com/ajramos/themecast/internal/palette"
	"github.com/ajramos/themecast/internal/theme"
)

// supportedExtensions lists recognized theme file extensions in the order
// they are probed for a given theme id.
var supportedExtensions = []string{".json", ".yaml", ".yml"}

// ComponentRegistration represents a component that can receive theme updates
type ComponentRegistration struct {
	name     string
	callback PaletteUpdateCallback
}

// themeDir pairs a theme directory with the provenance tag of its files.
type themeDir struct {
	path   string
	origin palette.Origin
}

// ThemeServiceImpl implements ThemeService over prioritized theme
// directories: custom dir first, then the user config dir, then the built-in
// dir. The same id in a higher-priority directory shadows lower ones.
type ThemeServiceImpl struct {
	currentTheme    string
	themesDir       string
	customThemesDir string
	applyThemeFunc  ApplyFunc
	logger          *log.Logger

	// Component registration system
	registeredComponents []ComponentRegistration
	currentResolved      *palette.ResolvedTheme // cache for new registrations

	// persistFunc records the active theme id (e.g. into app config);
	// it runs off the activation path
	persistFunc func(name string) error
	saveWG      sync.WaitGroup
}

// NewThemeService creates a new theme service
func NewThemeService(themesDir, customThemesDir string, applyThemeFunc ApplyFunc) *ThemeServiceImpl {
	return &ThemeServiceImpl{
		currentTheme:    "vscode-dark", // Default theme
		themesDir:       themesDir,
		customThemesDir: customThemesDir,
		applyThemeFunc:  applyThemeFunc,
	}
}

// SetLogger installs a diagnostic logger. A nil logger disables logging.
func (s *ThemeServiceImpl) SetLogger(logger *log.Logger) {
	s.logger = logger
}

// SetPersistFunc installs the hook that records the active theme id after a
// successful activation.
func (s *ThemeServiceImpl) SetPersistFunc(fn func(name string) error) {
	s.persistFunc = fn
}

// ListAvailableThemes returns metadata for every discoverable theme, scanning
// directories in load-priority order so each entry reflects the file that
// ApplyTheme would actually use. Files that fail to parse are skipped.
func (s *ThemeServiceImpl) ListAvailableThemes(ctx context.Context) ([]palette.Meta, error) {
	seen := make(map[string]bool)
	var metas []palette.Meta

	for _, dir := range s.themeDirs() {
		ids, err := s.themesInDirectory(dir.path)
		if err != nil {
			if s.logger != nil {
				s.logger.Printf("skipping theme directory %s: %v", dir.path, err)
			}
			continue
		}
		for _, id := range ids {
			if seen[id] {
				continue
			}
			seen[id] = true

			_, meta, err := s.loadThemeByID(id)
			if err != nil {
				if s.logger != nil {
					s.logger.Printf("skipping theme %q: %v", id, err)
				}
				continue
			}
			metas = append(metas, meta)
		}
	}

	if len(metas) == 0 {
		return nil, ErrNoThemes
	}
	return metas, nil
}

// GetCurrentTheme returns the name of the currently active theme
func (s *ThemeServiceImpl) GetCurrentTheme(ctx context.Context) (string, error) {
	return s.currentTheme, nil
}

// GetCurrentResolvedTheme returns the most recently applied resolved theme,
// or nil before the first activation.
func (s *ThemeServiceImpl) GetCurrentResolvedTheme() *palette.ResolvedTheme {
	return s.currentResolved
}

// ApplyTheme loads, resolves and activates the named theme: the live style
// target is updated first, then every registered component is notified. The
// previously active theme stays in place when loading or resolution fails.
func (s *ThemeServiceImpl) ApplyTheme(ctx context.Context, name string) error {
	resolved, err := s.ResolveTheme(ctx, name)
	if err != nil {
		return err
	}

	// Apply theme using the provided function
	if s.applyThemeFunc != nil {
		if err := s.applyThemeFunc(resolved); err != nil {
			return fmt.Errorf("failed to apply theme '%s': %w", name, err)
		}
	}

	// Cache before notifying so components registered mid-notification
	// still observe the new palette.
	s.currentResolved = resolved

	if err := s.notifyComponents(resolved); err != nil {
		return fmt.Errorf("failed to notify components of theme change: %w", err)
	}

	s.currentTheme = name
	s.persistActiveTheme(name)

	if s.logger != nil {
		s.logger.Printf("applied theme %q from %s", name, resolved.Meta.Path)
	}
	return nil
}

// ResolveTheme loads and fully resolves the named theme without activating it.
func (s *ThemeServiceImpl) ResolveTheme(ctx context.Context, name string) (*palette.ResolvedTheme, error) {
	t, meta, err := s.loadThemeByID(name)
	if err != nil {
		return nil, err
	}
	return palette.BuildResolvedTheme(t, meta), nil
}

// PreviewTheme returns the resolved theme for display without applying it
func (s *ThemeServiceImpl) PreviewTheme(ctx context.Context, name string) (*palette.ResolvedTheme, error) {
	return s.ResolveTheme(ctx, name)
}

// ValidateTheme checks if a theme can be loaded and parsed
func (s *ThemeServiceImpl) ValidateTheme(ctx context.Context, name string) error {
	_, _, err := s.loadThemeByID(name)
	return err
}

// RegisterComponent registers a component to receive theme updates. When a
// theme is already active its palette is delivered immediately.
func (s *ThemeServiceImpl) RegisterComponent(name string, callback PaletteUpdateCallback) error {
	s.registeredComponents = append(s.registeredComponents, ComponentRegistration{
		name:     name,
		callback: callback,
	})

	if s.currentResolved != nil {
		if err := callback(s.currentResolved); err != nil {
			return fmt.Errorf("failed to apply current theme to component '%s': %w", name, err)
		}
	}

	return nil
}

// UnregisterComponent removes a component from theme updates
func (s *ThemeServiceImpl) UnregisterComponent(name string) {
	for i, component := range s.registeredComponents {
		if component.name == name {
			s.registeredComponents = append(s.registeredComponents[:i], s.registeredComponents[i+1:]...)
			break
		}
	}
}

// notifyComponents sends theme updates to all registered components. Every
// callback runs even when earlier ones fail; failures are aggregated.
func (s *ThemeServiceImpl) notifyComponents(resolved *palette.ResolvedTheme) error {
	var failures []string

	for _, component := range s.registeredComponents {
		if err := component.callback(resolved); err != nil {
			failures = append(failures, fmt.Sprintf("component '%s': %v", component.name, err))
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("theme update errors: %s", strings.Join(failures, "; "))
	}

	return nil
}

// persistActiveTheme records the active theme id through the persist hook
// without blocking activation. Failures are logged, never surfaced: switching
// themes must not fail because the config file could not be written.
func (s *ThemeServiceImpl) persistActiveTheme(name string) {
	if s.persistFunc == nil {
		return
	}
	s.saveWG.Add(1)
	go func() {
		defer s.saveWG.Done()
		if err := s.persistFunc(name); err != nil && s.logger != nil {
			s.logger.Printf("failed to persist active theme %q: %v", name, err)
		}
	}()
}

// Helper methods

// themeDirs returns the theme directories in load-priority order.
func (s *ThemeServiceImpl) themeDirs() []themeDir {
	var dirs []themeDir

	if s.customThemesDir != "" {
		dirs = append(dirs, themeDir{path: s.customThemesDir, origin: palette.OriginCustom})
	}
	if user := config.DefaultUserThemesDir(); user != "" {
		dirs = append(dirs, themeDir{path: user, origin: palette.OriginUser})
	}
	if s.themesDir != "" {
		dirs = append(dirs, themeDir{path: s.themesDir, origin: palette.OriginBuiltin})
	}

	return dirs
}

// themesInDirectory lists theme ids (file names minus extension) in a
// directory. A missing directory yields an empty list, not an error.
func (s *ThemeServiceImpl) themesInDirectory(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read themes directory %s: %w", dir, err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		for _, ext := range supportedExtensions {
			if strings.HasSuffix(name, ext) {
				ids = append(ids, strings.TrimSuffix(name, ext))
				break
			}
		}
	}

	return ids, nil
}

// loadThemeByID finds and parses a theme by id, probing each directory in
// priority order and each supported extension within a directory.
func (s *ThemeServiceImpl) loadThemeByID(id string) (*theme.Theme, palette.Meta, error) {
	for _, dir := range s.themeDirs() {
		for _, ext := range supportedExtensions {
			path := filepath.Join(dir.path, id+ext)
			if _, err := os.Stat(path); err != nil {
				continue
			}

			t, err := s.parseThemeFile(path)
			if err != nil {
				return nil, palette.Meta{}, fmt.Errorf("failed to load theme '%s': %w", id, err)
			}

			meta := palette.Meta{
				ID:     id,
				Label:  t.Name,
				Kind:   t.Kind,
				Path:   path,
				Origin: dir.origin,
			}
			return t, meta, nil
		}
	}

	return nil, palette.Meta{}, fmt.Errorf("theme %q: %w", id, ErrThemeNotFound)
}

// parseThemeFile reads and parses one theme document, dispatching on the
// file extension.
func (s *ThemeServiceImpl) parseThemeFile(path string) (*theme.Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return theme.ParseYAML(data)
	default:
		return theme.Parse(data)
	}
}
