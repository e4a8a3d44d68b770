package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ajramos/themecast/internal/palette"
	"github.com/ajramos/themecast/internal/theme"
)

const testDarkJSON = `{
	"name": "Test Dark",
	"type": "dark",
	"colors": {
		"editor.background": "#101216",
		"editor.foreground": "#c9d1d9",
		"terminal.ansiGreen": "#3fb950"
	}
}`

const testLightYAML = `
name: Test Light
type: light
colors:
  editor.background: "#fdf6e3"
  editor.foreground: "#586e75"
`

func writeTheme(t *testing.T, dir, filename, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644))
}

// isolateHome points the user theme directory at an empty temp dir so host
// themes cannot leak into discovery.
func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestNewThemeService(t *testing.T) {
	applyFunc := func(*palette.ResolvedTheme) error { return nil }

	service := NewThemeService("/path/to/themes", "/path/to/custom", applyFunc)

	assert.NotNil(t, service)
	assert.Equal(t, "vscode-dark", service.currentTheme) // Default theme
	assert.Equal(t, "/path/to/themes", service.themesDir)
	assert.Equal(t, "/path/to/custom", service.customThemesDir)
	assert.NotNil(t, service.applyThemeFunc)
	assert.Nil(t, service.GetCurrentResolvedTheme())
}

func TestThemeServiceImpl_ListAvailableThemes(t *testing.T) {
	isolateHome(t)
	tmpDir := t.TempDir()
	themesDir := filepath.Join(tmpDir, "themes")
	customDir := filepath.Join(tmpDir, "custom")

	writeTheme(t, themesDir, "test-dark.json", testDarkJSON)
	writeTheme(t, themesDir, "test-light.yaml", testLightYAML)
	writeTheme(t, customDir, "my-theme.json", testDarkJSON)

	service := NewThemeService(themesDir, customDir, nil)

	metas, err := service.ListAvailableThemes(context.Background())
	require.NoError(t, err)
	require.Len(t, metas, 3)

	byID := make(map[string]palette.Meta, len(metas))
	for _, m := range metas {
		byID[m.ID] = m
	}

	assert.Equal(t, palette.OriginBuiltin, byID["test-dark"].Origin)
	assert.Equal(t, "Test Dark", byID["test-dark"].Label)
	assert.Equal(t, theme.Dark, byID["test-dark"].Kind)
	assert.Equal(t, palette.OriginBuiltin, byID["test-light"].Origin)
	assert.Equal(t, theme.Light, byID["test-light"].Kind)
	assert.Equal(t, palette.OriginCustom, byID["my-theme"].Origin)
}

func TestThemeServiceImpl_ListAvailableThemes_ShadowedByCustom(t *testing.T) {
	isolateHome(t)
	tmpDir := t.TempDir()
	themesDir := filepath.Join(tmpDir, "themes")
	customDir := filepath.Join(tmpDir, "custom")

	writeTheme(t, themesDir, "duplicate.json", testDarkJSON)
	writeTheme(t, customDir, "duplicate.json", testDarkJSON)

	service := NewThemeService(themesDir, customDir, nil)

	metas, err := service.ListAvailableThemes(context.Background())
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Equal(t, "duplicate", metas[0].ID)
	assert.Equal(t, palette.OriginCustom, metas[0].Origin)
}

func TestThemeServiceImpl_ListAvailableThemes_NoThemes(t *testing.T) {
	isolateHome(t)
	service := NewThemeService(filepath.Join(t.TempDir(), "absent"), "", nil)

	metas, err := service.ListAvailableThemes(context.Background())

	assert.Nil(t, metas)
	assert.True(t, errors.Is(err, ErrNoThemes))
}

func TestThemeServiceImpl_ListAvailableThemes_SkipsBrokenFiles(t *testing.T) {
	isolateHome(t)
	themesDir := filepath.Join(t.TempDir(), "themes")

	writeTheme(t, themesDir, "good.json", testDarkJSON)
	writeTheme(t, themesDir, "broken.json", `{"name": "broken`)

	service := NewThemeService(themesDir, "", nil)

	metas, err := service.ListAvailableThemes(context.Background())
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Equal(t, "good", metas[0].ID)
}

func TestThemeServiceImpl_ApplyTheme(t *testing.T) {
	isolateHome(t)
	themesDir := filepath.Join(t.TempDir(), "themes")
	writeTheme(t, themesDir, "test-dark.json", testDarkJSON)

	var applied *palette.ResolvedTheme
	service := NewThemeService(themesDir, "", func(r *palette.ResolvedTheme) error {
		applied = r
		return nil
	})

	var notified []string
	require.NoError(t, service.RegisterComponent("list", func(*palette.ResolvedTheme) error {
		notified = append(notified, "list")
		return nil
	}))
	require.NoError(t, service.RegisterComponent("statusbar", func(*palette.ResolvedTheme) error {
		notified = append(notified, "statusbar")
		return nil
	}))

	err := service.ApplyTheme(context.Background(), "test-dark")
	require.NoError(t, err)

	require.NotNil(t, applied)
	assert.Equal(t, "#101216", applied.Palette[palette.SlotBackground])
	assert.Equal(t, "#3fb950", applied.Status.Success)
	assert.Equal(t, palette.OriginBuiltin, applied.Meta.Origin)

	assert.Equal(t, []string{"list", "statusbar"}, notified)

	current, err := service.GetCurrentTheme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test-dark", current)
	assert.Same(t, applied, service.GetCurrentResolvedTheme())
}

func TestThemeServiceImpl_ApplyTheme_NotFound(t *testing.T) {
	isolateHome(t)
	service := NewThemeService(filepath.Join(t.TempDir(), "themes"), "", nil)

	err := service.ApplyTheme(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrThemeNotFound))
	assert.True(t, IsPermanentError(err))

	// The previously active theme stays in place.
	current, _ := service.GetCurrentTheme(context.Background())
	assert.Equal(t, "vscode-dark", current)
	assert.Nil(t, service.GetCurrentResolvedTheme())
}

func TestThemeServiceImpl_ApplyTheme_RejectedDocuments(t *testing.T) {
	isolateHome(t)
	themesDir := filepath.Join(t.TempDir(), "themes")
	writeTheme(t, themesDir, "syntax.json", `{"name": "broken`)
	writeTheme(t, themesDir, "shape.json", `{"type": "dark"}`)

	service := NewThemeService(themesDir, "", nil)

	t.Run("malformed_syntax", func(t *testing.T) {
		err := service.ApplyTheme(context.Background(), "syntax")
		require.Error(t, err)
		assert.True(t, errors.Is(err, theme.ErrMalformedSyntax))
		assert.True(t, IsPermanentError(err))
	})

	t.Run("schema_violation", func(t *testing.T) {
		err := service.ApplyTheme(context.Background(), "shape")
		require.Error(t, err)

		var schemaErr *theme.SchemaError
		assert.True(t, errors.As(err, &schemaErr))
		assert.True(t, IsPermanentError(err))
	})
}

func TestThemeServiceImpl_LoadPriority(t *testing.T) {
	isolateHome(t)
	tmpDir := t.TempDir()
	themesDir := filepath.Join(tmpDir, "themes")
	customDir := filepath.Join(tmpDir, "custom")

	writeTheme(t, themesDir, "shadowed.json", testDarkJSON)
	writeTheme(t, customDir, "shadowed.json", `{
		"name": "Custom Override",
		"type": "dark",
		"colors": {"editor.background": "#000011"}
	}`)

	service := NewThemeService(themesDir, customDir, nil)

	resolved, err := service.ResolveTheme(context.Background(), "shadowed")
	require.NoError(t, err)
	assert.Equal(t, "#000011", resolved.Palette[palette.SlotBackground])
	assert.Equal(t, "Custom Override", resolved.Meta.Label)
	assert.Equal(t, palette.OriginCustom, resolved.Meta.Origin)
}

func TestThemeServiceImpl_UserDirBeatsBuiltin(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	themesDir := filepath.Join(t.TempDir(), "themes")
	writeTheme(t, themesDir, "mine.json", testDarkJSON)

	userDir := filepath.Join(home, ".config", "themecast", "themes")
	writeTheme(t, userDir, "mine.json", `{
		"name": "User Copy",
		"type": "light",
		"colors": {}
	}`)

	service := NewThemeService(themesDir, "", nil)

	resolved, err := service.ResolveTheme(context.Background(), "mine")
	require.NoError(t, err)
	assert.Equal(t, "User Copy", resolved.Meta.Label)
	assert.Equal(t, palette.OriginUser, resolved.Meta.Origin)
}

func TestThemeServiceImpl_YAMLTheme(t *testing.T) {
	isolateHome(t)
	themesDir := filepath.Join(t.TempDir(), "themes")
	writeTheme(t, themesDir, "test-light.yaml", testLightYAML)

	service := NewThemeService(themesDir, "", nil)

	resolved, err := service.ResolveTheme(context.Background(), "test-light")
	require.NoError(t, err)
	assert.Equal(t, theme.Light, resolved.Meta.Kind)
	assert.Equal(t, "#fdf6e3", resolved.Palette[palette.SlotBackground])
	assert.Equal(t, palette.LightStatusPreset(), resolved.Status)
}

func TestThemeServiceImpl_RegisterComponent_LateRegistration(t *testing.T) {
	isolateHome(t)
	themesDir := filepath.Join(t.TempDir(), "themes")
	writeTheme(t, themesDir, "test-dark.json", testDarkJSON)

	service := NewThemeService(themesDir, "", nil)
	require.NoError(t, service.ApplyTheme(context.Background(), "test-dark"))

	var got *palette.ResolvedTheme
	err := service.RegisterComponent("late", func(r *palette.ResolvedTheme) error {
		got = r
		return nil
	})

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "#101216", got.Palette[palette.SlotBackground])
}

func TestThemeServiceImpl_NotifyFailuresAggregate(t *testing.T) {
	isolateHome(t)
	themesDir := filepath.Join(t.TempDir(), "themes")
	writeTheme(t, themesDir, "test-dark.json", testDarkJSON)

	service := NewThemeService(themesDir, "", nil)
	require.NoError(t, service.RegisterComponent("good", func(*palette.ResolvedTheme) error {
		return nil
	}))
	require.NoError(t, service.RegisterComponent("bad-a", func(*palette.ResolvedTheme) error {
		return errors.New("boom")
	}))
	require.NoError(t, service.RegisterComponent("bad-b", func(*palette.ResolvedTheme) error {
		return errors.New("bang")
	}))

	err := service.ApplyTheme(context.Background(), "test-dark")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "component 'bad-a': boom")
	assert.Contains(t, err.Error(), "component 'bad-b': bang")

	// The palette cache updates even when notification fails, but the
	// active name does not.
	assert.NotNil(t, service.GetCurrentResolvedTheme())
	current, _ := service.GetCurrentTheme(context.Background())
	assert.Equal(t, "vscode-dark", current)
}

func TestThemeServiceImpl_UnregisterComponent(t *testing.T) {
	isolateHome(t)
	themesDir := filepath.Join(t.TempDir(), "themes")
	writeTheme(t, themesDir, "test-dark.json", testDarkJSON)

	service := NewThemeService(themesDir, "", nil)

	calls := 0
	require.NoError(t, service.RegisterComponent("tab", func(*palette.ResolvedTheme) error {
		calls++
		return nil
	}))

	require.NoError(t, service.ApplyTheme(context.Background(), "test-dark"))
	assert.Equal(t, 1, calls)

	service.UnregisterComponent("tab")

	require.NoError(t, service.ApplyTheme(context.Background(), "test-dark"))
	assert.Equal(t, 1, calls)
}

func TestThemeServiceImpl_ApplyTheme_PersistsAsync(t *testing.T) {
	defer goleak.VerifyNone(t)

	isolateHome(t)
	themesDir := filepath.Join(t.TempDir(), "themes")
	writeTheme(t, themesDir, "test-dark.json", testDarkJSON)

	service := NewThemeService(themesDir, "", nil)

	var mu sync.Mutex
	var persisted []string
	service.SetPersistFunc(func(name string) error {
		mu.Lock()
		defer mu.Unlock()
		persisted = append(persisted, name)
		return nil
	})

	require.NoError(t, service.ApplyTheme(context.Background(), "test-dark"))
	service.saveWG.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"test-dark"}, persisted)
}

func TestThemeServiceImpl_ValidateTheme(t *testing.T) {
	isolateHome(t)
	themesDir := filepath.Join(t.TempDir(), "themes")
	writeTheme(t, themesDir, "test-dark.json", testDarkJSON)

	service := NewThemeService(themesDir, "", nil)

	assert.NoError(t, service.ValidateTheme(context.Background(), "test-dark"))
	assert.Error(t, service.ValidateTheme(context.Background(), "missing"))
}
