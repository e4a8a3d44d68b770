package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/ajramos/themecast/internal/theme"
)

// HighlightEngine is the downstream token-coloring engine. Implementations
// receive the canonical theme once per activation.
type HighlightEngine interface {
	UseTheme(id string, t *theme.Theme) error
}

// HighlightServiceImpl owns the process-wide "currently registered theme"
// cache in front of the highlight engine. Registration is idempotent per
// theme id, so re-activating the active theme never re-registers it.
type HighlightServiceImpl struct {
	mu        sync.Mutex
	currentID string
	current   *theme.Theme
	engine    HighlightEngine
	logger    *log.Logger
}

// NewHighlightService creates a new highlight service. The engine may be nil
// when no downstream coloring engine is attached; scope lookups still work.
func NewHighlightService(engine HighlightEngine) *HighlightServiceImpl {
	return &HighlightServiceImpl{
		engine: engine,
	}
}

// SetLogger installs a diagnostic logger. A nil logger disables logging.
func (s *HighlightServiceImpl) SetLogger(logger *log.Logger) {
	s.logger = logger
}

// RegisterTheme hands a canonical theme to the highlight engine and caches
// it for scope lookups. Registering the already-current id is a no-op.
func (s *HighlightServiceImpl) RegisterTheme(ctx context.Context, id string, t *theme.Theme) error {
	if t == nil {
		return fmt.Errorf("failed to register theme '%s': %w", id, ErrNilTheme)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentID == id {
		if s.logger != nil {
			s.logger.Printf("theme %q already registered, skipping", id)
		}
		return nil
	}

	if s.engine != nil {
		if err := s.engine.UseTheme(id, t); err != nil {
			return fmt.Errorf("failed to register theme '%s' with highlight engine: %w", id, err)
		}
	}

	s.currentID = id
	s.current = t
	return nil
}

// CurrentThemeID returns the id of the registered theme, or "" when none is.
func (s *HighlightServiceImpl) CurrentThemeID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentID
}

// StyleForScope resolves the token style for a scope against the registered
// theme. The boolean is false when no theme is registered or no rule covers
// the scope.
func (s *HighlightServiceImpl) StyleForScope(ctx context.Context, scope string) (theme.StyleSettings, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return theme.StyleSettings{}, false
	}
	return s.current.SettingsForScope(scope)
}

// Reset clears the registration cache, forcing the next RegisterTheme to
// reach the engine again.
func (s *HighlightServiceImpl) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentID = ""
	s.current = nil
}
