package services

import (
	"errors"

	"github.com/ajramos/themecast/internal/theme"
)

// Standard service errors
var (
	// ErrThemeNotFound means no theme file with the requested id exists in
	// any configured theme directory
	ErrThemeNotFound = errors.New("theme not found")

	// ErrNoThemes means every configured theme directory is empty or absent
	ErrNoThemes = errors.New("no themes found in any theme directory")

	// ErrNilTheme guards collaborators against registration without a theme
	ErrNilTheme = errors.New("theme is nil")
)

// IsPermanentError determines if an error is permanent and should not be
// retried: the input itself is wrong, so retrying the same request cannot
// succeed.
func IsPermanentError(err error) bool {
	var schemaErr *theme.SchemaError
	return errors.Is(err, ErrThemeNotFound) ||
		errors.Is(err, ErrNoThemes) ||
		errors.Is(err, ErrNilTheme) ||
		errors.Is(err, theme.ErrMalformedSyntax) ||
		errors.As(err, &schemaErr)
}
