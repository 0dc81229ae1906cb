package theme

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/improvdex/internal/domain"
)

// Theme is the client's color scheme preference.
type Theme string

const (
	// Light is the default scheme.
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Default returns the scheme used when no preference is stored.
func Default() Theme { return Light }

// IsValid checks if the theme is one of the supported values.
func (t Theme) IsValid() bool {
	return t == Light || t == Dark
}

// Toggle returns the other theme. Unknown values toggle to Dark, as if they were Light.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Parse normalizes s into a Theme.
func Parse(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidTheme, s)
	}
	return t, nil
}
