package present

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formcheck/pkg/errmap"
)

// MarkerClass is a typed identifier for the presentation markers this layer
// toggles. Their meaning is opaque here; the host page styles them.
type MarkerClass string

const (
	ClassFieldInvalid MarkerClass = "formcheck-invalid"
	ClassErrorVisible MarkerClass = errmap.DefaultVisibleClass
)

// Default*Class values apply when no override option is provided.
const (
	DefaultFieldInvalidClass = string(ClassFieldInvalid)
	DefaultErrorVisibleClass = string(ClassErrorVisible)
)

// Theme token keys recognised by WithThemeConfig.
const (
	ThemeTokenFieldInvalid = "fieldInvalidClass"
	ThemeTokenErrorVisible = "errorVisibleClass"
)

// Option configures a Presenter.
type Option func(*config)

type config struct {
	invalidClass string
	visibleClass string
}

// WithInvalidClass overrides the class marking a field invalid.
func WithInvalidClass(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.invalidClass = name
		}
	}
}

// WithVisibleClass overrides the class marking an error slot visible.
func WithVisibleClass(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.visibleClass = name
		}
	}
}

// WithThemeConfig resolves marker classes from a go-theme renderer
// configuration. Missing tokens leave the defaults in place.
func WithThemeConfig(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		if cfg == nil {
			return
		}
		if name := cfg.Tokens[ThemeTokenFieldInvalid]; name != "" {
			c.invalidClass = name
		}
		if name := cfg.Tokens[ThemeTokenErrorVisible]; name != "" {
			c.visibleClass = name
		}
	}
}
