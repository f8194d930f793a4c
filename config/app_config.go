package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/dixieflatline76/pin/pkg/geometry"
)

// InitialOpacityKey is the key for the opacity the window starts with
const InitialOpacityKey = "initial_opacity"

// OpacityStepKey is the key for the opacity change per scroll tick
const OpacityStepKey = "opacity_step"

// MinWidthKey is the key for the narrowest width a resize may reach
const MinWidthKey = "min_width"

// ScreenFractionKey is the key for the share of the screen an image may fill at launch
const ScreenFractionKey = "screen_fraction"

// CornerRadiusKey is the key for the rounded image corner radius
const CornerRadiusKey = "corner_radius"

// FadeDurationKey is the key for the control fade duration in milliseconds
const FadeDurationKey = "fade_duration_ms"

// AppConfig reads application settings from Fyne preferences. Every getter
// falls back to the built-in default; the app never writes preferences.
type AppConfig struct {
	prefs fyne.Preferences
}

// NewAppConfig creates a new AppConfig instance
func NewAppConfig(p fyne.Preferences) *AppConfig {
	return &AppConfig{prefs: p}
}

// GetInitialOpacity returns the opacity the window starts with
func (c *AppConfig) GetInitialOpacity() float64 {
	return c.prefs.FloatWithFallback(InitialOpacityKey, DefaultInitialOpacity)
}

// GetOpacityStep returns the opacity change per scroll tick
func (c *AppConfig) GetOpacityStep() float64 {
	return c.prefs.FloatWithFallback(OpacityStepKey, DefaultOpacityStep)
}

// GetMinWidth returns the narrowest width a resize may reach
func (c *AppConfig) GetMinWidth() float64 {
	return c.prefs.FloatWithFallback(MinWidthKey, DefaultMinWidth)
}

// GetScreenFraction returns the share of the screen an image may fill at launch
func (c *AppConfig) GetScreenFraction() float64 {
	return c.prefs.FloatWithFallback(ScreenFractionKey, DefaultScreenFraction)
}

// GetCornerRadius returns the rounded image corner radius
func (c *AppConfig) GetCornerRadius() float64 {
	return c.prefs.FloatWithFallback(CornerRadiusKey, DefaultCornerRadius)
}

// GetFadeDuration returns how long the controls take to fade in or out
func (c *AppConfig) GetFadeDuration() time.Duration {
	ms := c.prefs.IntWithFallback(FadeDurationKey, int(DefaultFadeDuration/time.Millisecond))
	return time.Duration(ms) * time.Millisecond
}

// Load snapshots the preferences into a validated Config.
func (c *AppConfig) Load() Config {
	cfg := Default()

	if v := c.GetInitialOpacity(); v >= geometry.MinOpacity && v <= geometry.MaxOpacity {
		cfg.InitialOpacity = v
	}
	if v := c.GetOpacityStep(); v > 0 && v <= geometry.MaxOpacity-geometry.MinOpacity {
		cfg.OpacityStep = v
	}
	if v := c.GetMinWidth(); v >= 1 {
		cfg.MinWidth = v
	}
	if v := c.GetScreenFraction(); v > 0 && v <= 1 {
		cfg.ScreenFraction = v
	}
	if v := c.GetCornerRadius(); v >= 0 {
		cfg.CornerRadius = v
	}
	if v := c.GetFadeDuration(); v >= 0 {
		cfg.FadeDuration = v
	}
	return cfg
}
