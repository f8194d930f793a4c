// Package config holds the settings of the pinned window.
package config

import "time"

// Config is a validated snapshot of the application settings.
type Config struct {
	InitialOpacity float64
	OpacityStep    float64
	MinWidth       float64
	ScreenFraction float64
	CornerRadius   float64
	FadeDuration   time.Duration
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		InitialOpacity: DefaultInitialOpacity,
		OpacityStep:    DefaultOpacityStep,
		MinWidth:       DefaultMinWidth,
		ScreenFraction: DefaultScreenFraction,
		CornerRadius:   DefaultCornerRadius,
		FadeDuration:   DefaultFadeDuration,
	}
}
