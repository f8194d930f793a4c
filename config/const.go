package config

import (
	"strings"
	"time"
)

// AppVersion is the version of the application, set at build time.
var AppVersion string

// AppName is the name of the application.
const AppName = "pin"

// AppID is the unique application ID handed to Fyne.
const AppID = "io.github.dixieflatline76.pin"

// LogSubDir is the sub directory for the log files.
var LogSubDir = strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// Defaults used when no preference overrides them.
const (
	DefaultInitialOpacity = 0.9
	DefaultOpacityStep    = 0.05
	DefaultMinWidth       = 100.0
	DefaultScreenFraction = 0.8
	DefaultCornerRadius   = 12.0
	DefaultFadeDuration   = 200 * time.Millisecond

	// FallbackScreenWidth and FallbackScreenHeight stand in for the primary
	// screen when none can be detected.
	FallbackScreenWidth  = 800
	FallbackScreenHeight = 600
)
