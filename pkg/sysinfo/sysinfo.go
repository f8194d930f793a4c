// Package sysinfo answers questions about the desktop the app runs on.
package sysinfo

import (
	"github.com/dixieflatline76/pin/pkg/geometry"
)

// Monitor is one active display in desktop coordinates.
type Monitor struct {
	ID      int
	Name    string
	Primary bool
	Rect    geometry.Rect
}

// choosePrimary returns the monitor flagged as primary, or the first one.
func choosePrimary(monitors []Monitor) (Monitor, bool) {
	for _, m := range monitors {
		if m.Primary && m.Rect.W > 0 && m.Rect.H > 0 {
			return m, true
		}
	}
	for _, m := range monitors {
		if m.Rect.W > 0 && m.Rect.H > 0 {
			return m, true
		}
	}
	return Monitor{}, false
}
