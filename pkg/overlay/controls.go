// Package overlay tracks the state behind the pinned window's control layer:
// whether the controls are showing, where their hit regions are and what a
// press or scroll at a given point should do.
package overlay

import (
	"github.com/dixieflatline76/pin/pkg/geometry"
)

// Action is what a press on the overlay asks the window to do.
type Action int

const (
	// ActionMove starts a native window drag.
	ActionMove Action = iota
	// ActionClose closes the window.
	ActionClose
	// ActionResize starts an aspect-locked resize session on the surface.
	ActionResize
)

// String returns a short name for logging.
func (a Action) String() string {
	switch a {
	case ActionClose:
		return "close"
	case ActionResize:
		return "resize"
	default:
		return "move"
	}
}

// Controls is the hit-testing and visibility state of the overlay.
// The zero value is not usable; create one with New.
type Controls struct {
	step float64

	visible  bool
	bounds   geometry.Size
	tracking geometry.Rect

	closeRegion  geometry.Rect
	resizeRegion geometry.Rect
}

// New returns hidden controls that change opacity by step per scroll tick.
func New(step float64) *Controls {
	return &Controls{step: step}
}

// Layout repositions both hit regions for a surface of the given size and
// registers a fresh tracking rectangle covering it. The tracking rectangle is
// a snapshot, so Layout must run on every size change.
func (c *Controls) Layout(size geometry.Size) {
	c.bounds = size
	c.tracking = geometry.Rect{W: size.W, H: size.H}
	c.closeRegion = geometry.CloseRegion(size)
	c.resizeRegion = geometry.ResizeRegion(size)
}

// Bounds returns the size passed to the last Layout.
func (c *Controls) Bounds() geometry.Size {
	return c.bounds
}

// Tracking returns the currently registered tracking rectangle.
func (c *Controls) Tracking() geometry.Rect {
	return c.tracking
}

// CloseRegion returns the close control's hit region.
func (c *Controls) CloseRegion() geometry.Rect {
	return c.closeRegion
}

// ResizeRegion returns the resize handle's hit region.
func (c *Controls) ResizeRegion() geometry.Rect {
	return c.resizeRegion
}

// Visible reports whether the controls are showing.
func (c *Controls) Visible() bool {
	return c.visible
}

// Enter marks the pointer as inside the tracked area. It returns true when the
// controls were hidden and a fade-in should start.
func (c *Controls) Enter() bool {
	if c.visible {
		return false
	}
	c.visible = true
	return true
}

// Exit marks the pointer as gone. It returns true when a fade-out should start.
func (c *Controls) Exit() bool {
	if !c.visible {
		return false
	}
	c.visible = false
	return true
}

// Moved handles a pointer move at p. Moves inside the tracking rectangle
// while hidden count as an enter, moves outside it as an exit.
func (c *Controls) Moved(p geometry.Point) bool {
	if c.tracking.Contains(p) {
		return c.Enter()
	}
	return c.Exit()
}

// Press resolves a press at p to an action. The close control wins over the
// resize handle if a tiny surface makes them overlap. Before the first Layout
// every press is a move.
func (c *Controls) Press(p geometry.Point) Action {
	switch {
	case c.bounds.W <= 0 || c.bounds.H <= 0:
		return ActionMove
	case c.closeRegion.Contains(p):
		return ActionClose
	case c.resizeRegion.Contains(p):
		return ActionResize
	default:
		return ActionMove
	}
}

// Scroll returns the window opacity after one scroll event with vertical
// delta dy, starting from current.
func (c *Controls) Scroll(current, dy float64) float64 {
	return geometry.StepOpacity(current, dy, c.step)
}
