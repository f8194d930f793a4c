// Package gesture implements the pointer gestures of the pinned window, the
// aspect-locked resize and the manual move, as explicit state machines. They
// are driven by move and release callbacks and never block the caller's
// event loop.
package gesture

import (
	"github.com/dixieflatline76/pin/pkg/geometry"
)

// State is the phase of a resize gesture.
type State int

const (
	// Idle means no gesture is in progress.
	Idle State = iota
	// Dragging means a press on the resize handle has not been released yet.
	Dragging
)

// String returns the state name.
func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// ResizeSession is one surface's resize gesture. Its aspect ratio is locked when
// the session is created and never derived from the current frame, so
// rounding in the window system cannot make the ratio drift.
type ResizeSession struct {
	aspect   float64
	minWidth float64

	state State
	last  geometry.Point
	frame geometry.Rect
}

// NewResizeSession returns an idle session locked to the given aspect ratio.
func NewResizeSession(aspect, minWidth float64) *ResizeSession {
	if aspect <= 0 {
		aspect = 1
	}
	return &ResizeSession{aspect: aspect, minWidth: minWidth}
}

// Aspect returns the locked aspect ratio.
func (s *ResizeSession) Aspect() float64 {
	return s.aspect
}

// State returns the current phase.
func (s *ResizeSession) State() State {
	return s.state
}

// Active reports whether a gesture is in progress.
func (s *ResizeSession) Active() bool {
	return s.state == Dragging
}

// Frame returns the frame computed by the latest step.
func (s *ResizeSession) Frame() geometry.Rect {
	return s.frame
}

// Begin starts a gesture from a press at p with the window at frame.
// A Begin while already dragging restarts the gesture.
func (s *ResizeSession) Begin(p geometry.Point, frame geometry.Rect) {
	s.state = Dragging
	s.last = p
	s.frame = frame
}

// Move advances the gesture to pointer location p and returns the new frame.
// Only the horizontal delta from the previous location is used. It returns
// false while idle.
func (s *ResizeSession) Move(p geometry.Point) (geometry.Rect, bool) {
	if s.state != Dragging {
		return geometry.Rect{}, false
	}
	s.frame = geometry.ResizeStep(s.frame, p.X-s.last.X, s.aspect, s.minWidth)
	s.last = p
	return s.frame, true
}

// MoveBy advances the gesture by a relative pointer motion, for callers that
// only receive deltas.
func (s *ResizeSession) MoveBy(dx, dy float64) (geometry.Rect, bool) {
	return s.Move(geometry.Point{X: s.last.X + dx, Y: s.last.Y + dy})
}

// End finishes the gesture and returns the final frame. It returns false if
// no gesture was in progress.
func (s *ResizeSession) End() (geometry.Rect, bool) {
	if s.state != Dragging {
		return geometry.Rect{}, false
	}
	s.state = Idle
	return s.frame, true
}
