package gesture

import (
	"github.com/dixieflatline76/pin/pkg/geometry"
)

// MoveSession drags the window by following the pointer in screen
// coordinates. It is used where the window system cannot take over the move
// itself.
type MoveSession struct {
	state  State
	anchor geometry.Point
	origin geometry.Rect
	frame  geometry.Rect
}

// NewMoveSession returns an idle move session.
func NewMoveSession() *MoveSession {
	return &MoveSession{}
}

// State returns the current phase.
func (m *MoveSession) State() State {
	return m.state
}

// Active reports whether a move is in progress.
func (m *MoveSession) Active() bool {
	return m.state == Dragging
}

// Begin starts a move with the pointer at screen location p and the window
// at frame.
func (m *MoveSession) Begin(p geometry.Point, frame geometry.Rect) {
	m.state = Dragging
	m.anchor = p
	m.origin = frame
	m.frame = frame
}

// Move returns the window frame for the pointer at screen location p. The
// size never changes. It returns false while idle.
func (m *MoveSession) Move(p geometry.Point) (geometry.Rect, bool) {
	if m.state != Dragging {
		return geometry.Rect{}, false
	}
	m.frame = m.origin
	m.frame.X += p.X - m.anchor.X
	m.frame.Y += p.Y - m.anchor.Y
	return m.frame, true
}

// End finishes the move and returns the final frame.
func (m *MoveSession) End() (geometry.Rect, bool) {
	if m.state != Dragging {
		return geometry.Rect{}, false
	}
	m.state = Idle
	return m.frame, true
}
