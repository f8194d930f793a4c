package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dixieflatline76/pin/pkg/geometry"
)

func TestResizeSessionLifecycle(t *testing.T) {
	s := NewResizeSession(2, 100)
	assert.Equal(t, Idle, s.State())
	assert.False(t, s.Active())

	_, ok := s.Move(geometry.Point{X: 10})
	assert.False(t, ok, "move while idle is ignored")
	_, ok = s.End()
	assert.False(t, ok, "release while idle is ignored")

	start := geometry.Rect{X: 50, Y: 60, W: 400, H: 200}
	s.Begin(geometry.Point{X: 380, Y: 180}, start)
	assert.Equal(t, Dragging, s.State())
	assert.True(t, s.Active())

	frame, ok := s.Move(geometry.Point{X: 400, Y: 300})
	require.True(t, ok)
	assert.Equal(t, 420.0, frame.W)
	assert.Equal(t, 210.0, frame.H)
	assert.Equal(t, start.X, frame.X)
	assert.Equal(t, start.Bottom(), frame.Bottom())

	final, ok := s.End()
	require.True(t, ok)
	assert.Equal(t, frame, final)
	assert.Equal(t, Idle, s.State())

	_, ok = s.Move(geometry.Point{X: 900})
	assert.False(t, ok, "moves after release are ignored")
}

func TestResizeSessionInvariants(t *testing.T) {
	const aspect = 16.0 / 9.0
	s := NewResizeSession(aspect, 100)

	start := geometry.Rect{X: 0, Y: 0, W: 1600, H: 900}
	s.Begin(geometry.Point{X: 1580, Y: 880}, start)

	x := 1580.0
	for _, dx := range []float64{-300, -300, -300, -300, -300, -300, 25, 7.5, 1200, -0.5} {
		x += dx
		frame, ok := s.Move(geometry.Point{X: x, Y: 880})
		require.True(t, ok)
		assert.GreaterOrEqual(t, frame.W, 100.0)
		assert.InDelta(t, frame.W/aspect, frame.H, 1e-9)
		assert.InDelta(t, start.Bottom(), frame.Bottom(), 1e-9)
	}
}

func TestResizeSessionUsesLastLocation(t *testing.T) {
	s := NewResizeSession(1, 100)
	s.Begin(geometry.Point{X: 100}, geometry.Rect{W: 200, H: 200})

	// Vertical motion alone changes nothing.
	frame, _ := s.Move(geometry.Point{X: 100, Y: 500})
	assert.Equal(t, 200.0, frame.W)

	frame, _ = s.Move(geometry.Point{X: 110, Y: 500})
	assert.Equal(t, 210.0, frame.W)

	frame, _ = s.Move(geometry.Point{X: 105, Y: 0})
	assert.Equal(t, 205.0, frame.W)
}

func TestResizeSessionFloorThenRecover(t *testing.T) {
	s := NewResizeSession(2, 100)
	s.Begin(geometry.Point{}, geometry.Rect{W: 200, H: 100})

	frame, _ := s.MoveBy(-500, 0)
	assert.Equal(t, 100.0, frame.W)
	assert.Equal(t, 50.0, frame.H)

	// Growth continues from the floored width, not from the pointer's total travel.
	frame, _ = s.MoveBy(30, 0)
	assert.Equal(t, 130.0, frame.W)
	assert.Equal(t, 65.0, frame.H)
}

func TestResizeSessionAspectLocked(t *testing.T) {
	s := NewResizeSession(1.5, 100)
	assert.Equal(t, 1.5, s.Aspect())

	// A frame whose ratio drifted from the image still snaps back to the locked ratio.
	s.Begin(geometry.Point{}, geometry.Rect{W: 301, H: 199})
	frame, _ := s.MoveBy(0, 0)
	assert.Equal(t, 301.0, frame.W)
	assert.InDelta(t, 301.0/1.5, frame.H, 1e-9)

	assert.Equal(t, 1.0, NewResizeSession(0, 100).Aspect())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "dragging", Dragging.String())
}
