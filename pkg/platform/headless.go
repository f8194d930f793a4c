package platform

import (
	"github.com/dixieflatline76/pin/pkg/geometry"
)

// Headless keeps window state in memory. It stands in for a native backend
// on window systems without handle access and in tests.
type Headless struct {
	// OnFrame, if set, is called with every frame passed to SetFrame.
	OnFrame func(geometry.Rect)

	configured bool
	closed     bool
	frame      geometry.Rect
	opacity    float64
	pointer    geometry.Point
}

// NewHeadless returns a fully opaque headless backend.
func NewHeadless() *Headless {
	return &Headless{opacity: geometry.MaxOpacity}
}

// Configure records that the window was configured.
func (h *Headless) Configure() error {
	h.configured = true
	return nil
}

// Configured reports whether Configure was called.
func (h *Headless) Configured() bool {
	return h.configured
}

// Frame returns the last frame set.
func (h *Headless) Frame() (geometry.Rect, error) {
	return h.frame, nil
}

// SetFrame stores frame and notifies OnFrame.
func (h *Headless) SetFrame(frame geometry.Rect) error {
	h.frame = frame
	if h.OnFrame != nil {
		h.OnFrame(frame)
	}
	return nil
}

// Opacity returns the last opacity set.
func (h *Headless) Opacity() float64 {
	return h.opacity
}

// SetOpacity stores a.
func (h *Headless) SetOpacity(a float64) error {
	h.opacity = a
	return nil
}

// BeginMove always leaves the move to the caller.
func (h *Headless) BeginMove() (bool, error) {
	return false, nil
}

// SetPointer sets the location Pointer reports.
func (h *Headless) SetPointer(p geometry.Point) {
	h.pointer = p
}

// Pointer returns the location given to SetPointer.
func (h *Headless) Pointer() (geometry.Point, error) {
	return h.pointer, nil
}

// Close records that the backend was released.
func (h *Headless) Close() {
	h.closed = true
}

// Closed reports whether Close was called.
func (h *Headless) Closed() bool {
	return h.closed
}
