package ui

import (
	"image"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/time/rate"

	"github.com/dixieflatline76/pin/pkg/geometry"
	"github.com/dixieflatline76/pin/pkg/gesture"
	"github.com/dixieflatline76/pin/util/log"
)

// frameInterval caps how often a drag pushes a new frame to the window system.
const frameInterval = time.Second / 60

// FrameHost is the window a surface resizes and moves. Frames and pointer
// locations are in native screen units.
type FrameHost interface {
	Frame() geometry.Rect
	SetFrame(geometry.Rect)
	// BeginNativeMove returns true if the window system took over the move.
	BeginNativeMove() bool
	Pointer() (geometry.Point, bool)
	// Scale converts logical units to native units.
	Scale() float64
}

// Surface shows the pinned image under its overlay and runs the resize and
// move drag sessions.
type Surface struct {
	widget.BaseWidget

	image   *canvas.Image
	overlay *Overlay
	host    FrameHost

	resize  *gesture.ResizeSession
	move    *gesture.MoveSession
	limiter *rate.Limiter

	// pending is the newest frame the limiter held back. flushAt runs the
	// trailing flush that sends it.
	pending    geometry.Rect
	hasPending bool
	flushing   bool
	flushAt    func(time.Duration, func())
}

// NewSurface creates a surface for img. aspect is the locked width/height
// ratio used by every resize.
func NewSurface(img image.Image, aspect, minWidth float64, host FrameHost) *Surface {
	picture := canvas.NewImageFromImage(img)
	picture.FillMode = canvas.ImageFillContain
	picture.ScaleMode = canvas.ImageScaleSmooth

	s := &Surface{
		image:   picture,
		host:    host,
		resize:  gesture.NewResizeSession(aspect, minWidth),
		move:    gesture.NewMoveSession(),
		limiter: rate.NewLimiter(rate.Every(frameInterval), 1),
		flushAt: afterOnMain,
	}
	s.ExtendBaseWidget(s)
	return s
}

// Attach puts o on top of the image and makes the surface its gesture host.
// It must be called before the surface is first rendered.
func (s *Surface) Attach(o *Overlay) {
	s.overlay = o
	o.SetHost(s)
	s.Refresh()
}

// Overlay returns the attached overlay, if any.
func (s *Surface) Overlay() *Overlay {
	return s.overlay
}

// Resizing reports whether a resize session is running.
func (s *Surface) Resizing() bool {
	return s.resize.Active()
}

// Moving reports whether a manual move session is running.
func (s *Surface) Moving() bool {
	return s.move.Active()
}

// StartResize begins a resize session at p in surface coordinates.
func (s *Surface) StartResize(p geometry.Point) {
	if s.move.Active() {
		s.move.End()
	}
	scale := s.host.Scale()
	s.resize.Begin(geometry.Point{X: p.X * scale, Y: p.Y * scale}, s.host.Frame())
	log.Debugf("Resize started, aspect %.3f", s.resize.Aspect())
}

// StartMove asks the window system to move the window and, if it declines,
// begins a manual move session tracking the screen pointer.
func (s *Surface) StartMove() {
	if s.resize.Active() {
		return
	}
	if s.host.BeginNativeMove() {
		return
	}
	p, ok := s.host.Pointer()
	if !ok {
		return
	}
	s.move.Begin(p, s.host.Frame())
}

// Dragged advances whichever session is running.
func (s *Surface) Dragged(ev *fyne.DragEvent) {
	switch {
	case s.resize.Active():
		scale := s.host.Scale()
		if frame, ok := s.resize.MoveBy(float64(ev.Dragged.DX)*scale, float64(ev.Dragged.DY)*scale); ok {
			s.push(frame)
		}
	case s.move.Active():
		p, ok := s.host.Pointer()
		if !ok {
			return
		}
		if frame, ok := s.move.Move(p); ok {
			s.push(frame)
		}
	}
}

// DragEnd finishes the running session.
func (s *Surface) DragEnd() {
	s.EndGesture()
}

// EndGesture applies the final frame of the running session and returns to
// idle. It does nothing when no session is running.
func (s *Surface) EndGesture() {
	s.hasPending = false
	if frame, ok := s.resize.End(); ok {
		s.host.SetFrame(frame)
		log.Debugf("Resize ended at %.0fx%.0f", frame.W, frame.H)
		return
	}
	if frame, ok := s.move.End(); ok {
		s.host.SetFrame(frame)
	}
}

// push forwards a frame to the window. A frame arriving too soon after the
// last one is held and sent by a single trailing flush, so the window catches
// up with the session even when the pointer stops. EndGesture always sends
// the final frame.
func (s *Surface) push(frame geometry.Rect) {
	if s.limiter.Allow() {
		s.hasPending = false
		s.host.SetFrame(frame)
		return
	}

	s.pending, s.hasPending = frame, true
	if s.flushing {
		return
	}
	s.flushing = true
	s.flushAt(s.limiter.Reserve().Delay(), s.flush)
}

// flush sends the held frame if a session is still running.
func (s *Surface) flush() {
	s.flushing = false
	if !s.hasPending {
		return
	}
	s.hasPending = false
	if s.resize.Active() || s.move.Active() {
		s.host.SetFrame(s.pending)
	}
}

// afterOnMain runs fn on the Fyne main goroutine once d has passed.
func afterOnMain(d time.Duration, fn func()) {
	time.AfterFunc(d, func() {
		fyne.Do(fn)
	})
}

// CreateRenderer implements fyne.Widget.
func (s *Surface) CreateRenderer() fyne.WidgetRenderer {
	objects := []fyne.CanvasObject{s.image}
	if s.overlay != nil {
		objects = append(objects, s.overlay)
	}
	return widget.NewSimpleRenderer(container.NewStack(objects...))
}
