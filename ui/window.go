package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/dixieflatline76/pin/pkg/geometry"
	"github.com/dixieflatline76/pin/pkg/platform"
	"github.com/dixieflatline76/pin/util/log"
)

// PinnedWindow is the borderless, always-on-top window showing the image.
// Native traits are applied once the window exists on screen, see Realize.
type PinnedWindow struct {
	app    fyne.App
	win    fyne.Window
	native platform.Native
	attach func(fyne.Window) platform.Native

	opacity float64
	frame   geometry.Rect
	closed  bool
}

// NewPinnedWindow creates the window. attach resolves the native backend
// when the window is realized; nil selects platform.Attach.
func NewPinnedWindow(a fyne.App, title string, attach func(fyne.Window) platform.Native) *PinnedWindow {
	var w fyne.Window
	if drv, ok := a.Driver().(desktop.Driver); ok {
		w = drv.CreateSplashWindow()
		w.SetTitle(title)
	} else {
		log.Println("Borderless windows not supported by this driver")
		w = a.NewWindow(title)
	}
	w.SetPadded(false)

	if attach == nil {
		attach = platform.Attach
	}

	pw := &PinnedWindow{
		app:     a,
		win:     w,
		attach:  attach,
		opacity: geometry.MaxOpacity,
	}

	w.Canvas().SetOnTypedRune(pw.typedRune)
	w.SetOnClosed(pw.closedByDriver)
	return pw
}

// Window returns the underlying Fyne window.
func (pw *PinnedWindow) Window() fyne.Window {
	return pw.win
}

// Native returns the native backend, or nil before Realize.
func (pw *PinnedWindow) Native() platform.Native {
	return pw.native
}

// Realize attaches the native backend, applies the window traits, the
// initial frame and the current opacity.
func (pw *PinnedWindow) Realize(frame geometry.Rect) {
	pw.native = pw.attach(pw.win)
	if h, ok := pw.native.(*platform.Headless); ok && h.OnFrame == nil {
		h.OnFrame = pw.resizeContent
	}

	if err := pw.native.Configure(); err != nil {
		log.Printf("Failed to configure pinned window: %v", err)
	}
	pw.SetFrame(frame)
	pw.applyOpacity()
	pw.win.RequestFocus()
}

// Frame returns the window frame in native units.
func (pw *PinnedWindow) Frame() geometry.Rect {
	if pw.native == nil {
		return pw.frame
	}
	frame, err := pw.native.Frame()
	if err != nil {
		log.Printf("Failed to read window frame: %v", err)
		return pw.frame
	}
	pw.frame = frame
	return frame
}

// SetFrame moves and resizes the window.
func (pw *PinnedWindow) SetFrame(frame geometry.Rect) {
	pw.frame = frame
	if pw.native == nil {
		pw.resizeContent(frame)
		return
	}
	if err := pw.native.SetFrame(frame); err != nil {
		log.Printf("Failed to set window frame: %v", err)
	}
}

// BeginNativeMove asks the window system to run the move.
func (pw *PinnedWindow) BeginNativeMove() bool {
	if pw.native == nil {
		return false
	}
	handled, err := pw.native.BeginMove()
	if err != nil {
		log.Printf("Native window move failed: %v", err)
		return false
	}
	return handled
}

// Pointer returns the screen pointer location in native units.
func (pw *PinnedWindow) Pointer() (geometry.Point, bool) {
	if pw.native == nil {
		return geometry.Point{}, false
	}
	p, err := pw.native.Pointer()
	if err != nil {
		log.Printf("Failed to query pointer: %v", err)
		return geometry.Point{}, false
	}
	return p, true
}

// Scale returns the number of native units per logical unit.
func (pw *PinnedWindow) Scale() float64 {
	if s := pw.win.Canvas().Scale(); s > 0 {
		return float64(s)
	}
	return 1
}

// Opacity returns the window opacity.
func (pw *PinnedWindow) Opacity() float64 {
	return pw.opacity
}

// SetOpacity sets the window opacity, clamped to the allowed range.
func (pw *PinnedWindow) SetOpacity(a float64) {
	pw.opacity = geometry.ClampOpacity(a)
	pw.applyOpacity()
}

// Close closes the window, which quits the app.
func (pw *PinnedWindow) Close() {
	if pw.closed {
		return
	}
	pw.win.Close()
}

// Closed reports whether the window has been closed.
func (pw *PinnedWindow) Closed() bool {
	return pw.closed
}

func (pw *PinnedWindow) applyOpacity() {
	if pw.native == nil {
		return
	}
	if err := pw.native.SetOpacity(pw.opacity); err != nil {
		log.Printf("Failed to set window opacity: %v", err)
	}
}

func (pw *PinnedWindow) typedRune(r rune) {
	if r == 'q' || r == 'Q' {
		pw.Close()
	}
}

// resizeContent sizes the Fyne window to frame for backends that cannot
// resize the native window themselves.
func (pw *PinnedWindow) resizeContent(frame geometry.Rect) {
	scale := pw.Scale()
	pw.win.Resize(fyne.NewSize(float32(frame.W/scale), float32(frame.H/scale)))
}

func (pw *PinnedWindow) closedByDriver() {
	pw.closed = true
	if pw.native != nil {
		pw.native.Close()
	}
	pw.app.Quit()
}
