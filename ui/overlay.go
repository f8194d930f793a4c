package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/pin/pkg/geometry"
	"github.com/dixieflatline76/pin/pkg/overlay"
	"github.com/dixieflatline76/pin/util/log"
)

const (
	closeInset     = 7
	closeLineWidth = 2
	gripDotSize    = 1.5
	gripSpacing    = 3.5
	gripStart      = 6
)

var (
	glyphColor      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xe6} // white at 0.9
	closeBackground = color.NRGBA{A: 0x59}                            // black at 0.35
)

// GestureHost is the surface an overlay sits on. It runs the drag sessions
// the overlay starts.
type GestureHost interface {
	StartResize(p geometry.Point)
	StartMove()
	EndGesture()
}

// WindowHandle is what the overlay needs from its window.
type WindowHandle interface {
	Close()
	Opacity() float64
	SetOpacity(float64)
}

// Overlay draws the close control and the resize grip over the image and
// routes pointer input. It is transparent apart from the glyphs, which fade
// in while the pointer is over the window.
type Overlay struct {
	widget.BaseWidget

	controls *overlay.Controls
	window   WindowHandle
	// host does not own the overlay and may be nil until SetHost.
	host GestureHost

	fadeDuration time.Duration
	fade         *fyne.Animation
	alpha        float32
}

// NewOverlay creates an overlay with hidden controls.
func NewOverlay(controls *overlay.Controls, window WindowHandle, fade time.Duration) *Overlay {
	o := &Overlay{
		controls:     controls,
		window:       window,
		fadeDuration: fade,
	}
	o.ExtendBaseWidget(o)
	return o
}

// SetHost sets the surface that runs resize and move sessions.
func (o *Overlay) SetHost(host GestureHost) {
	o.host = host
}

// Controls exposes the hit-testing state.
func (o *Overlay) Controls() *overlay.Controls {
	return o.controls
}

// Alpha returns the current glyph opacity.
func (o *Overlay) Alpha() float32 {
	return o.alpha
}

// MouseIn shows the controls.
func (o *Overlay) MouseIn(*desktop.MouseEvent) {
	if o.controls.Enter() {
		o.fadeTo(1)
	}
}

// MouseMoved keeps visibility in step with the tracking rectangle.
func (o *Overlay) MouseMoved(ev *desktop.MouseEvent) {
	p := geometry.Point{X: float64(ev.Position.X), Y: float64(ev.Position.Y)}
	if !o.controls.Moved(p) {
		return
	}
	if o.controls.Visible() {
		o.fadeTo(1)
	} else {
		o.fadeTo(0)
	}
}

// MouseOut hides the controls.
func (o *Overlay) MouseOut() {
	if o.controls.Exit() {
		o.fadeTo(0)
	}
}

// MouseDown dispatches a primary press to the control under it.
func (o *Overlay) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}

	p := geometry.Point{X: float64(ev.Position.X), Y: float64(ev.Position.Y)}
	action := o.controls.Press(p)
	log.Debugf("Press at %.0f,%.0f: %s", p.X, p.Y, action)

	switch action {
	case overlay.ActionClose:
		o.window.Close()
	case overlay.ActionResize:
		if o.host != nil {
			o.host.StartResize(p)
		}
	default:
		if o.host != nil {
			o.host.StartMove()
		}
	}
}

// MouseUp ends a gesture that saw no drag events.
func (o *Overlay) MouseUp(*desktop.MouseEvent) {
	if o.host != nil {
		o.host.EndGesture()
	}
}

// Scrolled steps the window opacity.
func (o *Overlay) Scrolled(ev *fyne.ScrollEvent) {
	current := o.window.Opacity()
	next := o.controls.Scroll(current, float64(ev.Scrolled.DY))
	if next != current {
		o.window.SetOpacity(next)
	}
}

func (o *Overlay) fadeTo(target float32) {
	if o.fade != nil {
		o.fade.Stop()
		o.fade = nil
	}

	if o.fadeDuration <= 0 {
		o.alpha = target
		o.Refresh()
		return
	}

	from := o.alpha
	o.fade = fyne.NewAnimation(o.fadeDuration, func(f float32) {
		o.alpha = from + (target-from)*f
		o.Refresh()
	})
	o.fade.Curve = fyne.AnimationEaseInOut
	o.fade.Start()
}

// CreateRenderer implements fyne.Widget.
func (o *Overlay) CreateRenderer() fyne.WidgetRenderer {
	r := &overlayRenderer{
		overlay:    o,
		closeDisc:  canvas.NewCircle(color.Transparent),
		closeLineA: canvas.NewLine(color.Transparent),
		closeLineB: canvas.NewLine(color.Transparent),
	}
	r.closeLineA.StrokeWidth = closeLineWidth
	r.closeLineB.StrokeWidth = closeLineWidth

	r.objects = []fyne.CanvasObject{r.closeDisc, r.closeLineA, r.closeLineB}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			// Rows count up from the bottom. The bottom-left dot is left out.
			if row == 0 && col == 0 {
				continue
			}
			dot := canvas.NewCircle(color.Transparent)
			r.dots = append(r.dots, gripDot{row: row, col: col, circle: dot})
			r.objects = append(r.objects, dot)
		}
	}
	return r
}

type gripDot struct {
	row, col int
	circle   *canvas.Circle
}

type overlayRenderer struct {
	overlay *Overlay

	closeDisc  *canvas.Circle
	closeLineA *canvas.Line
	closeLineB *canvas.Line
	dots       []gripDot

	objects []fyne.CanvasObject
}

func (r *overlayRenderer) Layout(size fyne.Size) {
	c := r.overlay.controls
	c.Layout(geometry.Size{W: float64(size.Width), H: float64(size.Height)})

	cr := c.CloseRegion()
	r.closeDisc.Move(fyne.NewPos(float32(cr.X), float32(cr.Y)))
	r.closeDisc.Resize(fyne.NewSize(float32(cr.W), float32(cr.H)))

	x0, y0 := float32(cr.X+closeInset), float32(cr.Y+closeInset)
	x1, y1 := float32(cr.Right()-closeInset), float32(cr.Bottom()-closeInset)
	r.closeLineA.Position1, r.closeLineA.Position2 = fyne.NewPos(x0, y0), fyne.NewPos(x1, y1)
	r.closeLineB.Position1, r.closeLineB.Position2 = fyne.NewPos(x1, y0), fyne.NewPos(x0, y1)

	rr := c.ResizeRegion()
	for _, d := range r.dots {
		x := rr.X + gripStart + float64(d.col)*gripSpacing
		y := rr.Bottom() - gripStart - gripDotSize - float64(d.row)*gripSpacing
		d.circle.Move(fyne.NewPos(float32(x), float32(y)))
		d.circle.Resize(fyne.NewSize(gripDotSize, gripDotSize))
	}
}

func (r *overlayRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *overlayRenderer) Refresh() {
	a := r.overlay.alpha
	r.closeDisc.FillColor = fade(closeBackground, a)
	r.closeLineA.StrokeColor = fade(glyphColor, a)
	r.closeLineB.StrokeColor = fade(glyphColor, a)
	for _, d := range r.dots {
		d.circle.FillColor = fade(glyphColor, a)
	}

	for _, o := range r.objects {
		o.Refresh()
	}
}

func (r *overlayRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *overlayRenderer) Destroy() {}

func fade(c color.NRGBA, alpha float32) color.NRGBA {
	c.A = uint8(float32(c.A) * alpha)
	return c
}
