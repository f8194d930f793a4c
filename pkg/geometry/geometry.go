// Package geometry holds the sizing math behind the pinned window: fitting an
// image into the screen, anchoring the overlay hit regions and the
// aspect-locked resize step.
//
// All rectangles use a top-left origin with y growing downward.
package geometry

import "math"

// Size is a width and height pair.
type Size struct {
	W, H float64
}

// Point is a location in some coordinate space.
type Point struct {
	X, Y float64
}

// Rect is an origin plus a size.
type Rect struct {
	X, Y, W, H float64
}

// Aspect returns width divided by height, or 1 for a degenerate size.
func (s Size) Aspect() float64 {
	if s.W <= 0 || s.H <= 0 {
		return 1
	}
	return s.W / s.H
}

// Size returns the rectangle's size.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Contains reports whether p lies inside r. The left and top edges are
// inside, the right and bottom edges are not.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Bound returns fraction of the screen size on each axis.
func Bound(screen Size, fraction float64) Size {
	return Size{W: screen.W * fraction, H: screen.H * fraction}
}

// FitSize returns the window size for an image of the given natural size.
// The natural size is returned unchanged when it fits inside bound; otherwise
// both axes are scaled by the smaller of the two bound/natural ratios.
func FitSize(natural, bound Size) Size {
	if natural.W <= bound.W && natural.H <= bound.H {
		return natural
	}
	ratio := math.Min(bound.W/natural.W, bound.H/natural.H)
	return Size{W: natural.W * ratio, H: natural.H * ratio}
}

// Center returns a frame of the given size centered on screen.
func Center(size Size, screen Rect) Rect {
	return Rect{
		X: screen.X + (screen.W-size.W)/2,
		Y: screen.Y + (screen.H-size.H)/2,
		W: size.W,
		H: size.H,
	}
}

// ResizeStep applies one horizontal drag delta to frame. The new width is
// floored at minWidth and the height is always derived from the locked aspect
// ratio. The bottom edge stays where it was, so the top edge absorbs the
// height change.
func ResizeStep(frame Rect, dx, aspect, minWidth float64) Rect {
	if aspect <= 0 {
		aspect = 1
	}
	w := math.Max(minWidth, frame.W+dx)
	h := w / aspect
	return Rect{
		X: frame.X,
		Y: frame.Y + frame.H - h,
		W: w,
		H: h,
	}
}
