// Package platform reaches past Fyne to the window system for the traits a
// pinned window needs and Fyne does not expose: stacking above other
// windows, presence on every desktop, window opacity, positioning and
// dragging.
package platform

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"

	"github.com/dixieflatline76/pin/pkg/geometry"
	"github.com/dixieflatline76/pin/util/log"
)

// Native controls the window-system window behind a Fyne window. Frames are
// in screen units with a top-left origin.
type Native interface {
	// Configure makes the window float above normal windows, join every
	// virtual desktop and cast a shadow where the platform supports it.
	Configure() error
	Frame() (geometry.Rect, error)
	SetFrame(geometry.Rect) error
	SetOpacity(float64) error
	// BeginMove hands a window drag to the window system. It returns false
	// when the caller has to drive the move itself from Pointer.
	BeginMove() (bool, error)
	// Pointer returns the pointer location in screen units.
	Pointer() (geometry.Point, error)
	Close()
}

// Attach returns the native backend for w, or a Headless one when the
// window system offers no handle this package understands.
func Attach(w fyne.Window) Native {
	nw, ok := w.(driver.NativeWindow)
	if !ok {
		log.Println("Native window access not supported by this driver")
		return NewHeadless()
	}

	var n Native
	nw.RunNative(func(ctx any) {
		var err error
		n, err = fromContext(ctx)
		if err != nil {
			log.Printf("Native window access failed: %v", err)
		}
	})

	if n == nil {
		log.Println("Native window traits unavailable, always-on-top and opacity are disabled")
		return NewHeadless()
	}
	return n
}
