//go:build darwin

package platform

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Foundation -framework AppKit

#import <AppKit/AppKit.h>

// primaryHeight is the height of the screen holding the menu bar. Cocoa
// measures y upwards from its bottom edge.
static CGFloat primaryHeight(void) {
    NSArray *screens = [NSScreen screens];
    if ([screens count] == 0) {
        return 0;
    }
    return [[screens objectAtIndex:0] frame].size.height;
}

static void pinConfigure(uintptr_t handle) {
    NSWindow *win = (NSWindow *)handle;
    [win setLevel:NSFloatingWindowLevel];
    [win setCollectionBehavior:NSWindowCollectionBehaviorCanJoinAllSpaces |
                               NSWindowCollectionBehaviorFullScreenAuxiliary];
    [win setOpaque:NO];
    [win setBackgroundColor:[NSColor clearColor]];
    [win setHasShadow:YES];
}

static void pinFrame(uintptr_t handle, double *x, double *y, double *w, double *h) {
    NSRect f = [(NSWindow *)handle frame];
    *x = f.origin.x;
    *y = primaryHeight() - f.origin.y - f.size.height;
    *w = f.size.width;
    *h = f.size.height;
}

static void pinSetFrame(uintptr_t handle, double x, double y, double w, double h) {
    NSRect f = NSMakeRect(x, primaryHeight() - y - h, w, h);
    [(NSWindow *)handle setFrame:f display:YES];
}

static void pinSetAlpha(uintptr_t handle, double a) {
    [(NSWindow *)handle setAlphaValue:a];
}

// pinBeginDrag starts a system window drag from the mouse-down being
// handled. It returns 0 when no such event is current.
static int pinBeginDrag(uintptr_t handle) {
    NSEvent *ev = [NSApp currentEvent];
    if (ev == nil || [ev type] != NSEventTypeLeftMouseDown) {
        return 0;
    }
    [(NSWindow *)handle performWindowDragWithEvent:ev];
    return 1;
}

static void pinPointer(double *x, double *y) {
    NSPoint p = [NSEvent mouseLocation];
    *x = p.x;
    *y = primaryHeight() - p.y;
}
*/
import "C"

import (
	"fmt"

	"fyne.io/fyne/v2/driver"

	"github.com/dixieflatline76/pin/pkg/geometry"
)

func fromContext(ctx any) (Native, error) {
	switch c := ctx.(type) {
	case driver.MacWindowContext:
		return newCocoa(c.NSWindow)
	case *driver.MacWindowContext:
		return newCocoa(c.NSWindow)
	default:
		return nil, fmt.Errorf("unsupported window context %T", ctx)
	}
}

// Cocoa drives an NSWindow. Frames are in points with the origin at the top
// left of the primary screen.
type Cocoa struct {
	handle C.uintptr_t
}

func newCocoa(nsWindow uintptr) (*Cocoa, error) {
	if nsWindow == 0 {
		return nil, fmt.Errorf("no NSWindow handle")
	}
	return &Cocoa{handle: C.uintptr_t(nsWindow)}, nil
}

// Configure floats the window on every Space, including beside full screen
// apps, and gives it a shadow.
func (c *Cocoa) Configure() error {
	C.pinConfigure(c.handle)
	return nil
}

func (c *Cocoa) Frame() (geometry.Rect, error) {
	var x, y, w, h C.double
	C.pinFrame(c.handle, &x, &y, &w, &h)
	return geometry.Rect{X: float64(x), Y: float64(y), W: float64(w), H: float64(h)}, nil
}

func (c *Cocoa) SetFrame(frame geometry.Rect) error {
	C.pinSetFrame(c.handle, C.double(frame.X), C.double(frame.Y), C.double(frame.W), C.double(frame.H))
	return nil
}

func (c *Cocoa) SetOpacity(a float64) error {
	C.pinSetAlpha(c.handle, C.double(geometry.ClampOpacity(a)))
	return nil
}

// BeginMove hands the drag to the window server when a mouse-down is
// current, and otherwise leaves it to the caller.
func (c *Cocoa) BeginMove() (bool, error) {
	return C.pinBeginDrag(c.handle) != 0, nil
}

func (c *Cocoa) Pointer() (geometry.Point, error) {
	var x, y C.double
	C.pinPointer(&x, &y)
	return geometry.Point{X: float64(x), Y: float64(y)}, nil
}

// Close is a no-op; the window belongs to the toolkit.
func (c *Cocoa) Close() {}
