//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"fyne.io/fyne/v2/driver"
	"golang.org/x/sys/windows"

	"github.com/dixieflatline76/pin/pkg/geometry"
)

var (
	user32                   = windows.NewLazySystemDLL("user32.dll")
	procSetWindowPos         = user32.NewProc("SetWindowPos")
	procGetWindowRect        = user32.NewProc("GetWindowRect")
	procGetWindowLong        = user32.NewProc("GetWindowLongW")
	procSetWindowLong        = user32.NewProc("SetWindowLongW")
	procSetLayeredWindowAttr = user32.NewProc("SetLayeredWindowAttributes")
	procReleaseCapture       = user32.NewProc("ReleaseCapture")
	procPostMessage          = user32.NewProc("PostMessageW")
	procGetCursorPos         = user32.NewProc("GetCursorPos")
)

const (
	hwndTopmost     = ^uintptr(0) // -1
	swpNoSize       = 0x0001
	swpNoMove       = 0x0002
	swpNoZOrder     = 0x0004
	swpNoActivate   = 0x0010
	wsExLayered     = 0x00080000
	lwaAlpha        = 0x00000002
	wmNCLButtonDown = 0x00A1
	htCaption       = 2
)

// gwlExStyle is GWL_EXSTYLE (-20) as uintptr
var gwlExStyleIndex int32 = -20
var gwlExStyle = uintptr(uint32(gwlExStyleIndex))

type point struct {
	X, Y int32
}

func fromContext(ctx any) (Native, error) {
	switch c := ctx.(type) {
	case driver.WindowsWindowContext:
		return newWin32(windows.HWND(c.HWND))
	case *driver.WindowsWindowContext:
		return newWin32(windows.HWND(c.HWND))
	default:
		return nil, fmt.Errorf("unsupported window context %T", ctx)
	}
}

// Win32 drives a window through user32. Windows has no public per-window
// virtual desktop pinning, so the window stays on the desktop it opened on.
type Win32 struct {
	hwnd windows.HWND
}

func newWin32(hwnd windows.HWND) (*Win32, error) {
	if hwnd == 0 {
		return nil, fmt.Errorf("no window handle")
	}
	if err := user32.Load(); err != nil {
		return nil, fmt.Errorf("loading user32: %w", err)
	}
	return &Win32{hwnd: hwnd}, nil
}

// Configure makes the window topmost and layered.
func (w *Win32) Configure() error {
	ret, _, err := procSetWindowPos.Call(
		uintptr(w.hwnd),
		hwndTopmost,
		0, 0, 0, 0,
		swpNoMove|swpNoSize|swpNoActivate,
	)
	if ret == 0 {
		return fmt.Errorf("SetWindowPos failed: %w", err)
	}

	exStyle, _, _ := procGetWindowLong.Call(uintptr(w.hwnd), gwlExStyle)
	procSetWindowLong.Call(uintptr(w.hwnd), gwlExStyle, exStyle|wsExLayered)
	return nil
}

// Frame returns the window rectangle in screen pixels.
func (w *Win32) Frame() (geometry.Rect, error) {
	var r windows.Rect
	ret, _, err := procGetWindowRect.Call(uintptr(w.hwnd), uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return geometry.Rect{}, fmt.Errorf("GetWindowRect failed: %w", err)
	}
	return geometry.Rect{
		X: float64(r.Left),
		Y: float64(r.Top),
		W: float64(r.Right - r.Left),
		H: float64(r.Bottom - r.Top),
	}, nil
}

// SetFrame moves and resizes the window without changing its z-order.
func (w *Win32) SetFrame(frame geometry.Rect) error {
	ret, _, err := procSetWindowPos.Call(
		uintptr(w.hwnd),
		0,
		uintptr(int32(frame.X+0.5)), uintptr(int32(frame.Y+0.5)),
		uintptr(int32(frame.W+0.5)), uintptr(int32(frame.H+0.5)),
		swpNoZOrder|swpNoActivate,
	)
	if ret == 0 {
		return fmt.Errorf("SetWindowPos failed: %w", err)
	}
	return nil
}

// SetOpacity applies a uniform alpha to the layered window.
func (w *Win32) SetOpacity(a float64) error {
	alpha := byte(geometry.ClampOpacity(a) * 255)
	ret, _, err := procSetLayeredWindowAttr.Call(uintptr(w.hwnd), 0, uintptr(alpha), lwaAlpha)
	if ret == 0 {
		return fmt.Errorf("SetLayeredWindowAttributes failed: %w", err)
	}
	return nil
}

// BeginMove releases the mouse capture and posts a caption click, which
// starts the system move loop.
func (w *Win32) BeginMove() (bool, error) {
	var p point
	procGetCursorPos.Call(uintptr(unsafe.Pointer(&p)))
	lParam := uintptr(uint16(p.X)) | uintptr(uint16(p.Y))<<16

	procReleaseCapture.Call()
	ret, _, err := procPostMessage.Call(uintptr(w.hwnd), wmNCLButtonDown, htCaption, lParam)
	if ret == 0 {
		return false, fmt.Errorf("PostMessage failed: %w", err)
	}
	return true, nil
}

// Pointer returns the cursor location in screen pixels.
func (w *Win32) Pointer() (geometry.Point, error) {
	var p point
	ret, _, err := procGetCursorPos.Call(uintptr(unsafe.Pointer(&p)))
	if ret == 0 {
		return geometry.Point{}, fmt.Errorf("GetCursorPos failed: %w", err)
	}
	return geometry.Point{X: float64(p.X), Y: float64(p.Y)}, nil
}

// Close is a no-op; the handle belongs to the toolkit.
func (w *Win32) Close() {}
