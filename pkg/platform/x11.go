//go:build linux

package platform

import (
	"fmt"

	"fyne.io/fyne/v2/driver"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/dixieflatline76/pin/pkg/geometry"
)

const (
	wmStateAdd       = 1
	sourceIndication = 2 // pager/direct action
	allDesktops      = 0xFFFFFFFF
)

func fromContext(ctx any) (Native, error) {
	switch c := ctx.(type) {
	case driver.X11WindowContext:
		return newX11(xproto.Window(c.WindowHandle))
	case *driver.X11WindowContext:
		return newX11(xproto.Window(c.WindowHandle))
	default:
		return nil, fmt.Errorf("unsupported window context %T", ctx)
	}
}

// X11 drives a window through its own connection to the X server. Window
// manager requests go through EWMH client messages.
type X11 struct {
	xu  *xgbutil.XUtil
	win xproto.Window
}

func newX11(win xproto.Window) (*X11, error) {
	if win == 0 {
		return nil, fmt.Errorf("no X11 window handle")
	}
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connecting to X server: %w", err)
	}
	return &X11{xu: xu, win: win}, nil
}

// Configure asks the window manager to keep the window above others and
// show it on every desktop.
func (x *X11) Configure() error {
	above, err := x.atom("_NET_WM_STATE_ABOVE")
	if err != nil {
		return err
	}
	sticky, err := x.atom("_NET_WM_STATE_STICKY")
	if err != nil {
		return err
	}
	if err := x.sendRootMessage("_NET_WM_STATE", wmStateAdd, uint32(above), uint32(sticky), sourceIndication); err != nil {
		return fmt.Errorf("setting window state: %w", err)
	}
	if err := x.sendRootMessage("_NET_WM_DESKTOP", allDesktops, sourceIndication); err != nil {
		return fmt.Errorf("setting window desktop: %w", err)
	}
	return nil
}

// Frame returns the window geometry including any decorations.
func (x *X11) Frame() (geometry.Rect, error) {
	r, err := xwindow.New(x.xu, x.win).DecorGeometry()
	if err != nil {
		return geometry.Rect{}, fmt.Errorf("failed to get window geometry: %w", err)
	}
	return geometry.Rect{
		X: float64(r.X()),
		Y: float64(r.Y()),
		W: float64(r.Width()),
		H: float64(r.Height()),
	}, nil
}

// SetFrame moves and resizes the window.
func (x *X11) SetFrame(frame geometry.Rect) error {
	px, py := int(frame.X+0.5), int(frame.Y+0.5)
	pw, ph := int(frame.W+0.5), int(frame.H+0.5)

	// Use EWMH MoveResize for better WM compatibility
	if err := ewmh.MoveresizeWindow(x.xu, x.win, px, py, pw, ph); err != nil {
		xwindow.New(x.xu, x.win).MoveResize(px, py, pw, ph)
	}
	return nil
}

// SetOpacity sets _NET_WM_WINDOW_OPACITY, which compositing managers apply
// to the whole window.
func (x *X11) SetOpacity(a float64) error {
	a = geometry.ClampOpacity(a)
	if err := xprop.ChangeProp32(x.xu, x.win, "_NET_WM_WINDOW_OPACITY", "CARDINAL", uint(a*0xffffffff)); err != nil {
		return fmt.Errorf("setting window opacity: %w", err)
	}
	return nil
}

// BeginMove leaves the move to the caller. The toolkit holds the implicit
// pointer grab on another connection, so _NET_WM_MOVERESIZE is unreliable.
func (x *X11) BeginMove() (bool, error) {
	return false, nil
}

// Pointer returns the pointer location relative to the root window.
func (x *X11) Pointer() (geometry.Point, error) {
	reply, err := xproto.QueryPointer(x.xu.Conn(), x.xu.RootWin()).Reply()
	if err != nil {
		return geometry.Point{}, fmt.Errorf("failed to query pointer: %w", err)
	}
	return geometry.Point{X: float64(reply.RootX), Y: float64(reply.RootY)}, nil
}

// Close drops the X connection.
func (x *X11) Close() {
	x.xu.Conn().Close()
}

func (x *X11) atom(name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(x.xu.Conn(), false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("failed to intern %s: %w", name, err)
	}
	return reply.Atom, nil
}

// sendRootMessage sends an EWMH client message about the window to the root.
// Built by hand because the xgbutil ewmh request helpers panic on this
// library version.
func (x *X11) sendRootMessage(name string, data ...uint32) error {
	typ, err := x.atom(name)
	if err != nil {
		return err
	}

	payload := make([]uint32, 5)
	copy(payload, data)
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: x.win,
		Type:   typ,
		Data:   xproto.ClientMessageDataUnionData32New(payload),
	}

	return xproto.SendEventChecked(
		x.xu.Conn(),
		false,
		x.xu.RootWin(),
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}
