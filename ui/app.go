// Package ui builds the pinned image window on top of Fyne.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/dixieflatline76/pin/asset"
	"github.com/dixieflatline76/pin/config"
	"github.com/dixieflatline76/pin/pkg/geometry"
	"github.com/dixieflatline76/pin/pkg/overlay"
	"github.com/dixieflatline76/pin/pkg/picture"
	"github.com/dixieflatline76/pin/pkg/platform"
	"github.com/dixieflatline76/pin/pkg/sysinfo"
	"github.com/dixieflatline76/pin/util"
	"github.com/dixieflatline76/pin/util/log"
)

var (
	// ErrMissingArgument is returned when no image path was given.
	ErrMissingArgument = errors.New("missing image path")
	// ErrImageLoad is returned when the image path cannot be decoded.
	ErrImageLoad = errors.New("could not load image")
)

// Launch is the image and initial window frame, worked out before any
// window exists.
type Launch struct {
	Arg     string
	Picture *picture.Picture
	Frame   geometry.Rect
}

// Prepare validates the command line and loads the image. Only the first
// argument is used. The frame fits the image into cfg.ScreenFraction of
// screen and centers it there.
func Prepare(args []string, screen geometry.Rect, cfg config.Config) (*Launch, error) {
	if len(args) == 0 || args[0] == "" {
		return nil, ErrMissingArgument
	}
	arg := args[0]

	path, err := util.ExpandPath(arg)
	if err != nil {
		return nil, fmt.Errorf("%w from '%s': %w", ErrImageLoad, arg, err)
	}

	pic, err := picture.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w from '%s': %w", ErrImageLoad, arg, err)
	}

	bound := geometry.Bound(screen.Size(), cfg.ScreenFraction)
	size := geometry.FitSize(pic.Size(), bound)
	return &Launch{
		Arg:     arg,
		Picture: pic,
		Frame:   geometry.Center(size, screen),
	}, nil
}

// PinApp is the composition root. It owns the window and the surface.
type PinApp struct {
	app      fyne.App
	cfg      config.Config
	assetMgr *asset.Manager
	out      io.Writer
	hostOS   OS
	attach   func(fyne.Window) platform.Native

	launch  *Launch
	window  *PinnedWindow
	surface *Surface
}

// NewPinApp creates the application around a Fyne app. Diagnostics go to out.
func NewPinApp(a fyne.App, cfg config.Config, out io.Writer) *PinApp {
	return &PinApp{
		app:      a,
		cfg:      cfg,
		assetMgr: asset.NewManager(),
		out:      out,
		hostOS:   getOS(),
	}
}

// SetNativeAttach replaces how the window reaches its native backend.
func (pa *PinApp) SetNativeAttach(attach func(fyne.Window) platform.Native) {
	pa.attach = attach
}

// Window returns the pinned window, or nil before Open.
func (pa *PinApp) Window() *PinnedWindow {
	return pa.window
}

// Surface returns the image surface, or nil before Open.
func (pa *PinApp) Surface() *Surface {
	return pa.surface
}

// Launch returns what Open prepared, or nil before Open.
func (pa *PinApp) Launch() *Launch {
	return pa.launch
}

// Open validates args, builds the window and shows it. Native window traits
// are applied by Start once the event loop runs. On failure it prints a
// diagnostic and creates no window.
func (pa *PinApp) Open(args []string, screen geometry.Rect) error {
	launch, err := Prepare(args, screen, pa.cfg)
	if err != nil {
		pa.report(args, err)
		return err
	}
	pa.launch = launch
	log.Printf("Pinning %s (%s, %.0fx%.0f)", launch.Picture.Path, launch.Picture.Format,
		launch.Picture.Size().W, launch.Picture.Size().H)

	pa.window = NewPinnedWindow(pa.app, config.AppName, pa.attach)

	// Corner radius is in window units; the mask is cut in image pixels.
	radius := pa.cfg.CornerRadius * launch.Picture.Size().W / launch.Frame.W
	pa.surface = NewSurface(launch.Picture.Rounded(radius), launch.Picture.Aspect(), pa.cfg.MinWidth, pa.window)

	ov := NewOverlay(overlay.New(pa.cfg.OpacityStep), pa.window, pa.cfg.FadeDuration)
	pa.surface.Attach(ov)

	w := pa.window.Window()
	if icon, err := pa.assetMgr.GetIcon("pin.svg"); err == nil {
		w.SetIcon(icon)
		pa.app.SetIcon(icon)
	}
	w.SetContent(pa.surface)
	pa.window.SetFrame(launch.Frame)
	pa.window.SetOpacity(pa.cfg.InitialOpacity)
	w.Show()

	pa.app.Lifecycle().SetOnStarted(pa.Start)
	return nil
}

// Start brings the app to the foreground, applies native window traits, the
// initial frame and opacity, and focuses the window.
func (pa *PinApp) Start() {
	if pa.window == nil || pa.launch == nil {
		return
	}
	pa.hostOS.TransformToForeground()
	pa.window.Realize(pa.launch.Frame)
}

func (pa *PinApp) report(args []string, err error) {
	switch {
	case errors.Is(err, ErrMissingArgument):
		usage, uerr := pa.assetMgr.GetText("usage.txt")
		if uerr != nil {
			usage = "Usage: " + config.AppName + " <image_path>"
		}
		fmt.Fprintln(pa.out, usage)
	case errors.Is(err, ErrImageLoad):
		fmt.Fprintf(pa.out, "Error: Could not load image from '%s'\n", args[0])
		log.Debugf("Load failure: %v", err)
	default:
		fmt.Fprintf(pa.out, "Error: %v\n", err)
	}
}

// primaryScreen returns the primary screen frame, or the fallback size when
// no screen can be detected.
func primaryScreen() geometry.Rect {
	screen, err := sysinfo.PrimaryScreen()
	if err != nil || screen.W <= 0 || screen.H <= 0 {
		log.Printf("No primary screen detected, using %dx%d: %v",
			config.FallbackScreenWidth, config.FallbackScreenHeight, err)
		return geometry.Rect{W: config.FallbackScreenWidth, H: config.FallbackScreenHeight}
	}
	return screen
}

// Run pins the image named by args and blocks until the window closes.
func Run(args []string) error {
	a := app.NewWithID(config.AppID)
	cfg := config.NewAppConfig(a.Preferences()).Load()

	pa := NewPinApp(a, cfg, os.Stdout)
	if err := pa.Open(args, primaryScreen()); err != nil {
		return err
	}

	a.Run()
	return nil
}
