package ui

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dixieflatline76/pin/config"
	"github.com/dixieflatline76/pin/pkg/geometry"
	"github.com/dixieflatline76/pin/pkg/platform"
)

var testScreen = geometry.Rect{W: 1920, H: 1080}

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+3] = 0x80, 0xff
	}
	img.Set(0, 0, color.NRGBA{B: 0xff, A: 0xff})

	path := filepath.Join(t.TempDir(), "pinned.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func newTestPinApp(t *testing.T) (*PinApp, *platform.Headless, *bytes.Buffer) {
	t.Helper()

	a := test.NewTempApp(t)
	var out bytes.Buffer
	pa := NewPinApp(a, config.Default(), &out)

	native := platform.NewHeadless()
	pa.SetNativeAttach(func(fyne.Window) platform.Native { return native })
	return pa, native, &out
}

func TestPrepare(t *testing.T) {
	wide := writeTestPNG(t, 2000, 1000)
	small := writeTestPNG(t, 400, 300)

	tests := []struct {
		name  string
		path  string
		frame geometry.Rect
	}{
		{name: "Width bound", path: wide, frame: geometry.Rect{X: 192, Y: 156, W: 1536, H: 768}},
		{name: "Fits unchanged", path: small, frame: geometry.Rect{X: 760, Y: 390, W: 400, H: 300}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			launch, err := Prepare([]string{tt.path, "ignored"}, testScreen, config.Default())
			require.NoError(t, err)
			assert.Equal(t, tt.path, launch.Arg)
			assert.InDelta(t, tt.frame.X, launch.Frame.X, 1e-9)
			assert.InDelta(t, tt.frame.Y, launch.Frame.Y, 1e-9)
			assert.InDelta(t, tt.frame.W, launch.Frame.W, 1e-9)
			assert.InDelta(t, tt.frame.H, launch.Frame.H, 1e-9)
		})
	}
}

func TestPrepareErrors(t *testing.T) {
	notImage := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(notImage, []byte("hello"), 0o644))

	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "No arguments", args: nil, want: ErrMissingArgument},
		{name: "Empty argument", args: []string{""}, want: ErrMissingArgument},
		{name: "Missing file", args: []string{filepath.Join(t.TempDir(), "nope.png")}, want: ErrImageLoad},
		{name: "Not an image", args: []string{notImage}, want: ErrImageLoad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			launch, err := Prepare(tt.args, testScreen, config.Default())
			assert.Nil(t, launch)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestPrepareExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	src := writeTestPNG(t, 40, 30)
	data, err := os.ReadFile(src)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(home, "shot.png"), data, 0o644))

	launch, err := Prepare([]string{"~/shot.png"}, testScreen, config.Default())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "shot.png"), launch.Picture.Path)
	assert.Equal(t, "~/shot.png", launch.Arg)
}

func TestOpenLaunchesWindow(t *testing.T) {
	pa, native, out := newTestPinApp(t)

	require.NoError(t, pa.Open([]string{writeTestPNG(t, 2000, 1000)}, testScreen))
	assert.Empty(t, out.String())
	require.NotNil(t, pa.Window())
	require.NotNil(t, pa.Surface())

	content := pa.Window().Window().Canvas().Size()
	assert.Equal(t, fyne.NewSize(1536, 768), content)

	pa.Start()
	assert.True(t, native.Configured())
	frame, err := native.Frame()
	require.NoError(t, err)
	assert.Equal(t, geometry.Rect{X: 192, Y: 156, W: 1536, H: 768}, frame)
	assert.InDelta(t, config.DefaultInitialOpacity, native.Opacity(), 1e-9)
	assert.InDelta(t, config.DefaultInitialOpacity, pa.Window().Opacity(), 1e-9)
}

func TestOpenFailures(t *testing.T) {
	notImage := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(notImage, []byte("hello"), 0o644))

	tests := []struct {
		name string
		args []string
		want error
		out  string
	}{
		{name: "No argument", want: ErrMissingArgument, out: "Usage: pin <image_path>\n"},
		{name: "Not an image", args: []string{notImage}, want: ErrImageLoad, out: "Error: Could not load image from '" + notImage + "'\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pa, _, out := newTestPinApp(t)

			err := pa.Open(tt.args, testScreen)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Equal(t, tt.out, out.String())
			assert.Nil(t, pa.Window(), "no window on failure")
		})
	}
}

func TestDismissal(t *testing.T) {
	tests := []struct {
		name   string
		key    rune
		closed bool
	}{
		{name: "Lower q", key: 'q', closed: true},
		{name: "Upper Q", key: 'Q', closed: true},
		{name: "Other key", key: 'x', closed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pa, native, _ := newTestPinApp(t)
			require.NoError(t, pa.Open([]string{writeTestPNG(t, 400, 300)}, testScreen))
			pa.Start()

			test.TypeOnCanvas(pa.Window().Window().Canvas(), string(tt.key))
			assert.Equal(t, tt.closed, pa.Window().Closed())
			assert.Equal(t, tt.closed, native.Closed())
		})
	}
}

func TestScrollChangesWindowOpacity(t *testing.T) {
	pa, native, _ := newTestPinApp(t)
	require.NoError(t, pa.Open([]string{writeTestPNG(t, 400, 300)}, testScreen))
	pa.Start()

	ov := pa.Surface().Overlay()
	ov.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.NewDelta(0, -1)})
	assert.InDelta(t, 0.85, native.Opacity(), 1e-9)
	assert.InDelta(t, 0.85, pa.Window().Opacity(), 1e-9)
}

func TestResizeThroughWindow(t *testing.T) {
	pa, native, _ := newTestPinApp(t)
	require.NoError(t, pa.Open([]string{writeTestPNG(t, 400, 300)}, testScreen))
	pa.Start()

	s := pa.Surface()
	s.StartResize(geometry.Point{X: 390, Y: 290})
	s.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(-200, 0)})
	s.DragEnd()

	frame, err := native.Frame()
	require.NoError(t, err)
	assert.Equal(t, geometry.Rect{X: 760, Y: 540, W: 200, H: 150}, frame)
	assert.Equal(t, fyne.NewSize(200, 150), pa.Window().Window().Canvas().Size())
}
