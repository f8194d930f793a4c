//go:build windows

package sysinfo

import (
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/dixieflatline76/pin/pkg/geometry"
)

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	getSystemMetrics = user32.NewProc("GetSystemMetrics")
)

const (
	smCXScreen = 0
	smCYScreen = 1
)

// PrimaryScreen returns the primary desktop frame in pixels.
func PrimaryScreen() (geometry.Rect, error) {
	if err := getSystemMetrics.Find(); err != nil {
		return geometry.Rect{}, fmt.Errorf("loading GetSystemMetrics: %w", err)
	}

	width, _, _ := getSystemMetrics.Call(uintptr(smCXScreen))
	height, _, _ := getSystemMetrics.Call(uintptr(smCYScreen))
	if width == 0 || height == 0 {
		return geometry.Rect{}, fmt.Errorf("GetSystemMetrics reported an empty screen")
	}

	return geometry.Rect{W: float64(width), H: float64(height)}, nil
}
