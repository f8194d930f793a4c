//go:build !linux && !darwin && !windows

package sysinfo

import (
	"errors"

	"github.com/dixieflatline76/pin/pkg/geometry"
)

// PrimaryScreen is not supported on this platform.
func PrimaryScreen() (geometry.Rect, error) {
	return geometry.Rect{}, errors.New("screen query not supported on this platform")
}
