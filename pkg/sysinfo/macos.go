//go:build darwin

package sysinfo

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit

#import <AppKit/AppKit.h>

// mainScreenFrame reports the main screen's frame in points. It returns 0 if
// no screen is attached.
int mainScreenFrame(double *x, double *y, double *w, double *h) {
    NSScreen *screen = [NSScreen mainScreen];
    if (screen == nil) {
        return 0;
    }
    NSRect f = [screen frame];
    *x = f.origin.x;
    *y = f.origin.y;
    *w = f.size.width;
    *h = f.size.height;
    return 1;
}
*/
import "C"

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"

	"github.com/dixieflatline76/pin/pkg/geometry"
	"github.com/dixieflatline76/pin/util/log"
)

var (
	// resolutionRegex matches strings like "3456 x 2234" or "2880 x 1864 Retina" or "1710 x 1107 @ 60.00Hz"
	resolutionRegex = regexp.MustCompile(`(\d+)\s*x\s*(\d+)`)
)

// systemProfilerOutput represents the nested structure of system_profiler -json
type systemProfilerOutput struct {
	Displays []gpuInfo `json:"SPDisplaysDataType"`
}

type gpuInfo struct {
	NDRVs []displayInfo `json:"spdisplays_ndrvs"`
}

type displayInfo struct {
	Resolution string `json:"_spdisplays_resolution"` // UI resolution in points (e.g. "1512 x 982 @ 120.00Hz")
	Pixels     string `json:"_spdisplays_pixels"`     // Backing pixels (e.g. "3024 x 1964")
	Main       string `json:"spdisplays_main"`        // "spdisplays_yes"
}

// PrimaryScreen returns the main screen frame in points. AppKit is asked
// first; system_profiler is the fallback when no screen object is available.
func PrimaryScreen() (geometry.Rect, error) {
	var x, y, w, h C.double
	if C.mainScreenFrame(&x, &y, &w, &h) == 1 && w > 0 && h > 0 {
		return geometry.Rect{X: float64(x), Y: float64(y), W: float64(w), H: float64(h)}, nil
	}
	log.Println("NSScreen unavailable, asking system_profiler")

	out, err := exec.Command("system_profiler", "SPDisplaysDataType", "-json").Output()
	if err != nil {
		return geometry.Rect{}, fmt.Errorf("failed to run system_profiler: %w", err)
	}

	width, height, err := parseJSONResolution(out)
	if err != nil {
		return geometry.Rect{}, err
	}
	return geometry.Rect{W: float64(width), H: float64(height)}, nil
}

func parseJSONResolution(data []byte) (int, int, error) {
	var profiler systemProfilerOutput
	if err := json.Unmarshal(data, &profiler); err != nil {
		return 0, 0, fmt.Errorf("decoding system_profiler JSON: %w", err)
	}

	for _, gpu := range profiler.Displays {
		for _, display := range gpu.NDRVs {
			if display.Main == "spdisplays_yes" {
				return parseResolutionString(display.resolution())
			}
		}
	}

	// Fallback: If no main display found, try the first display of the first GPU
	if len(profiler.Displays) > 0 && len(profiler.Displays[0].NDRVs) > 0 {
		return parseResolutionString(profiler.Displays[0].NDRVs[0].resolution())
	}

	return 0, 0, fmt.Errorf("no displays found in system_profiler output")
}

// resolution prefers the point resolution, which is what windows are laid out in.
func (d displayInfo) resolution() string {
	if d.Resolution != "" {
		return d.Resolution
	}
	return d.Pixels
}

func parseResolutionString(s string) (int, int, error) {
	matches := resolutionRegex.FindStringSubmatch(s)
	if len(matches) < 3 {
		return 0, 0, fmt.Errorf("failed to parse resolution from string: %s", s)
	}

	width, errW := strconv.Atoi(matches[1])
	height, errH := strconv.Atoi(matches[2])

	if errW != nil || errH != nil {
		return 0, 0, fmt.Errorf("failed to convert dimensions: %v, %v", errW, errH)
	}

	return width, height, nil
}
