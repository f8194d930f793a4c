//go:build linux

package sysinfo

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/dixieflatline76/pin/pkg/geometry"
	"github.com/dixieflatline76/pin/util/log"
)

// PrimaryScreen returns the frame of the primary monitor as reported by
// XRandR, falling back to the whole root window when RandR is unavailable.
func PrimaryScreen() (geometry.Rect, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return geometry.Rect{}, fmt.Errorf("connecting to X server: %w", err)
	}
	defer xu.Conn().Close()

	monitors, err := getMonitors(xu)
	if err != nil {
		log.Printf("RandR unavailable, using root window size: %v", err)
	}
	if m, ok := choosePrimary(monitors); ok {
		return m.Rect, nil
	}

	root, err := xwindow.New(xu, xu.RootWin()).Geometry()
	if err != nil {
		return geometry.Rect{}, fmt.Errorf("failed to get root geometry: %w", err)
	}
	return geometry.Rect{
		X: float64(root.X()),
		Y: float64(root.Y()),
		W: float64(root.Width()),
		H: float64(root.Height()),
	}, nil
}

// getMonitors lists active CRTCs and marks the one driving the primary output.
func getMonitors(xu *xgbutil.XUtil) ([]Monitor, error) {
	conn := xu.Conn()
	if err := randr.Init(conn); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(conn, xu.RootWin()).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var primary randr.Output
	if reply, err := randr.GetOutputPrimary(conn, xu.RootWin()).Reply(); err == nil {
		primary = reply.Output
	}

	var monitors []Monitor
	for i, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(conn, crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}

		m := Monitor{
			ID:   i,
			Name: fmt.Sprintf("Monitor%d", i),
			Rect: geometry.Rect{
				X: float64(info.X),
				Y: float64(info.Y),
				W: float64(info.Width),
				H: float64(info.Height),
			},
		}
		for _, out := range info.Outputs {
			if primary != 0 && out == primary {
				m.Primary = true
			}
		}
		if outInfo, err := randr.GetOutputInfo(conn, info.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			m.Name = string(outInfo.Name)
		}
		monitors = append(monitors, m)
	}

	return monitors, nil
}
