//go:build !darwin && !windows

package ui

// defaultOS implements the OS interface for X11 desktops and anything else
// without an activation policy.
type defaultOS struct{}

// TransformToForeground is a no-op; focus is requested on the window itself.
func (d *defaultOS) TransformToForeground() {}

func getOS() OS {
	return &defaultOS{}
}
