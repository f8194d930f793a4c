//go:build windows

package ui

// windowsOS implements the OS interface for Windows.
type windowsOS struct{}

// TransformToForeground is a no-op for Windows, as every windowed process is
// already a foreground app.
func (w *windowsOS) TransformToForeground() {}

func getOS() OS {
	return &windowsOS{}
}
