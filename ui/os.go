package ui

// OS covers the per-platform app activation steps Fyne leaves out.
type OS interface {
	// TransformToForeground makes the app a regular foreground app and
	// brings it to the front.
	TransformToForeground()
}
