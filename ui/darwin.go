//go:build darwin

package ui

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Foundation -framework AppKit

#import <AppKit/AppKit.h>

// NSApplicationActivationPolicyRegular is a normal, foreground application.
// It has a Dock icon and a menu bar.
const NSApplicationActivationPolicy Regular = 0;

// setActivationPolicy sets the activation policy and activates the app so a
// window launched from a terminal comes to the front.
static void setActivationPolicy(long policy) {
    [NSApp setActivationPolicy:policy];
    [NSApp activateIgnoringOtherApps:YES];
}
*/
import "C"

// darwinOS implements the OS interface for macOS.
type darwinOS struct{}

// TransformToForeground changes the application to be a regular app with a Dock icon.
func (d *darwinOS) TransformToForeground() {
	C.setActivationPolicy(C.Regular)
}

func getOS() OS {
	return &darwinOS{}
}
