// Package winman wraps the Win32 calls needed to enumerate, move and
// resize top-level windows. On other platforms every operation returns
// ErrUnsupported.
package winman

import "errors"

// ErrUnsupported is returned on platforms without Win32 window management.
var ErrUnsupported = errors.New("window management is only supported on windows")

// Window is a tileable top-level window.
type Window struct {
	Handle uintptr
	Title  string
}

// Rect is a screen-space rectangle in pixels.
type Rect struct {
	X, Y, W, H int
}

// Screen describes the usable area of the primary display. OffsetX and
// OffsetY are non-zero when the work area excludes the taskbar.
type Screen struct {
	W, H             int
	OffsetX, OffsetY int
}
