//go:build windows

package winman

import (
	"fmt"
	"strings"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procEnumWindows              = user32.NewProc("EnumWindows")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procIsIconic                 = user32.NewProc("IsIconic")
	procGetWindowLongW           = user32.NewProc("GetWindowLongW")
	procGetWindow                = user32.NewProc("GetWindow")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetWindowTextLengthW     = user32.NewProc("GetWindowTextLengthW")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procGetSystemMetrics         = user32.NewProc("GetSystemMetrics")
	procSystemParametersInfoW    = user32.NewProc("SystemParametersInfoW")
	procShowWindow               = user32.NewProc("ShowWindow")
	procSetWindowPos             = user32.NewProc("SetWindowPos")
)

const (
	gwOwner        = 4
	gwlExStyle     = 0xFFFFFFEC // GWL_EXSTYLE (-20) zero-extended for Proc.Call
	wsExToolWindow = 0x00000080

	swRestore = 9

	swpNoZOrder      = 0x0004
	swpNoActivate    = 0x0010
	swpNoOwnerZOrder = 0x0200

	smCxScreen = 0
	smCyScreen = 1

	spiGetWorkArea = 0x0030
)

// ListWindows enumerates the top-level windows that make sense to tile:
// visible, not minimized, titled, not tool windows, not owned dialogs and
// not belonging to the current process.
func ListWindows() ([]Window, error) {
	var result []Window
	currentPID := windows.GetCurrentProcessId()

	cb := syscall.NewCallback(func(hwnd uintptr, lparam uintptr) uintptr {
		if !isTileable(hwnd, currentPID) {
			return 1
		}
		result = append(result, Window{Handle: hwnd, Title: windowText(hwnd)})
		return 1
	})

	ret, _, callErr := procEnumWindows.Call(cb, 0)
	if ret == 0 {
		return nil, fmt.Errorf("EnumWindows failed: %w", callErr)
	}
	return result, nil
}

func isTileable(hwnd uintptr, currentPID uint32) bool {
	if r, _, _ := procIsWindowVisible.Call(hwnd); r == 0 {
		return false
	}
	if r, _, _ := procIsIconic.Call(hwnd); r != 0 {
		return false
	}

	exStyle, _, _ := procGetWindowLongW.Call(hwnd, uintptr(gwlExStyle))
	if exStyle&wsExToolWindow != 0 {
		return false
	}

	// Owned windows are usually dialogs.
	if owner, _, _ := procGetWindow.Call(hwnd, uintptr(gwOwner)); owner != 0 {
		return false
	}

	title := strings.TrimSpace(windowText(hwnd))
	if title == "" || strings.EqualFold(title, "program manager") {
		return false
	}

	// Skip our own console window.
	var pid uint32
	procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
	return pid != currentPID
}

func windowText(hwnd uintptr) string {
	n, _, _ := procGetWindowTextLengthW.Call(hwnd)
	if n == 0 {
		return ""
	}
	buf := make([]uint16, n+1)
	procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), n+1)
	return windows.UTF16ToString(buf)
}

// PrimaryScreen returns the primary display size. With useWorkArea the
// taskbar area is excluded and the returned offsets point at the work
// area origin.
func PrimaryScreen(useWorkArea bool) (Screen, error) {
	if useWorkArea {
		var rect struct {
			Left, Top, Right, Bottom int32
		}
		ret, _, callErr := procSystemParametersInfoW.Call(
			uintptr(spiGetWorkArea), 0, uintptr(unsafe.Pointer(&rect)), 0)
		if ret == 0 {
			return Screen{}, fmt.Errorf("SystemParametersInfoW failed: %w", callErr)
		}
		return Screen{
			W:       int(rect.Right - rect.Left),
			H:       int(rect.Bottom - rect.Top),
			OffsetX: int(rect.Left),
			OffsetY: int(rect.Top),
		}, nil
	}

	w, _, _ := procGetSystemMetrics.Call(uintptr(smCxScreen))
	h, _, _ := procGetSystemMetrics.Call(uintptr(smCyScreen))
	return Screen{W: int(w), H: int(h)}, nil
}

// MoveResize restores a window and moves it into the given rectangle
// without changing its z-order or stealing focus.
func MoveResize(w Window, r Rect) error {
	procShowWindow.Call(w.Handle, uintptr(swRestore))

	ret, _, callErr := procSetWindowPos.Call(
		w.Handle, 0,
		uintptr(r.X), uintptr(r.Y), uintptr(r.W), uintptr(r.H),
		uintptr(swpNoZOrder|swpNoActivate|swpNoOwnerZOrder))
	if ret == 0 {
		return fmt.Errorf("SetWindowPos failed for %q: %w", w.Title, callErr)
	}
	return nil
}
