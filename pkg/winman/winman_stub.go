//go:build !windows

package winman

// ListWindows is not implemented off Windows.
func ListWindows() ([]Window, error) {
	return nil, ErrUnsupported
}

// PrimaryScreen is not implemented off Windows.
func PrimaryScreen(useWorkArea bool) (Screen, error) {
	return Screen{}, ErrUnsupported
}

// MoveResize is not implemented off Windows.
func MoveResize(w Window, r Rect) error {
	return ErrUnsupported
}
