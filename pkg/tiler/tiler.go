// Package tiler arranges the desktop's top-level windows into a grid on
// the primary display.
package tiler

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/duokai-tools/duokai/pkg/winman"
)

// Options controls a tiling pass.
type Options struct {
	Columns int
	Rows    int
	Count   int
	// UseWorkArea excludes the taskbar from the layout area.
	UseWorkArea bool
	// Resolution overrides screen detection when non-nil.
	Resolution *winman.Screen
	// DryRun prints the layout without moving anything.
	DryRun bool
}

// Tiler tiles windows. The window system hooks are injectable so the
// layout logic is testable without a real desktop.
type Tiler struct {
	List   func() ([]winman.Window, error)
	Screen func(useWorkArea bool) (winman.Screen, error)
	Move   func(winman.Window, winman.Rect) error
	Out    io.Writer
}

// New returns a Tiler wired to the real window system.
func New() *Tiler {
	return &Tiler{
		List:   winman.ListWindows,
		Screen: winman.PrimaryScreen,
		Move:   winman.MoveResize,
		Out:    os.Stdout,
	}
}

// Tile lays out up to opts.Count windows in enumeration order. Windows
// beyond the grid capacity are left alone.
func (t *Tiler) Tile(opts Options) error {
	var screen winman.Screen
	if opts.Resolution != nil {
		screen = *opts.Resolution
	} else {
		var err error
		screen, err = t.Screen(opts.UseWorkArea)
		if err != nil {
			return fmt.Errorf("failed to detect screen size: %w", err)
		}
	}

	windows, err := t.List()
	if err != nil {
		return fmt.Errorf("failed to enumerate windows: %w", err)
	}
	if len(windows) == 0 {
		fmt.Fprintln(t.Out, "No tileable windows found.")
		return nil
	}

	n := opts.Count
	if len(windows) < n {
		n = len(windows)
	}
	if capacity := opts.Columns * opts.Rows; capacity < n {
		n = capacity
	}

	logrus.WithFields(logrus.Fields{
		"candidates": len(windows),
		"tiling":     n,
		"screen":     fmt.Sprintf("%dx%d", screen.W, screen.H),
	}).Debug("computed tiling plan")

	rects := Grid(screen, opts.Columns, opts.Rows, n)

	fmt.Fprintf(t.Out, "Found %d candidate windows, tiling %d:\n", len(windows), n)
	for i := 0; i < n; i++ {
		w := windows[i]
		r := rects[i]
		fmt.Fprintf(t.Out, "[%d] %q -> x=%d, y=%d, w=%d, h=%d\n", i+1, w.Title, r.X, r.Y, r.W, r.H)
		if opts.DryRun {
			continue
		}
		if err := t.Move(w, r); err != nil {
			return err
		}
	}
	return nil
}
