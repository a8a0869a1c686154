package tiler

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duokai-tools/duokai/pkg/winman"
)

func fakeWindows(n int) []winman.Window {
	var ws []winman.Window
	for i := 0; i < n; i++ {
		ws = append(ws, winman.Window{
			Handle: uintptr(0x1000 + i),
			Title:  fmt.Sprintf("window %d", i+1),
		})
	}
	return ws
}

type moveRecorder struct {
	moves map[uintptr]winman.Rect
}

func newTestTiler(windows []winman.Window) (*Tiler, *moveRecorder, *bytes.Buffer) {
	rec := &moveRecorder{moves: make(map[uintptr]winman.Rect)}
	out := &bytes.Buffer{}
	t := &Tiler{
		List:   func() ([]winman.Window, error) { return windows, nil },
		Screen: func(bool) (winman.Screen, error) { return winman.Screen{W: 2560, H: 1440}, nil },
		Move: func(w winman.Window, r winman.Rect) error {
			rec.moves[w.Handle] = r
			return nil
		},
		Out: out,
	}
	return t, rec, out
}

func TestTileMovesUpToCount(t *testing.T) {
	tl, rec, out := newTestTiler(fakeWindows(10))

	err := tl.Tile(Options{Columns: 3, Rows: 2, Count: 6, UseWorkArea: true})
	require.NoError(t, err)

	assert.Len(t, rec.moves, 6)
	assert.Contains(t, out.String(), "Found 10 candidate windows, tiling 6:")
}

func TestTileClampsToWindowCount(t *testing.T) {
	tl, rec, _ := newTestTiler(fakeWindows(2))

	err := tl.Tile(Options{Columns: 3, Rows: 2, Count: 6})
	require.NoError(t, err)
	assert.Len(t, rec.moves, 2)
}

func TestTilePlacementsMatchGrid(t *testing.T) {
	windows := fakeWindows(4)
	tl, rec, _ := newTestTiler(windows)

	err := tl.Tile(Options{Columns: 2, Rows: 2, Count: 4})
	require.NoError(t, err)

	rects := Grid(winman.Screen{W: 2560, H: 1440}, 2, 2, 4)
	for i, w := range windows {
		assert.Equal(t, rects[i], rec.moves[w.Handle])
	}
}

func TestTileDryRun(t *testing.T) {
	tl, rec, out := newTestTiler(fakeWindows(4))

	err := tl.Tile(Options{Columns: 2, Rows: 2, Count: 4, DryRun: true})
	require.NoError(t, err)

	assert.Empty(t, rec.moves)
	assert.Contains(t, out.String(), `[1] "window 1"`)
}

func TestTileForcedResolution(t *testing.T) {
	tl, rec, _ := newTestTiler(fakeWindows(1))
	tl.Screen = func(bool) (winman.Screen, error) {
		t.Fatal("screen detection must be skipped when a resolution is forced")
		return winman.Screen{}, nil
	}

	err := tl.Tile(Options{
		Columns:    1,
		Rows:       1,
		Count:      1,
		Resolution: &winman.Screen{W: 800, H: 600},
	})
	require.NoError(t, err)
	assert.Equal(t, winman.Rect{X: 0, Y: 0, W: 800, H: 600}, rec.moves[0x1000])
}

func TestTileNoWindows(t *testing.T) {
	tl, rec, out := newTestTiler(nil)

	err := tl.Tile(Options{Columns: 3, Rows: 2, Count: 6})
	require.NoError(t, err)

	assert.Empty(t, rec.moves)
	assert.Contains(t, out.String(), "No tileable windows found.")
}
