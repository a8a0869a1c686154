package tiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duokai-tools/duokai/pkg/winman"
)

func TestGridEvenSplit(t *testing.T) {
	rects := Grid(winman.Screen{W: 2560, H: 1440}, 3, 2, 6)
	require.Len(t, rects, 6)

	// 2560 % 3 == 1: first column gets the spare pixel.
	assert.Equal(t, winman.Rect{X: 0, Y: 0, W: 854, H: 720}, rects[0])
	assert.Equal(t, winman.Rect{X: 854, Y: 0, W: 853, H: 720}, rects[1])
	assert.Equal(t, winman.Rect{X: 1707, Y: 0, W: 853, H: 720}, rects[2])
	assert.Equal(t, winman.Rect{X: 0, Y: 720, W: 854, H: 720}, rects[3])
}

func TestGridRemainderDistribution(t *testing.T) {
	rects := Grid(winman.Screen{W: 100, H: 91}, 3, 2, 6)
	require.Len(t, rects, 6)

	// widths 34,33,33 and heights 46,45: remainders go left/top first.
	assert.Equal(t, 34, rects[0].W)
	assert.Equal(t, 33, rects[1].W)
	assert.Equal(t, 33, rects[2].W)
	assert.Equal(t, 46, rects[0].H)
	assert.Equal(t, 45, rects[3].H)

	// columns abut with no gaps and cover the full width
	assert.Equal(t, rects[0].X+rects[0].W, rects[1].X)
	assert.Equal(t, rects[1].X+rects[1].W, rects[2].X)
	assert.Equal(t, 100, rects[2].X+rects[2].W)
	assert.Equal(t, 91, rects[3].Y+rects[3].H)
}

func TestGridHonorsOffsets(t *testing.T) {
	rects := Grid(winman.Screen{W: 300, H: 200, OffsetX: 10, OffsetY: 40}, 3, 2, 6)
	require.Len(t, rects, 6)

	assert.Equal(t, 10, rects[0].X)
	assert.Equal(t, 40, rects[0].Y)
	assert.Equal(t, 140, rects[3].Y)
}

func TestGridCapsAtCapacity(t *testing.T) {
	rects := Grid(winman.Screen{W: 300, H: 200}, 2, 2, 10)
	assert.Len(t, rects, 4)
}

func TestGridRejectsBadArguments(t *testing.T) {
	assert.Nil(t, Grid(winman.Screen{W: 300, H: 200}, 0, 2, 4))
	assert.Nil(t, Grid(winman.Screen{W: 300, H: 200}, 2, 0, 4))
	assert.Nil(t, Grid(winman.Screen{W: 300, H: 200}, 2, 2, 0))
}
