package tiler

import "github.com/duokai-tools/duokai/pkg/winman"

// Grid splits a screen into rows*columns cells and returns the first
// count rectangles in row-major order. Pixels divide evenly per column
// and row; remainder pixels go to the leftmost columns and topmost rows
// one at a time, so the cells cover the screen with no gaps.
func Grid(s winman.Screen, columns, rows, count int) []winman.Rect {
	if columns < 1 || rows < 1 || count < 1 {
		return nil
	}

	colWidths := make([]int, columns)
	colX := make([]int, columns)
	baseW, remW := s.W/columns, s.W%columns
	for i := 0; i < columns; i++ {
		colWidths[i] = baseW
		if i < remW {
			colWidths[i]++
		}
		if i == 0 {
			colX[i] = s.OffsetX
		} else {
			colX[i] = colX[i-1] + colWidths[i-1]
		}
	}

	rowHeights := make([]int, rows)
	rowY := make([]int, rows)
	baseH, remH := s.H/rows, s.H%rows
	for i := 0; i < rows; i++ {
		rowHeights[i] = baseH
		if i < remH {
			rowHeights[i]++
		}
		if i == 0 {
			rowY[i] = s.OffsetY
		} else {
			rowY[i] = rowY[i-1] + rowHeights[i-1]
		}
	}

	var rects []winman.Rect
	for idx := 0; idx < count; idx++ {
		r := idx / columns
		c := idx % columns
		if r >= rows {
			break
		}
		rects = append(rects, winman.Rect{
			X: colX[c],
			Y: rowY[r],
			W: colWidths[c],
			H: rowHeights[r],
		})
	}
	return rects
}
