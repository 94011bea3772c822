package tui

import (
	"github.com/SeamusWaldron/gocube_sim/internal/cube"
)

// The sticker net is a 9x12 grid of cells:
//
//	    U
//	L F R B
//	    D
//
// Each face occupies a 3x3 block. Cells outside the six blocks are empty.
const (
	netRows = 9
	netCols = 12

	cellWidth  = 3 // Characters per sticker
	blockWidth = 3*cellWidth + 1
)

var netLayout = [3][4]int{
	{-1, int(cube.FaceU), -1, -1},
	{int(cube.FaceL), int(cube.FaceF), int(cube.FaceR), int(cube.FaceB)},
	{-1, int(cube.FaceD), -1, -1},
}

// cell is a position in the net grid.
type cell struct {
	row, col int
}

// facelet returns the face and facelet coordinates shown at c.
func (c cell) facelet() (f cube.Face, row, col int, ok bool) {
	if c.row < 0 || c.row >= netRows || c.col < 0 || c.col >= netCols {
		return 0, 0, 0, false
	}
	idx := netLayout[c.row/3][c.col/3]
	if idx < 0 {
		return 0, 0, 0, false
	}
	return cube.Face(idx), c.row % 3, c.col % 3, true
}

// cellFor returns the grid cell of facelet (row, col) on face f.
func cellFor(f cube.Face, row, col int) cell {
	for br, line := range netLayout {
		for bc, idx := range line {
			if idx == int(f) {
				return cell{row: br*3 + row, col: bc*3 + col}
			}
		}
	}
	return cell{row: -1, col: -1}
}

// step moves c one cell in direction (dr, dc), jumping over empty parts of
// the grid. It returns c unchanged if there is no sticker that way.
func (c cell) step(dr, dc int) cell {
	next := cell{row: c.row + dr, col: c.col + dc}
	for next.row >= 0 && next.row < netRows && next.col >= 0 && next.col < netCols {
		if _, _, _, ok := next.facelet(); ok {
			return next
		}
		next.row += dr
		next.col += dc
	}
	return c
}

// cellAt maps a screen position relative to the top-left corner of the net
// to a grid cell. ok is false for the gaps between faces and anything
// outside the grid.
func cellAt(x, y int) (cell, bool) {
	if x < 0 || y < 0 || y >= netRows {
		return cell{}, false
	}
	block, within := x/blockWidth, x%blockWidth
	if block >= 4 || within >= 3*cellWidth {
		return cell{}, false
	}
	c := cell{row: y, col: block*3 + within/cellWidth}
	if _, _, _, ok := c.facelet(); !ok {
		return cell{}, false
	}
	return c, true
}
