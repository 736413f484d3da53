// Package layout fits the game grid into a screen, in pixels or terminal cells.
package layout

import (
	"snake-classic/game/types"
)

// Layout places a grid on a screen. Cell sizes and offsets use the unit of
// the screen they were computed for.
type Layout struct {
	CellW, CellH     int
	OffsetX, OffsetY int
	Width, Height    int // total grid size on screen
	Fits             bool
}

// Origin returns the top-left corner of cell p.
func (l Layout) Origin(p types.Point) (int, int) {
	return l.OffsetX + p.X*l.CellW, l.OffsetY + p.Y*l.CellH
}

// Fit computes square pixel cells for a window, leaving padding around the
// grid and hudHeight pixels below it, and centers the grid horizontally.
func Fit(screenW, screenH, padding, hudHeight int, grid types.Grid) Layout {
	availableWidth := screenW - padding*2
	availableHeight := screenH - padding*3 - hudHeight
	if grid.Width <= 0 || grid.Height <= 0 || availableWidth <= 0 || availableHeight <= 0 {
		return Layout{}
	}

	cell := min(availableWidth/grid.Width, availableHeight/grid.Height)
	if cell < 1 {
		return Layout{}
	}

	l := Layout{
		CellW:  cell,
		CellH:  cell,
		Width:  cell * grid.Width,
		Height: cell * grid.Height,
		Fits:   true,
	}
	l.OffsetX = (screenW - l.Width) / 2
	l.OffsetY = padding
	return l
}

// Center places a grid with cells cellCols wide and one row high in a terminal
// of cols x rows, keeping one border cell on each side and hudRows above.
func Center(cols, rows, hudRows, cellCols int, grid types.Grid) Layout {
	l := Layout{
		CellW:  cellCols,
		CellH:  1,
		Width:  grid.Width * cellCols,
		Height: grid.Height,
	}
	needCols := l.Width + 2
	needRows := l.Height + 2 + hudRows
	if cols < needCols || rows < needRows {
		return l
	}

	l.Fits = true
	l.OffsetX = (cols-needCols)/2 + 1
	l.OffsetY = hudRows + (rows-needRows)/2 + 1
	return l
}
