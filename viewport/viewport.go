// Package viewport renders a scrollable window onto a grid.Grid and
// tracks the window's scroll position, mirroring the terminal UI's
// fixed-size viewport and w/a/s/d scroll commands.
package viewport

import (
	"fmt"
	"strings"

	"sheet/grid"
)

// Size is the number of rows and columns visible at once.
const Size = 10

// View is the scroll position of a viewport over a grid.
type View struct {
	TopRow, LeftCol int
}

// ScrollUp moves the window up by one page and clamps.
func (v *View) ScrollUp(totalRows int) {
	v.TopRow -= Size
	v.ClampVertical(totalRows)
}

// ScrollDown moves the window down by one page and clamps.
func (v *View) ScrollDown(totalRows int) {
	v.TopRow += Size
	v.ClampVertical(totalRows)
}

// ScrollLeft moves the window left by one page and clamps.
func (v *View) ScrollLeft(totalCols int) {
	v.LeftCol -= Size
	v.ClampHorizontal(totalCols)
}

// ScrollRight moves the window right by one page and clamps.
func (v *View) ScrollRight(totalCols int) {
	v.LeftCol += Size
	v.ClampHorizontal(totalCols)
}

// ScrollTo jumps the window so (row, col) is its new top-left corner.
// Callers are expected to have already bounds-checked row/col against
// the grid; ScrollTo does not clamp.
func (v *View) ScrollTo(row, col int) {
	v.TopRow = row
	v.LeftCol = col
}

// ClampVertical keeps TopRow sane after a scroll.
//
// This reproduces the original's clamp order exactly, including its
// first branch: when TopRow has run past totalRows, it is walked back
// by one page rather than snapped directly to the trailing page. On a
// grid shorter than one page this walk-back can still leave TopRow
// negative or past the grid; that's an observed quirk of the original,
// not a guarantee, and is preserved rather than "fixed" (see
// DESIGN.md).
func (v *View) ClampVertical(totalRows int) {
	switch {
	case v.TopRow > totalRows:
		v.TopRow -= Size
	case v.TopRow > totalRows-Size:
		v.TopRow = totalRows - Size
	case v.TopRow < 0:
		v.TopRow = 0
	}
}

// ClampHorizontal is ClampVertical's column counterpart.
func (v *View) ClampHorizontal(totalCols int) {
	switch {
	case v.LeftCol > totalCols:
		v.LeftCol -= Size
	case v.LeftCol > totalCols-Size:
		v.LeftCol = totalCols - Size
	case v.LeftCol < 0:
		v.LeftCol = 0
	}
}

// Render draws the Size x Size window starting at v's scroll position,
// column headers first, "ERR" in place of any ERROR-status cell's
// value.
func Render(g *grid.Grid, v View) string {
	var b strings.Builder

	maxCol := v.LeftCol + Size
	if maxCol > g.Cols {
		maxCol = g.Cols
	}
	maxRow := v.TopRow + Size
	if maxRow > g.Rows {
		maxRow = g.Rows
	}

	b.WriteString("     ")
	for c := v.LeftCol; c < maxCol; c++ {
		fmt.Fprintf(&b, "%-12s", grid.ColumnLetters(c))
	}
	b.WriteByte('\n')

	for r := v.TopRow; r < maxRow; r++ {
		fmt.Fprintf(&b, "%-4d ", r+1)
		for c := v.LeftCol; c < maxCol; c++ {
			cell := g.At(r, c)
			if cell.Status == grid.ERROR {
				fmt.Fprintf(&b, "%-12s", "ERR")
			} else {
				fmt.Fprintf(&b, "%-12d", cell.Value)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
