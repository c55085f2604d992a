package grid

import "github.com/xonecas/snippetfmt/internal/style"

// CharGrid is a mutable, auto-growing row-major 2D grid of Cells. The
// initial grid is 1x1 Empty (spec.md §3).
type CharGrid struct {
	width, height int
	cells         []Cell
}

// New returns a fresh 1x1 Empty grid.
func New() *CharGrid {
	return &CharGrid{width: 1, height: 1, cells: []Cell{empty}}
}

// Width returns the current grid width.
func (g *CharGrid) Width() int { return g.width }

// Height returns the current grid height.
func (g *CharGrid) Height() int { return g.height }

func (g *CharGrid) index(x, y int) int { return y*g.width + x }

// Get returns the cell at (x,y). An out-of-range coordinate yields Empty
// rather than panicking.
func (g *CharGrid) Get(x, y int) Cell {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return empty
	}
	return g.cells[g.index(x, y)]
}

// Reserve grows the grid to at least max(w,Width()) x max(h,Height()),
// applying the align-on-resize rule exactly once (spec.md §4.3).
func (g *CharGrid) Reserve(w, h int) {
	newWidth := g.width
	if w > newWidth {
		newWidth = w
	}
	newHeight := g.height
	if h > newHeight {
		newHeight = h
	}
	if newWidth == g.width && newHeight == g.height {
		return
	}

	if newWidth != g.width {
		g.regrowWidth(newWidth)
	}
	if newHeight > g.height {
		g.growHeight(newHeight)
	}
}

// regrowWidth widens the grid, remapping existing content: a cell that was
// at (x,y) under the old width is relocated to (x,y) under the new width —
// row-major reflow, never shrinking.
func (g *CharGrid) regrowWidth(newWidth int) {
	newCells := make([]Cell, newWidth*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			newCells[y*newWidth+x] = g.cells[g.index(x, y)]
		}
	}
	g.width = newWidth
	g.cells = newCells
}

// growHeight appends rows below the current last row, synthesizing each
// new cell from the row immediately above it per the align rule (spec.md
// §4.3). Rows are synthesized one at a time so that a multi-row grow
// chains correctly off the most recently synthesized row, matching
// LineBuffer.extend in the grounding Rust implementation.
func (g *CharGrid) growHeight(newHeight int) {
	for g.height < newHeight {
		prevRow := g.height - 1
		newRow := make([]Cell, g.width)
		for x := 0; x < g.width; x++ {
			newRow[x] = g.alignedCell(x, prevRow)
		}
		g.cells = append(g.cells, newRow...)
		g.height++
	}
}

// alignedCell computes the synthesized cell for column x of a new row,
// given the row directly above it (prevRow), per spec.md §4.3.
func (g *CharGrid) alignedCell(x, prevRow int) Cell {
	above := g.Get(x, prevRow)
	aboveRight := g.Get(x+1, prevRow)
	aboveLeft := empty
	if x > 0 {
		aboveLeft = g.Get(x-1, prevRow)
	}

	switch {
	case above.Kind == SpanMargin && aboveRight.Kind == SpanHorizontal &&
		(x == 0 || aboveLeft.Kind != SpanHorizontal):
		return empty
	case above.Kind == SpanMargin || above.Kind == SpanMarginMarker:
		return newSpanMargin(above.Color)
	case above.Kind == Empty && aboveRight.Kind == SpanHorizontal:
		return newSpanMargin(aboveRight.Color)
	case above.Kind == Margin && above.Char == '|':
		return newMargin('|', above.Color)
	default:
		return empty
	}
}

// Set writes c at (x,y), growing the grid as needed. A cell already
// holding a Label is never overwritten (spec.md §3, Invariant 7).
func (g *CharGrid) Set(x, y int, c Cell) {
	g.Reserve(x+1, y+1)
	idx := g.index(x, y)
	existing := g.cells[idx]
	if existing.Kind == Label {
		return
	}
	g.cells[idx] = blend(existing, c)
}

// SetText places Text(ch) at (x,y).
func (g *CharGrid) SetText(x, y int, ch rune) {
	g.Set(x, y, newText(ch))
}

// SetMargin places a line-number gutter Margin(ch,color) at (x,y).
func (g *CharGrid) SetMargin(x, y int, ch rune, c style.Color) {
	g.Set(x, y, newMargin(ch, c))
}

// IsRectFree reports whether every cell in the rectangle [x,x+w) x
// [y,y+h) is Empty. Read-only — does not grow the grid.
func (g *CharGrid) IsRectFree(x, y, w, h int) bool {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			if !g.Get(i, j).IsFree() {
				return false
			}
		}
	}
	return true
}

// DrawCharmap stamps other at offset (x,y), growing as needed. Empty
// cells of other are left untouched in the destination so labels with
// blank padding don't clobber existing decorations.
func (g *CharGrid) DrawCharmap(x, y int, other *CharGrid) {
	for j := 0; j < other.Height(); j++ {
		for i := 0; i < other.Width(); i++ {
			c := other.Get(i, j)
			if c.IsFree() {
				continue
			}
			g.Set(x+i, y+j, c)
		}
	}
}

// DrawCharmapIfFree attempts to stamp other at (x,y), first probing a
// rectangle padded by one column to the left (if x>0) and one row above
// (if y>1) for emptiness. Returns whether the stamp was placed.
func (g *CharGrid) DrawCharmapIfFree(x, y int, other *CharGrid) bool {
	padLeft := 0
	if x > 0 {
		padLeft = 1
	}
	padTop := 0
	if y > 1 {
		padTop = 1
	}
	rectX, rectY := x-padLeft, y-padTop
	rectW, rectH := other.Width()+padLeft, other.Height()+padTop

	if !g.IsRectFree(rectX, rectY, rectW, rectH) {
		return false
	}
	g.DrawCharmap(x, y, other)
	return true
}

// DrawMarker implements the spec.md §4.3 "column drop": starting at row 1
// and scanning down to row y (inclusive) at column x, it places a
// SpanMarker at the first row that is free or carries a SpanHorizontal
// run, and turns every row strictly above that placement into
// SpanVertical — but only where that row was Empty or SpanHorizontal.
func (g *CharGrid) DrawMarker(sty style.Style, y, x int) {
	placement := y
	for row := 1; row <= y; row++ {
		cell := g.Get(x, row)
		if cell.IsFree() || cell.IsSpanHorizontal() {
			placement = row
			break
		}
	}
	for row := 1; row < placement; row++ {
		cell := g.Get(x, row)
		if cell.IsFree() || cell.IsSpanHorizontal() {
			g.Set(x, row, newSpanVertical(sty.Color()))
		}
	}
	g.Set(x, placement, newSpanMarker(sty.Marker(), sty.Color()))
}

// DrawOpenLine lays a SpanHorizontal run on row y from start to end-1
// wherever the cell is not SpanMargin (preserving the rail gutter), then
// drops a marker at (end, y) via DrawMarker.
func (g *CharGrid) DrawOpenLine(sty style.Style, y, start, end int) {
	for x := start; x < end; x++ {
		if g.Get(x, y).IsSpanMargin() {
			continue
		}
		g.Set(x, y, newSpanHorizontal(sty.Color()))
	}
	g.DrawMarker(sty, y, end)
}

// DrawClosedLine places SpanMarker at start and end on row y, and fills
// between them with SpanUnderline (row 1, single-line highlights) or
// SpanHorizontal (any other row).
func (g *CharGrid) DrawClosedLine(sty style.Style, y, start, end int) {
	g.Set(start, y, newSpanMarker(sty.Marker(), sty.Color()))
	g.Set(end, y, newSpanMarker(sty.Marker(), sty.Color()))
	for x := start + 1; x < end; x++ {
		if y == 1 {
			g.Set(x, y, newSpanUnderline(sty.Line(), sty.Color()))
		} else {
			g.Set(x, y, newSpanHorizontal(sty.Color()))
		}
	}
}

// DrawRail paints a SpanMargin column at x from row fromRow down to and
// including row toRow — the "rail extension" of spec.md §4.6.
func (g *CharGrid) DrawRail(x int, fromRow, toRow int, c style.Color) {
	for y := fromRow; y <= toRow; y++ {
		g.Set(x, y, newSpanMargin(c))
	}
}

// SetMarginMarker places a SpanMarginMarker ('/') rail fork at (x,y).
func (g *CharGrid) SetMarginMarker(x, y int, c style.Color) {
	g.Set(x, y, newSpanMarginMarker(c))
}

// SetSpanVertical places a bare SpanVertical ('|') connector at (x,y) — the
// short run linking a deflected label back to its anchor column (spec.md
// §4.6).
func (g *CharGrid) SetSpanVertical(x, y int, c style.Color) {
	g.Set(x, y, newSpanVertical(c))
}

// NewLabelGrid lays out a label string into a small grid, one Label cell
// per character. Newlines and tabs in the label are skipped, so the grid
// is always a single row.
func NewLabelGrid(label string, sty style.Style) *CharGrid {
	g := New()
	x, y := 0, 0
	for _, r := range label {
		if r == '\n' || r == '\t' {
			continue
		}
		g.Set(x, y, newLabel(r, sty.Color()))
		x++
	}
	return g
}
