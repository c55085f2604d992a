package format

import (
	"strconv"

	"github.com/xonecas/snippetfmt/internal/grid"
	"github.com/xonecas/snippetfmt/internal/highlight"
)

// drawLineNumber writes the right-aligned 1-indexed line number followed by
// " | " into columns [0, lineNumberMargin) of g's text row (spec.md §4.5
// step 2, E1).
func (f *Formatter) drawLineNumber(g *grid.CharGrid, line0 int, lineNumberMargin int) {
	if lineNumberMargin == 0 {
		return
	}
	digits := lineNumberMargin - 3
	numStr := strconv.Itoa(line0 + 1)
	pad := digits - len(numStr)

	x := 0
	for i := 0; i < pad; i++ {
		g.SetMargin(x, 0, ' ', f.marginColor)
		x++
	}
	for _, ch := range numStr {
		g.SetMargin(x, 0, ch, f.marginColor)
		x++
	}
	g.SetMargin(x, 0, ' ', f.marginColor)
	g.SetMargin(x+1, 0, '|', f.marginColor)
	g.SetMargin(x+2, 0, ' ', f.marginColor)
}

// drawElisionMarker writes dots across the line-number field of an elided
// placeholder row (spec.md §4.5 step 4, E6).
func (f *Formatter) drawElisionMarker(g *grid.CharGrid, lineNumberMargin int) {
	if lineNumberMargin == 0 {
		return
	}
	digits := lineNumberMargin - 3
	x := 0
	for i := 0; i < digits; i++ {
		g.SetMargin(x, 0, '.', f.marginColor)
		x++
	}
	g.SetMargin(x, 0, ' ', f.marginColor)
	g.SetMargin(x+1, 0, '|', f.marginColor)
	g.SetMargin(x+2, 0, ' ', f.marginColor)
}

// drawLineDecorations implements spec.md §4.6 for the single source line L:
// opening/closing markers, rail extension, and (in reverse highlight order)
// label placement.
func (f *Formatter) drawLineDecorations(g *grid.CharGrid, line int, margin int, mapped []highlight.Mapped, firstNonWhitespace *int) {
	fnw := -1
	if f.shortcut && firstNonWhitespace != nil {
		fnw = *firstNonWhitespace
	}

	shortcutFired := make([]bool, len(mapped))

	for i := range mapped {
		h := &mapped[i]
		sp := h.H.Span

		switch {
		case sp.Start.Line == line:
			h.UpdateStartNestLevel(mapped[:i], fnw)

			switch {
			case sp.Last.Line == line:
				g.DrawClosedLine(h.H.Style, h.StartNestLevel, margin+sp.Start.Column, margin+sp.Last.Column)
			case f.shortcut && h.IsMultiLine() && fnw >= 0 && fnw >= sp.Start.Column:
				x := margin - h.MarginNestLevel
				g.SetMarginMarker(x, 0, h.H.Style.Color())
				shortcutFired[i] = true
			default:
				g.DrawOpenLine(h.H.Style, h.StartNestLevel, margin-h.MarginNestLevel+1, margin+sp.Start.Column)
			}

		case sp.Last.Line == line:
			h.UpdateEndNestLevel(mapped[:i])
			g.DrawOpenLine(h.H.Style, h.EndNestLevel, margin-h.MarginNestLevel+1, margin+sp.Last.Column)
		}

		// Rail extension: paint the vertical gutter column while this
		// line sits strictly between the open and close, or the
		// line-beginning shortcut just fired.
		strictlyBetween := line > sp.Start.Line && line < sp.Last.Line
		if strictlyBetween || shortcutFired[i] {
			x := margin - h.MarginNestLevel
			from := 0
			if shortcutFired[i] {
				from = 1
			}
			to := g.Height() - 1
			if sp.Last.Line == line {
				to = h.EndNestLevel
			}
			if to >= from {
				g.DrawRail(x, from, to, h.H.Style.Color())
			}
		}
	}

	f.drawLabels(g, line, margin, mapped)
}
