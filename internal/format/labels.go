package format

import (
	"github.com/rs/zerolog/log"

	"github.com/xonecas/snippetfmt/internal/grid"
	"github.com/xonecas/snippetfmt/internal/highlight"
)

// drawLabels walks mapped in reverse and places the label of every
// highlight that closes on line, per spec.md §4.6's label placement: try
// row 1 two columns past the anchor first, then fall back to a bounded
// downward search landing directly under the anchor column, connected by a
// SpanVertical run.
func (f *Formatter) drawLabels(g *grid.CharGrid, line int, margin int, mapped []highlight.Mapped) {
	for i := len(mapped) - 1; i >= 0; i-- {
		h := mapped[i]
		if h.H.Span.Last.Line != line || !h.H.HasLabel() {
			continue
		}
		f.placeLabel(g, h, margin)
	}
}

func (f *Formatter) placeLabel(g *grid.CharGrid, h highlight.Mapped, margin int) {
	labelGrid := grid.NewLabelGrid(h.H.Label, h.H.Style)

	firstTryX := margin + h.H.Span.Last.Column + 2
	if g.DrawCharmapIfFree(firstTryX, 1, labelGrid) {
		return
	}

	anchorX := margin + h.H.Span.Last.Column
	for y := 3; y <= 2+f.labelSearchCap; y++ {
		if !g.DrawCharmapIfFree(anchorX, y, labelGrid) {
			continue
		}
		for row := 2; row < y; row++ {
			g.SetSpanVertical(anchorX, row, h.H.Style.Color())
		}
		return
	}

	log.Warn().
		Str("label", h.H.Label).
		Int("search_cap", f.labelSearchCap).
		Msg("label placement exceeded the bounded search; dropping label")
}
