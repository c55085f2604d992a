// Package typeset provides a span.Metric backed by a real loaded font,
// measuring glyph advances instead of assuming a fixed monospace width of
// 1 — a second concrete Metric alongside span.DefaultMetric
// (SPEC_FULL.md §3.8).
package typeset

import (
	"fmt"
	"io"
	"math"

	"github.com/go-text/typesetting/font"

	"github.com/xonecas/snippetfmt/internal/span"
)

// Metric measures character width in font-grid columns: the glyph's
// horizontal advance divided by the advance of a reference character (by
// convention '0', matching how monospace grids are usually sized),
// rounded to the nearest whole column. Fonts without a fixed-width glyph
// set still produce a usable, if approximate, column width this way.
type Metric struct {
	face       *font.Face
	refAdvance float32
	tabStop    int
}

// New loads a TTF font from r and derives a reference advance from rune
// '0', grounded on zodimo-go-skia-support/skia/impl/typeface_glyph_test.go's
// font.ParseTTF+font.NewFace pair and skia/impl/font.go's GetWidths
// upem-scaling.
func New(r io.Reader) (*Metric, error) {
	parsed, err := font.ParseTTF(r)
	if err != nil {
		return nil, fmt.Errorf("typeset: parse font: %w", err)
	}
	face := font.NewFace(parsed)

	m := &Metric{face: face, tabStop: 8}
	m.refAdvance = m.rawAdvance('0')
	if m.refAdvance <= 0 {
		m.refAdvance = float32(face.Upem()) * 0.6
	}
	return m, nil
}

func (m *Metric) rawAdvance(c rune) float32 {
	gid, ok := m.face.NominalGlyph(c)
	if !ok {
		return 0
	}
	return m.face.HorizontalAdvance(gid)
}

// CharWidth implements span.Metric: the glyph's advance in units of the
// reference character's advance, rounded to the nearest column and
// floored at 1 (a glyph never occupies zero columns, matching
// span.DefaultMetric's behavior for ordinary characters).
func (m *Metric) CharWidth(c rune) int {
	adv := m.rawAdvance(c)
	if adv <= 0 {
		return 1
	}
	cols := int(math.Round(float64(adv / m.refAdvance)))
	if cols < 1 {
		cols = 1
	}
	return cols
}

// TabStop implements span.Metric.
func (m *Metric) TabStop() int {
	return m.tabStop
}

// SetTabStop overrides the default 8-column tab stop.
func (m *Metric) SetTabStop(n int) {
	if n > 0 {
		m.tabStop = n
	}
}

var _ span.Metric = (*Metric)(nil)
