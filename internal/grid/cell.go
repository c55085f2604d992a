// Package grid implements the growable 2D cell grid that highlight
// decorations are drawn into, and the primitive drawing operations used by
// the formatter (spec.md §3, §4.3).
package grid

import "github.com/xonecas/snippetfmt/internal/style"

// Kind tags which variant a Cell holds.
type Kind int

const (
	Empty Kind = iota
	Text
	Margin
	Label
	SpanMarker
	SpanUnderline
	SpanVertical
	SpanHorizontal
	SpanMargin
	SpanMarginMarker
)

// Cell is a tagged variant holding one piece of grid content. Pattern-match
// on Kind rather than treating this as a polymorphic type — spec.md §9
// "Cell tagging vs. subclassing".
type Cell struct {
	Kind  Kind
	Char  rune
	Color style.Color
}

// empty is the zero-value Cell, used to fill newly reserved space.
var empty = Cell{Kind: Empty}

// IsFree reports whether the cell is Empty.
func (c Cell) IsFree() bool {
	return c.Kind == Empty
}

// IsSpanHorizontal reports whether the cell is a SpanHorizontal run.
func (c Cell) IsSpanHorizontal() bool {
	return c.Kind == SpanHorizontal
}

// IsSpanMargin reports whether the cell is a SpanMargin or
// SpanMarginMarker rail cell.
func (c Cell) IsSpanMargin() bool {
	return c.Kind == SpanMargin || c.Kind == SpanMarginMarker
}

// IsLabel reports whether the cell holds label text.
func (c Cell) IsLabel() bool {
	return c.Kind == Label
}

// Glyph returns the displayed character for this cell: a space for Empty,
// the carried rune for Text/Margin/Label/SpanUnderline/SpanMarker, '|' for
// SpanVertical/SpanMargin, '_' for SpanHorizontal, '/' for
// SpanMarginMarker.
func (c Cell) Glyph() rune {
	switch c.Kind {
	case Empty:
		return ' '
	case Text, Margin, Label, SpanUnderline, SpanMarker:
		return c.Char
	case SpanVertical, SpanMargin:
		return '|'
	case SpanHorizontal:
		return '_'
	case SpanMarginMarker:
		return '/'
	default:
		return ' '
	}
}

func newText(c rune) Cell                    { return Cell{Kind: Text, Char: c} }
func newMargin(c rune, col style.Color) Cell { return Cell{Kind: Margin, Char: c, Color: col} }
func newLabel(c rune, col style.Color) Cell  { return Cell{Kind: Label, Char: c, Color: col} }
func newSpanMarker(c rune, col style.Color) Cell {
	return Cell{Kind: SpanMarker, Char: c, Color: col}
}
func newSpanUnderline(c rune, col style.Color) Cell {
	return Cell{Kind: SpanUnderline, Char: c, Color: col}
}
func newSpanVertical(col style.Color) Cell       { return Cell{Kind: SpanVertical, Color: col} }
func newSpanHorizontal(col style.Color) Cell     { return Cell{Kind: SpanHorizontal, Color: col} }
func newSpanMargin(col style.Color) Cell         { return Cell{Kind: SpanMargin, Color: col} }
func newSpanMarginMarker(col style.Color) Cell   { return Cell{Kind: SpanMarginMarker, Color: col} }
