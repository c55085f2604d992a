// Package format implements the Formatter and its render pipeline: mapping
// highlights to nest levels, scanning the source stream, drawing per-line
// decorations and labels, optional viewbox elision, and the final output
// emitter (spec.md §4.5–§4.7).
package format

import (
	"github.com/xonecas/snippetfmt/internal/highlight"
	"github.com/xonecas/snippetfmt/internal/span"
	"github.com/xonecas/snippetfmt/internal/style"
)

// Formatter accumulates highlights and rendering toggles, then produces a
// Formatted result from a character stream (spec.md §4.5, §6 "Formatter
// public surface").
type Formatter struct {
	highlights []highlight.Highlight

	marginColor     style.Color
	showLineNumbers bool
	viewboxRadius   *int // nil means "show all lines"
	shortcut        bool

	// labelSearchCap bounds the downward label-placement search (spec.md
	// §7, §9 "Termination of label placement"). Exceeding it logs a
	// warning and gives up on that one label rather than looping forever.
	labelSearchCap int
}

// New returns a Formatter with line numbers shown, the line-beginning
// shortcut enabled, no viewbox (every line rendered), and no margin color.
func New() *Formatter {
	return &Formatter{
		showLineNumbers: true,
		shortcut:        true,
		labelSearchCap:  256,
	}
}

// NewWithMarginColor is New with a margin (line-number gutter) color set.
func NewWithMarginColor(c style.Color) *Formatter {
	f := New()
	f.marginColor = c
	return f
}

// AddHighlight inserts a new highlight, keeping the list sorted by
// span.Compare so that containing spans land on outer gutter columns
// (spec.md §4.2, §6 "Add highlight").
func (f *Formatter) AddHighlight(sp span.Span, label string, sty style.Style) {
	h := highlight.Highlight{Span: sp, Label: label, Style: sty}

	i := 0
	for i < len(f.highlights) && f.highlights[i].Span.Less(sp) {
		i++
	}
	f.highlights = append(f.highlights, highlight.Highlight{})
	copy(f.highlights[i+1:], f.highlights[i:])
	f.highlights[i] = h
}

// SetShowLineNumbers toggles the line-number gutter.
func (f *Formatter) SetShowLineNumbers(show bool) {
	f.showLineNumbers = show
}

// SetViewboxRadius turns on elision: lines farther than radius from every
// important line collapse into a single placeholder row.
func (f *Formatter) SetViewboxRadius(radius int) {
	r := radius
	f.viewboxRadius = &r
}

// ShowAllLines disables the viewbox — every line in the bounding span is
// rendered.
func (f *Formatter) ShowAllLines() {
	f.viewboxRadius = nil
}

// SetShortcut toggles the line-beginning shortcut (spec.md §4.4, §4.6).
func (f *Formatter) SetShortcut(enabled bool) {
	f.shortcut = enabled
}

// SetLabelSearchCap overrides the default bound on label placement probes
// (spec.md §7's "a few hundred rows" recommendation; default 256).
func (f *Formatter) SetLabelSearchCap(cap int) {
	if cap > 0 {
		f.labelSearchCap = cap
	}
}
