// Package highlight defines the Highlight and MappedHighlight types and the
// nest-level solver that decides where in the gutter a multi-line
// highlight's rail lives (spec.md §3, §4.4).
package highlight

import (
	"github.com/xonecas/snippetfmt/internal/span"
	"github.com/xonecas/snippetfmt/internal/style"
)

// Highlight is a span, an optional label, and a style. Immutable after
// insertion into a Formatter.
type Highlight struct {
	Span  span.Span
	Label string
	Style style.Style
}

// HasLabel reports whether the highlight carries a non-empty label.
func (h Highlight) HasLabel() bool {
	return h.Label != ""
}

// Mapped enriches a Highlight with the three nest levels the solver
// computes. MarginNestLevel is fixed at construction time (it only
// depends on predecessors); StartNestLevel and EndNestLevel start at 0
// and are updated lazily, the first time that endpoint's line is visited
// (spec.md §3 "MappedHighlight").
type Mapped struct {
	H               Highlight
	MarginNestLevel int
	StartNestLevel  int
	EndNestLevel    int

	startSet bool
	endSet   bool
}

// IsMultiLine reports whether the underlying span covers more than one
// line.
func (m *Mapped) IsMultiLine() bool {
	return m.H.Span.LineCount() > 1
}

// Map builds the ordered []Mapped for a sorted slice of Highlights,
// computing each one's MarginNestLevel against its predecessors (spec.md
// §4.4). Highlights must already be in Span order (the same order
// Formatter.AddHighlight maintains).
func Map(highlights []Highlight) []Mapped {
	out := make([]Mapped, len(highlights))
	for i, h := range highlights {
		out[i] = Mapped{H: h, MarginNestLevel: marginNestLevel(h, out[:i])}
	}
	return out
}

// marginNestLevel computes spec.md §4.4's margin_nest_level: 0 for
// single-line spans; otherwise 2 + the max MarginNestLevel among
// predecessors whose span overlaps h's, floored at 2.
func marginNestLevel(h Highlight, predecessors []Mapped) int {
	if h.Span.LineCount() <= 1 {
		return 0
	}
	level := 2
	for _, p := range predecessors {
		if p.H.Span.Overlaps(h.Span) {
			if cand := p.MarginNestLevel + 2; cand > level {
				level = cand
			}
		}
	}
	return level
}

// NestMargin returns the running maximum MarginNestLevel across all
// mapped highlights — the total width of the rail gutter (spec.md §4.4).
func NestMargin(mapped []Mapped) int {
	max := 0
	for _, m := range mapped {
		if m.MarginNestLevel > max {
			max = m.MarginNestLevel
		}
	}
	return max
}

// UpdateStartNestLevel computes and stores spec.md §4.4's
// start_nest_level for m, evaluated when m.H.Span.Start.Line is being
// drawn. firstNonWhitespace is the first non-whitespace column of the
// current line, or -1 if undefined (an elision row, or the shortcut
// feature disabled). Returns whether the "line-beginning shortcut" fired.
func (m *Mapped) UpdateStartNestLevel(predecessors []Mapped, firstNonWhitespace int) (shortcut bool) {
	if m.startSet {
		return false
	}
	m.startSet = true

	if m.IsMultiLine() && firstNonWhitespace >= 0 && firstNonWhitespace >= m.H.Span.Start.Column {
		m.StartNestLevel = 0
		return true
	}

	level := 1
	line := m.H.Span.Start.Line
	for _, p := range predecessors {
		shares := p.H.Span.Start.Line == line || p.H.Span.Last.Line == line
		if !shares {
			continue
		}
		if !(p.H.Span.Overlaps(m.H.Span) || p.IsMultiLine()) {
			continue
		}
		if cand := p.StartNestLevel + 1; cand > level {
			level = cand
		}
	}
	m.StartNestLevel = level
	return false
}

// UpdateEndNestLevel computes and stores spec.md §4.4's end_nest_level for
// m, evaluated when m.H.Span.Last.Line is being drawn.
func (m *Mapped) UpdateEndNestLevel(predecessors []Mapped) {
	if m.endSet {
		return
	}
	m.endSet = true

	level := 1
	line := m.H.Span.Last.Line
	for _, p := range predecessors {
		sharesClosingLine := p.H.Span.Start.Line == line || p.H.Span.Last.Line == line
		if !sharesClosingLine || !p.H.Span.Overlaps(m.H.Span) {
			continue
		}
		if cand := p.EndNestLevel + 1; cand > level {
			level = cand
		}
	}
	m.EndNestLevel = level
}

// OpensOnSingleLine reports whether m's span both opens and closes on the
// same line — the spec.md §9 open question ("when a multi-line
// highlight's start.line == last.line ... prefer the closed-line path").
func (m *Mapped) OpensOnSingleLine() bool {
	return m.H.Span.Start.Line == m.H.Span.Last.Line
}
