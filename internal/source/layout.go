package source

import (
	"unicode/utf8"

	"github.com/xonecas/snippetfmt/internal/span"
)

// Layout tracks the byte offset of each line in a UTF-8 string, so a
// Position can be mapped back to a byte index into the original text. This
// supplements spec.md's core cursor model (which is deliberately text-free)
// with the byte-index bridge original_source/src/layout.rs provides for
// slicing the underlying source once rendering needs the raw bytes again —
// e.g. tree-sitter span extraction or diff hunk slicing.
type Layout struct {
	lines  []int // byte offset of the first byte of each line
	sp     span.Span
	metric span.Metric
	len    int
}

// NewLayout returns an empty Layout using the given metric.
func NewLayout(m span.Metric) *Layout {
	return &Layout{lines: []int{0}, metric: m}
}

// LayoutFromString builds a Layout by consuming all of s.
func LayoutFromString(s string, m span.Metric) *Layout {
	l := NewLayout(m)
	for _, c := range s {
		l.Push(c)
	}
	return l
}

// Span returns the accumulated span of the text pushed so far.
func (l *Layout) Span() span.Span { return l.sp }

// Push extends the layout with one more character, advancing the span and
// recording a new line-start offset on '\n'.
func (l *Layout) Push(c rune) {
	l.sp.Push(c, l.metric)
	l.len += utf8.RuneLen(c)
	if c == '\n' {
		l.lines = append(l.lines, l.len)
	}
}

// ByteIndex maps position to a byte offset into s, assuming s is the exact
// text the layout was built from. Returns false if position does not land
// on a character boundary within s (e.g. past the end of its line).
func (l *Layout) ByteIndex(s string, position span.Position) (int, bool) {
	if position.Line < 0 || position.Line >= len(l.lines) {
		return 0, false
	}
	lineOffset := l.lines[position.Line]
	column := 0
	i := lineOffset
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if column == position.Column {
			return i, true
		}
		if r == '\n' {
			return 0, false
		}
		column += l.metric.CharWidth(r)
		i += size
	}
	if column == position.Column {
		return i, true
	}
	return 0, false
}

// SpanSlice returns the substring of s covered by sp, clamping to the
// string bounds when either endpoint doesn't resolve to a byte index.
func (l *Layout) SpanSlice(s string, sp span.Span) string {
	start, ok := l.ByteIndex(s, sp.Start)
	if !ok {
		start = 0
	}
	end, ok := l.ByteIndex(s, sp.End)
	if !ok {
		end = len(s)
	}
	return s[start:end]
}
