package format

import (
	"io"

	"github.com/xonecas/snippetfmt/internal/grid"
	"github.com/xonecas/snippetfmt/internal/highlight"
	"github.com/xonecas/snippetfmt/internal/source"
	"github.com/xonecas/snippetfmt/internal/span"
)

// Render walks input once, front to back, over the bounding span and
// produces the final Formatted result (spec.md §4.5).
func (f *Formatter) Render(input source.CharSource, bound span.Span, metric span.Metric) (*Formatted, error) {
	mapped := highlight.Map(f.highlights)
	nestMargin := highlight.NestMargin(mapped)

	lastVisible, haveVisible := f.lastVisibleLine(bound)
	lineNumberMargin := f.lineNumberMargin(lastVisible, haveVisible)
	margin := lineNumberMargin + nestMargin

	important := f.importantLines(bound)
	visible := func(l int) bool { return f.isVisible(l, important) }

	st := &renderState{
		formatter:        f,
		mapped:           mapped,
		margin:           margin,
		lineNumberMargin: lineNumberMargin,
		visible:          visible,
	}
	st.beginLine(bound.Start.Line)

	pos := bound.Start
	for {
		if pos.Compare(bound.Last) > 0 {
			break
		}
		c, err := input.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}

		switch c {
		case '\n':
			st.closeLine()
			st.beginLine(pos.Line + 1)
		case '\t':
			// contributes nothing to the grid; position still advances below.
		default:
			if st.curVisible {
				if st.firstNonWhitespace == nil && !isBlank(c) {
					col := pos.Column
					st.firstNonWhitespace = &col
				}
				st.cur.SetText(margin+pos.Column, 0, c)
			}
		}
		pos = pos.Next(c, metric)
	}
	st.closeLine()
	if st.gapActive {
		st.pushElisionRow()
	}

	return &Formatted{grids: st.grids}, nil
}

// isBlank reports whether c should be skipped when looking for the first
// non-whitespace column of a line (spec.md §4.5 "first_non_whitespace").
func isBlank(c rune) bool {
	return c == ' ' || c == '\t' || c < 0x20 || (c >= 0x7f && c <= 0x9f)
}

// lastVisibleLine computes spec.md §4.5 step 2's last_visible_line. The
// second return value is always true: the bound's last line, or the last
// highlight's closing line, always gives a line to size the margin from.
// An empty bound sizes it from line 0, which gives the one-digit width 4.
func (f *Formatter) lastVisibleLine(bound span.Span) (int, bool) {
	if f.viewboxRadius == nil {
		return bound.Last.Line, true
	}
	if len(f.highlights) == 0 {
		return bound.Last.Line, true
	}
	last := 0
	for _, h := range f.highlights {
		if h.Span.Last.Line > last {
			last = h.Span.Last.Line
		}
	}
	return last + *f.viewboxRadius, true
}

// lineNumberMargin computes floor(log10(last_visible_line+1))+4, or 4 when
// have is false (spec.md §9 open question on the degenerate log10 case).
// It is 0 when line numbers are hidden (spec.md §4.5 step 2).
func (f *Formatter) lineNumberMargin(lastVisible int, have bool) int {
	if !f.showLineNumbers {
		return 0
	}
	if !have {
		return 4
	}
	return digitsOf(lastVisible+1) + 3
}

func digitsOf(n int) int {
	if n < 1 {
		return 1
	}
	d := 0
	for n > 0 {
		d++
		n /= 10
	}
	return d
}

// importantLines returns the sorted set of distinct lines that open or
// close a highlight (spec.md §4.5 step 4). A nil viewboxRadius means "all
// lines important" and importantLines is never consulted by isVisible in
// that case.
func (f *Formatter) importantLines(bound span.Span) []int {
	seen := make(map[int]bool)
	var out []int
	add := func(l int) {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	for _, h := range f.highlights {
		add(h.Span.Start.Line)
		if h.Span.Last.Line != h.Span.Start.Line {
			add(h.Span.Last.Line)
		}
	}
	if len(out) == 0 {
		add(bound.Start.Line)
	}
	// simple insertion sort; important-line counts are small in practice
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// isVisible reports whether line l is within the viewbox radius of some
// important line, or unconditionally true when no viewbox is set.
func (f *Formatter) isVisible(l int, important []int) bool {
	if f.viewboxRadius == nil {
		return true
	}
	r := *f.viewboxRadius
	for _, c := range important {
		d := l - c
		if d < 0 {
			d = -d
		}
		if d <= r {
			return true
		}
	}
	return false
}

// renderState carries the mutable scanning state threaded through Render:
// the line currently being built, the gap tracking used to collapse an
// elided stretch into one placeholder row, and the accumulated grids.
type renderState struct {
	formatter *Formatter
	mapped    []highlight.Mapped
	margin    int
	lineNumberMargin int
	visible   func(int) bool

	grids []*grid.CharGrid

	curLine            int
	curVisible         bool
	cur                *grid.CharGrid
	firstNonWhitespace *int

	gapActive bool
	gapStart  int
	gapEnd    int
}

func (st *renderState) beginLine(line int) {
	st.curLine = line
	st.firstNonWhitespace = nil
	nowVisible := st.visible(line)

	if nowVisible && st.gapActive {
		st.pushElisionRow()
		st.gapActive = false
	}
	if !nowVisible {
		if !st.gapActive {
			st.gapActive = true
			st.gapStart = line
		}
		st.gapEnd = line
		st.cur = nil
		st.curVisible = false
		return
	}

	g := grid.New()
	st.formatter.drawLineNumber(g, line, st.lineNumberMargin)
	st.cur = g
	st.curVisible = true
}

func (st *renderState) closeLine() {
	if !st.curVisible || st.cur == nil {
		return
	}
	st.formatter.drawLineDecorations(st.cur, st.curLine, st.margin, st.mapped, st.firstNonWhitespace)
	st.grids = append(st.grids, st.cur)
	st.cur = nil
}

// pushElisionRow emits the single placeholder row for the gap
// [gapStart,gapEnd], carrying forward the rail of any highlight whose span
// straddles the entire gap (spec.md §4.5 step 4, E6).
func (st *renderState) pushElisionRow() {
	g := grid.New()
	st.formatter.drawElisionMarker(g, st.lineNumberMargin)
	for _, m := range st.mapped {
		if m.H.Span.Start.Line < st.gapStart && m.H.Span.Last.Line > st.gapEnd {
			x := st.margin - m.MarginNestLevel
			g.DrawRail(x, 0, 0, m.H.Style.Color())
		}
	}
	st.grids = append(st.grids, g)
}
