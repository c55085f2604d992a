// Package diffspan turns the changed regions between two revisions of a
// source file into Warning-styled highlights, a library-based replacement
// for internal/tui/gitdiff.go's `git diff --unified=0` shell-out
// (SPEC_FULL.md §3.5).
package diffspan

import (
	"github.com/hexops/gotextdiff/myers"
	gdspan "github.com/hexops/gotextdiff/span"

	"github.com/xonecas/snippetfmt/internal/highlight"
	"github.com/xonecas/snippetfmt/internal/span"
	"github.com/xonecas/snippetfmt/internal/style"
)

// Kind classifies a changed region the same three ways
// internal/tui/editor's GutterMark did: an addition, a deletion folded
// onto the line it attaches to, or a modification.
type Kind int

const (
	Add Kind = iota
	Delete
	Change
)

// Change is one diffspan.Kind over a line range in the "after" text, plus
// the Highlight it was turned into.
type Change struct {
	Kind      Kind
	Highlight highlight.Highlight
}

// Compute diffs before and after with myers.ComputeEdits (the same
// line-oriented Myers diff gopls uses) and converts each edit into a
// Warning-styled Highlight spanning the affected lines of after, plus the
// Kind classification the teacher's gitdiff.go derived from unified-diff
// hunk headers.
func Compute(before, after string) ([]Change, error) {
	edits := myers.ComputeEdits(gdspan.URIFromPath("diffspan"), before, after)
	if len(edits) == 0 {
		return nil, nil
	}

	afterLineStarts := lineStarts(after)

	var changes []Change
	afterOffset := 0
	beforeOffset := 0

	for _, e := range edits {
		start := e.Span.Start().Offset()
		end := e.Span.End().Offset()

		// Advance afterOffset by the unchanged bytes preceding this edit.
		afterOffset += start - beforeOffset
		beforeOffset = end

		removed := end - start
		added := len(e.NewText)

		var kind Kind
		switch {
		case removed == 0:
			kind = Add
		case added == 0:
			kind = Delete
		default:
			kind = Change
		}

		startLine := lineOf(afterLineStarts, afterOffset)
		endOffset := afterOffset + added
		if removed == 0 && added == 0 {
			endOffset = afterOffset
		}
		endLine := lineOf(afterLineStarts, maxInt(afterOffset, endOffset-1))
		if endLine < startLine {
			endLine = startLine
		}

		sp, err := span.New(
			span.Position{Line: startLine, Column: 0},
			span.Position{Line: endLine, Column: 0},
			span.Position{Line: endLine, Column: 1},
		)
		if err != nil {
			continue
		}

		changes = append(changes, Change{
			Kind:      kind,
			Highlight: highlight.Highlight{Span: sp, Label: kindLabel(kind), Style: style.WarningStyle},
		})

		afterOffset += added
	}

	return changes, nil
}

func kindLabel(k Kind) string {
	switch k {
	case Add:
		return "added"
	case Delete:
		return "deleted"
	default:
		return "changed"
	}
}

// lineStarts returns the byte offset each line begins at, mirroring how
// internal/source/layout.go tracks line-start offsets, applied here to the
// "after" revision instead of a live Buffer.
func lineStarts(s string) []int {
	starts := []int{0}
	for i, c := range s {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func lineOf(starts []int, offset int) int {
	lo, hi := 0, len(starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if starts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
