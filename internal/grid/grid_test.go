package grid

import (
	"testing"

	"github.com/xonecas/snippetfmt/internal/style"
)

func TestNewGridIsOneByOneEmpty(t *testing.T) {
	g := New()
	if g.Width() != 1 || g.Height() != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", g.Width(), g.Height())
	}
	if !g.Get(0, 0).IsFree() {
		t.Error("initial cell should be Empty")
	}
}

func TestReserveGrowsMonotonically(t *testing.T) {
	g := New()
	g.Reserve(5, 3)
	if g.Width() != 5 || g.Height() != 3 {
		t.Fatalf("expected 5x3 after reserve, got %dx%d", g.Width(), g.Height())
	}
	// Reserving something smaller must never shrink the grid.
	g.Reserve(1, 1)
	if g.Width() != 5 || g.Height() != 3 {
		t.Fatalf("reserve must never shrink: got %dx%d", g.Width(), g.Height())
	}
}

func TestSetTextOutOfRangeGrows(t *testing.T) {
	g := New()
	g.SetText(4, 2, 'x')
	if g.Width() < 5 || g.Height() < 3 {
		t.Fatalf("grid should have grown to fit (4,2): got %dx%d", g.Width(), g.Height())
	}
	if g.Get(4, 2).Char != 'x' {
		t.Errorf("expected 'x' at (4,2), got %q", g.Get(4, 2).Char)
	}
}

func TestLabelNeverOverwritten(t *testing.T) {
	g := New()
	g.Set(0, 0, newLabel('A', style.Red))
	g.Set(0, 0, newText('B'))

	got := g.Get(0, 0)
	if got.Kind != Label || got.Char != 'A' {
		t.Errorf("Label cell must not be overwritten: got %+v", got)
	}
}

func TestIsRectFree(t *testing.T) {
	g := New()
	g.SetText(2, 2, 'x')
	if g.IsRectFree(0, 0, 3, 3) {
		t.Error("rect containing a non-empty cell should not be free")
	}
	if !g.IsRectFree(0, 0, 2, 2) {
		t.Error("rect excluding the non-empty cell should be free")
	}
}

func TestDrawCharmapSkipsEmptyCells(t *testing.T) {
	dst := New()
	dst.SetText(1, 1, 'Z')

	other := New()
	other.Reserve(2, 2)
	other.SetText(0, 0, 'A')
	// (1,1) of other stays Empty and must not clobber dst's 'Z'.

	dst.DrawCharmap(0, 0, other)
	if dst.Get(0, 0).Char != 'A' {
		t.Errorf("expected 'A' stamped at (0,0), got %q", dst.Get(0, 0).Char)
	}
	if dst.Get(1, 1).Char != 'Z' {
		t.Errorf("Empty source cell must not overwrite destination: got %q", dst.Get(1, 1).Char)
	}
}

func TestDrawClosedLineSingleLineUsesUnderline(t *testing.T) {
	g := New()
	g.DrawClosedLine(style.ErrorStyle, 1, 2, 6)

	if g.Get(2, 1).Kind != SpanMarker {
		t.Errorf("expected SpanMarker at start, got %v", g.Get(2, 1).Kind)
	}
	if g.Get(6, 1).Kind != SpanMarker {
		t.Errorf("expected SpanMarker at end, got %v", g.Get(6, 1).Kind)
	}
	if g.Get(4, 1).Kind != SpanUnderline {
		t.Errorf("expected SpanUnderline in between on row 1, got %v", g.Get(4, 1).Kind)
	}
}

func TestDrawClosedLineOtherRowUsesHorizontal(t *testing.T) {
	g := New()
	g.DrawClosedLine(style.ErrorStyle, 2, 2, 6)

	if g.Get(4, 2).Kind != SpanHorizontal {
		t.Errorf("expected SpanHorizontal in between off row 1, got %v", g.Get(4, 2).Kind)
	}
}

func TestAlignOnResizeExtendsRail(t *testing.T) {
	g := New()
	g.Reserve(3, 1)
	g.Set(1, 0, newSpanMargin(style.Blue))

	g.Reserve(3, 2)
	got := g.Get(1, 1)
	if got.Kind != SpanMargin {
		t.Errorf("expected rail to extend downward on grow, got %v", got.Kind)
	}
}
