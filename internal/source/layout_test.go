package source

import (
	"testing"

	"github.com/xonecas/snippetfmt/internal/span"
)

func TestLayoutByteIndexSingleLine(t *testing.T) {
	m := span.NewDefaultMetric()
	str := "Hello World!"
	l := LayoutFromString(str, m)

	idx, ok := l.ByteIndex(str, span.Position{Line: 0, Column: 2})
	if !ok || idx != 2 {
		t.Fatalf("ByteIndex(0,2) = %d, %v, want 2, true", idx, ok)
	}
}

func TestLayoutByteIndexAcrossLines(t *testing.T) {
	m := span.NewDefaultMetric()
	str := "Hello\nWorld!"
	l := LayoutFromString(str, m)

	idx, ok := l.ByteIndex(str, span.Position{Line: 1, Column: 0})
	if !ok || idx != 6 {
		t.Fatalf("ByteIndex(1,0) = %d, %v, want 6, true", idx, ok)
	}
}

func TestLayoutByteIndexThirdLine(t *testing.T) {
	m := span.NewDefaultMetric()
	str := "Hel\nlo\nWorld!"
	l := LayoutFromString(str, m)

	idx, ok := l.ByteIndex(str, span.Position{Line: 2, Column: 0})
	if !ok || idx != 7 {
		t.Fatalf("ByteIndex(2,0) = %d, %v, want 7, true", idx, ok)
	}
}

func TestLayoutByteIndexOutOfBounds(t *testing.T) {
	m := span.NewDefaultMetric()
	str := "Hel\nlo\nWorld!"
	l := LayoutFromString(str, m)

	if _, ok := l.ByteIndex(str, span.Position{Line: 3, Column: 0}); ok {
		t.Error("line past the end should not resolve")
	}
	if _, ok := l.ByteIndex(str, span.Position{Line: 1, Column: 3}); ok {
		t.Error("column past a line's newline should not resolve")
	}
}

func TestLayoutSpanSliceWholeText(t *testing.T) {
	m := span.NewDefaultMetric()
	str := "Hello\nWorld!"
	l := LayoutFromString(str, m)

	if got := l.SpanSlice(str, l.Span()); got != str {
		t.Errorf("SpanSlice(full span) = %q, want %q", got, str)
	}
}

func TestLayoutSpanSliceSubrange(t *testing.T) {
	m := span.NewDefaultMetric()
	str := "Hel\nlo\nWorld!"
	l := LayoutFromString(str, m)

	sp := span.Span{
		Start: span.Position{Line: 0, Column: 0},
		Last:  span.Position{Line: 0, Column: 3},
		End:   span.Position{Line: 1, Column: 0},
	}
	if got := l.SpanSlice(str, sp); got != "Hel\n" {
		t.Errorf("SpanSlice = %q, want %q", got, "Hel\n")
	}

	sp2 := span.Span{
		Start: span.Position{Line: 2, Column: 0},
		Last:  span.Position{Line: 2, Column: 5},
		End:   span.Position{Line: 2, Column: 6},
	}
	if got := l.SpanSlice(str, sp2); got != "World!" {
		t.Errorf("SpanSlice = %q, want %q", got, "World!")
	}
}
