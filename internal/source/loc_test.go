package source

import (
	"testing"

	"github.com/xonecas/snippetfmt/internal/span"
)

func TestLocSpanAndValue(t *testing.T) {
	sp := span.Empty(span.Position{Line: 1, Column: 2})
	l := NewLoc(42, sp)

	if l.Value() != 42 {
		t.Errorf("Value() = %d, want 42", l.Value())
	}
	if l.Span() != sp {
		t.Errorf("Span() = %#v, want %#v", l.Span(), sp)
	}
}

func TestLocSet(t *testing.T) {
	sp := span.Empty(span.Position{})
	l := NewLoc("old", sp)
	l.Set("new")
	if l.Value() != "new" {
		t.Errorf("Value() after Set = %q, want %q", l.Value(), "new")
	}
	if l.Span() != sp {
		t.Error("Set must not change the span")
	}
}

func TestLocStringDelegatesToValue(t *testing.T) {
	l := NewLoc("hello", span.Empty(span.Position{}))
	if l.String() != "hello" {
		t.Errorf("String() = %q, want %q", l.String(), "hello")
	}
}
