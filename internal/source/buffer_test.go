package source

import (
	"io"
	"testing"

	"github.com/xonecas/snippetfmt/internal/span"
)

func TestBufferGetReadsAhead(t *testing.T) {
	m := span.NewDefaultMetric()
	buf := NewBuffer(FromString("abc"), span.Position{}, m)

	for i, want := range []rune{'a', 'b', 'c'} {
		c, ok, err := buf.Get(i)
		if err != nil || !ok {
			t.Fatalf("Get(%d): ok=%v err=%v", i, ok, err)
		}
		if c != want {
			t.Errorf("Get(%d) = %q, want %q", i, c, want)
		}
	}

	_, ok, err := buf.Get(3)
	if err != nil {
		t.Fatalf("unexpected error past end: %v", err)
	}
	if ok {
		t.Error("Get past the end of the source should report not-ok")
	}
}

func TestBufferAtResolvesLineStarts(t *testing.T) {
	m := span.NewDefaultMetric()
	buf := NewBuffer(FromString("ab\ncd"), span.Position{}, m)

	c, ok, err := buf.At(span.Position{Line: 1, Column: 0})
	if err != nil || !ok {
		t.Fatalf("At(1,0): ok=%v err=%v", ok, err)
	}
	if c != 'c' {
		t.Errorf("At(1,0) = %q, want 'c'", c)
	}
}

func TestBufferPositionBeforeStartIsNotPresent(t *testing.T) {
	m := span.NewDefaultMetric()
	buf := NewBuffer(FromString("abc"), span.Position{Line: 0, Column: 1}, m)

	_, ok, err := buf.At(span.Position{Line: 0, Column: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("a position before the buffer's start span must be reported as not present, not fetched")
	}
}

type erroringSource struct {
	runes []rune
	pos   int
	err   error
}

func (s *erroringSource) Next() (rune, error) {
	if s.pos >= len(s.runes) {
		return 0, s.err
	}
	r := s.runes[s.pos]
	s.pos++
	return r, nil
}

func TestBufferSurfacesUnderlyingErrorOnce(t *testing.T) {
	m := span.NewDefaultMetric()
	boom := io.ErrUnexpectedEOF
	buf := NewBuffer(&erroringSource{runes: []rune("ab"), err: boom}, span.Position{}, m)

	if _, ok, err := buf.Get(0); err != nil || !ok {
		t.Fatalf("Get(0): ok=%v err=%v", ok, err)
	}
	if _, ok, err := buf.Get(1); err != nil || !ok {
		t.Fatalf("Get(1): ok=%v err=%v", ok, err)
	}

	_, ok, err := buf.Get(2)
	if ok {
		t.Fatal("Get past the erroring point should not be ok")
	}
	if err != boom {
		t.Fatalf("expected the underlying error surfaced once, got %v", err)
	}

	_, ok, err = buf.Get(2)
	if ok || err != nil {
		t.Fatalf("error must be surfaced only once: ok=%v err=%v", ok, err)
	}
}

func TestBufferIterSpan(t *testing.T) {
	m := span.NewDefaultMetric()
	buf := NewBuffer(FromString("abcdef"), span.Position{}, m)

	it := buf.IterSpan(span.Span{
		Start: span.Position{Line: 0, Column: 1},
		End:   span.Position{Line: 0, Column: 4},
	})

	var got []rune
	for {
		c, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, c)
	}
	if string(got) != "bcd" {
		t.Errorf("IterSpan = %q, want %q", string(got), "bcd")
	}
}
