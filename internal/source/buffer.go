package source

import (
	"errors"
	"io"
	"sync"

	"github.com/xonecas/snippetfmt/internal/span"
)

// Buffer is the random-access lazy source buffer collaborator described in
// spec.md §6: it wraps a CharSource, fills up on demand, and exposes
// random access by Position. Its contract (spec.md §6):
//
//   - characters are produced lazily, line by line;
//   - the buffer never shrinks;
//   - positions before Span().Start are unreachable (OutOfOrderPosition,
//     spec.md §7 — reported as "not present", not an error);
//   - positions past the end return (0, false, nil) unless the underlying
//     source errored, in which case the buffered error is surfaced once
//     and then (0, false, nil) thereafter.
//
// Buffer hides its mutable reading state behind a mutex so callers can
// treat it as a read-only handle under single-threaded use (spec.md §9
// "Interior mutability of the source buffer").
type Buffer struct {
	mu sync.Mutex

	input   CharSource
	metric  span.Metric
	data    []rune
	lines   []int // byte/rune index of the first character of each line
	sp      span.Span
	err     error
	errSent bool
}

// NewBuffer creates a new empty buffer starting at the given position.
func NewBuffer(input CharSource, start span.Position, m span.Metric) *Buffer {
	return &Buffer{
		input:  input,
		metric: m,
		lines:  []int{0},
		sp:     span.Empty(start),
	}
}

// Span returns the span of the entire buffered data so far.
func (b *Buffer) Span() span.Span {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sp
}

// readLine reads the next source line into the buffer. Returns true if a
// new line was added, false if the source is exhausted or already in an
// error state. Caller must hold b.mu.
func (b *Buffer) readLine() bool {
	if b.err != nil {
		return false
	}
	line := b.sp.End.Line
	for line == b.sp.End.Line {
		c, err := b.input.Next()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				b.err = err
			}
			return false
		}
		b.data = append(b.data, c)
		b.sp.Push(c, b.metric)
	}
	b.lines = append(b.lines, len(b.data))
	return true
}

// indexAt returns the rune index of the character at pos, reading ahead as
// needed. ok is false when pos precedes the buffer start, or the source
// ended before reaching pos.
func (b *Buffer) indexAt(pos span.Position) (idx int, ok bool, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if pos.Less(b.sp.Start) {
		return 0, false, nil
	}
	for !pos.Less(b.sp.End) && b.readLine() {
	}
	if !pos.Less(b.sp.End) {
		if b.err != nil && !b.errSent {
			b.errSent = true
			return 0, false, b.err
		}
		return 0, false, nil
	}

	relLine := pos.Line - b.sp.Start.Line
	if relLine < 0 || relLine >= len(b.lines) {
		return 0, false, nil
	}
	i := b.lines[relLine]
	cursor := span.Position{Line: pos.Line, Column: 0}
	for cursor.Less(pos) {
		if i >= len(b.data) {
			return 0, false, nil
		}
		cursor = cursor.Next(b.data[i], b.metric)
		i++
	}
	if cursor == pos {
		return i, true, nil
	}
	return 0, false, nil
}

// At returns the character at pos, reading ahead as needed.
func (b *Buffer) At(pos span.Position) (rune, bool, error) {
	idx, ok, err := b.indexAt(pos)
	if err != nil || !ok {
		return 0, false, err
	}
	return b.Get(idx)
}

// Get returns the character at rune index i, reading ahead as needed.
func (b *Buffer) Get(i int) (rune, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i >= len(b.data) && b.readLine() {
	}
	if i >= len(b.data) {
		if b.err != nil && !b.errSent {
			b.errSent = true
			return 0, false, b.err
		}
		return 0, false, nil
	}
	return b.data[i], true, nil
}

// Iter returns a fallible CharSource over the buffer's characters,
// starting from the buffer's start position, reading ahead from the
// underlying source once the buffer is exhausted.
func (b *Buffer) Iter() CharSource {
	return b.IterSpan(span.Span{Start: b.Span().Start, End: span.End()})
}

// IterFrom returns a fallible CharSource starting at pos (clamped to the
// buffer start if pos precedes it).
func (b *Buffer) IterFrom(pos span.Position) CharSource {
	return b.IterSpan(span.Span{Start: pos, End: span.End()})
}

// IterSpan returns a fallible CharSource over the given span, clamped to
// the buffer's start.
func (b *Buffer) IterSpan(s span.Span) CharSource {
	start := b.Span().Start
	pos := s.Start
	if pos.Less(start) {
		pos = start
	}
	idx, ok, err := b.indexAt(pos)
	return &bufferIter{buf: b, idx: idx, idxOK: ok, idxErr: err, pos: pos, end: s.End}
}

type bufferIter struct {
	buf    *Buffer
	idx    int
	idxOK  bool
	idxErr error
	pos    span.Position
	end    span.Position
	done   bool
}

func (it *bufferIter) Next() (rune, error) {
	if it.done {
		return 0, io.EOF
	}
	if it.idxErr != nil {
		it.done = true
		return 0, it.idxErr
	}
	if !it.idxOK || !it.pos.Less(it.end) {
		it.done = true
		return 0, io.EOF
	}
	c, ok, err := it.buf.Get(it.idx)
	if err != nil {
		it.done = true
		return 0, err
	}
	if !ok {
		it.done = true
		return 0, io.EOF
	}
	it.pos = it.pos.Next(c, it.buf.metric)
	it.idx++
	return c, nil
}
