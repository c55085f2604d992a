package span

import "fmt"

// Span is a range (Start, Last, End) of positions.
//
//   - Start <= Last, Start <= End, and if the span is non-empty then
//     Last < End.
//   - End == Start iff the span is empty (Last == Start too in that case).
//   - LineCount() = Last.Line - Start.Line + 1 >= 1.
type Span struct {
	Start Position
	Last  Position
	End   Position
}

// ConstructionError reports an attempt to build a non-empty Span with
// Last >= End — a programmer error (spec.md §7 "InvalidSpanConstruction").
type ConstructionError struct {
	Start, Last, End Position
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("invalid span construction: start=%s last=%s end=%s (non-empty spans require last < end)",
		e.Start, e.Last, e.End)
}

// New builds a Span from its three positions, validating the invariants in
// the type doc. A construction violating them returns a *ConstructionError;
// callers that consider this fatal should treat it as such rather than
// silently repairing the span.
func New(start, last, end Position) (Span, error) {
	bad := &ConstructionError{Start: start, Last: last, End: end}
	if last.Less(start) {
		return Span{}, bad
	}
	if end.Less(start) {
		return Span{}, bad
	}
	if end == start {
		if last != start {
			return Span{}, bad
		}
	} else if !last.Less(end) {
		return Span{}, bad
	}
	return Span{Start: start, Last: last, End: end}, nil
}

// Empty returns the empty span [p,p,p].
func Empty(p Position) Span {
	return Span{Start: p, Last: p, End: p}
}

// OfString returns the span produced by consuming all of s (a sequence of
// runes) starting from (0,0) under m. Used by Invariant 3 (span round-trip).
func OfString(s []rune, m Metric) Span {
	sp := Empty(Position{})
	for _, c := range s {
		sp.Push(c, m)
	}
	return sp
}

// IsEmpty reports whether the span covers no characters.
func (s Span) IsEmpty() bool {
	return s.End == s.Start
}

// LineCount returns the number of lines the span's [Start,Last] range
// touches. Always >= 1.
func (s Span) LineCount() int {
	return s.Last.Line - s.Start.Line + 1
}

// Push advances End by consuming character c under metric m: Last becomes
// the old End, and End moves to End.Next(c, m). Start is unchanged.
//
// Span push law (Invariant 2): after Push, s.Start is unchanged,
// s.End == old_end.Next(c, m), and s.Last == old_end.
func (s *Span) Push(c rune, m Metric) {
	s.Last = s.End
	s.End = s.End.Next(c, m)
}

// Next returns the span [End, End] — the position immediately following s,
// ready to start accumulating the next span.
func (s Span) Next() Span {
	return Empty(s.End)
}

// Clear collapses s to [End, End] in place.
func (s *Span) Clear() {
	*s = Empty(s.End)
}

// Aligned expands s to full-line boundaries: Start's column is reset to 0
// and End moves to the beginning of the line following Last. Last is left
// as-is — without the underlying text a Span cannot know where Last's line
// actually ends, so the included range only grows on the Start side and at
// the line-exclusive End.
func (s Span) Aligned() Span {
	return Span{Start: s.Start.ResetColumn(), Last: s.Last, End: s.Last.NextLine()}
}

// Overlaps reports whether a and b share at least one position, open on
// the right: a.Start <= b.Start < a.End. Symmetric (Invariant 5).
func (a Span) Overlaps(b Span) bool {
	return overlapsOneWay(a, b) || overlapsOneWay(b, a)
}

func overlapsOneWay(a, b Span) bool {
	return !b.Start.Less(a.Start) && b.Start.Less(a.End)
}

// Includes reports whether a fully contains b: a.Start <= b.Start and
// b.End <= a.End.
func (a Span) Includes(b Span) bool {
	return !b.Start.Less(a.Start) && !a.End.Less(b.End)
}

// Union returns the smallest span covering both a and b: the minimum Start
// and whichever of (Last,End) sorts later.
func Union(a, b Span) Span {
	start := a.Start
	if b.Start.Less(start) {
		start = b.Start
	}
	last, end := a.Last, a.End
	if end.Less(b.End) {
		last, end = b.Last, b.End
	}
	return Span{Start: start, Last: last, End: end}
}

// Intersection returns the overlap of a and b: starts at max(Starts) and
// ends at b's (Last,End), collapsing to empty when a and b do not overlap.
func Intersection(a, b Span) Span {
	start := a.Start
	if start.Less(b.Start) {
		start = b.Start
	}
	if !a.Overlaps(b) {
		return Empty(start)
	}
	return Span{Start: start, Last: b.Last, End: b.End}
}

// Compare orders spans by containment first (a containing span is greater
// than what it contains), tie-breaking on Start. Returns -1, 0 or 1.
//
// Invariant 4: exactly one of a<b, a==b, a>b holds; if a.Includes(b) and
// a != b then a > b.
func (a Span) Compare(b Span) int {
	if a == b {
		return 0
	}
	if a.Includes(b) {
		return 1
	}
	if b.Includes(a) {
		return -1
	}
	return a.Start.Compare(b.Start)
}

// Less reports whether a sorts strictly before b under Compare.
func (a Span) Less(b Span) bool {
	return a.Compare(b) < 0
}

func (s Span) String() string {
	return fmt.Sprintf("from %#v to %#v", s.Start, s.End)
}
