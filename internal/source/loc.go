package source

import (
	"fmt"

	"github.com/xonecas/snippetfmt/internal/span"
)

// Loc wraps an AST node with the Span it was parsed from. Useful for
// carrying source location alongside a value through a parser or
// highlighter without threading a second return value everywhere.
type Loc[T any] struct {
	span  span.Span
	value T
}

// NewLoc associates a span with a value.
func NewLoc[T any](value T, sp span.Span) Loc[T] {
	return Loc[T]{span: sp, value: value}
}

// Span returns the location of the wrapped value.
func (l Loc[T]) Span() span.Span { return l.span }

// Value returns the wrapped value.
func (l Loc[T]) Value() T { return l.value }

// Set replaces the wrapped value, keeping the span.
func (l *Loc[T]) Set(v T) { l.value = v }

// String delegates to the wrapped value when it implements fmt.Stringer,
// otherwise falls back to the default formatting of the value.
func (l Loc[T]) String() string {
	if s, ok := any(l.value).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", l.value)
}

// GoString renders "<value>:<span>", mirroring the original Loc<T>'s Debug
// impl.
func (l Loc[T]) GoString() string {
	return fmt.Sprintf("%#v:%s", l.value, l.span)
}
