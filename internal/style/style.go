// Package style defines the highlight Style enum and the pluggable color
// backend used to turn a Style into terminal (or other) output.
package style

// Color names the six colors a Style can carry. The zero value, NoColor,
// renders with no styling at all — the "colors compiled out" backend from
// spec.md §6.
type Color int

const (
	NoColor Color = iota
	Red
	Green
	Blue
	Magenta
	Yellow
	Cyan
)

// Kind identifies which of the built-in highlight styles a Style is, or
// whether it is a Custom one.
type Kind int

const (
	Error Kind = iota
	Warning
	Note
	Help
	Custom
)

// Style describes how a highlight is drawn: which character underlines an
// inline span, which character marks a multi-line span's endpoints, and
// which color to use.
type Style struct {
	kind        Kind
	customLine  rune
	customMark  rune
	customColor Color
}

// NewCustom builds a Custom style with the given underline char, marker
// char and color.
func NewCustom(line, marker rune, color Color) Style {
	return Style{kind: Custom, customLine: line, customMark: marker, customColor: color}
}

var (
	ErrorStyle   = Style{kind: Error}
	WarningStyle = Style{kind: Warning}
	NoteStyle    = Style{kind: Note}
	HelpStyle    = Style{kind: Help}
)

// Kind returns which built-in style this is.
func (s Style) Kind() Kind { return s.kind }

// Line returns the character used to underline a single-line highlight on
// the first decoration row. Horizontal runs on other rows, and those of
// multi-line highlights, are drawn as '_' whatever the style.
func (s Style) Line() rune {
	switch s.kind {
	case Error, Warning:
		return '^'
	case Note, Help:
		return '_'
	case Custom:
		return s.customLine
	default:
		return '^'
	}
}

// Marker returns the character used to point at a span's boundary.
func (s Style) Marker() rune {
	switch s.kind {
	case Custom:
		return s.customMark
	default:
		return '^'
	}
}

// Color returns the color associated with this style.
func (s Style) Color() Color {
	switch s.kind {
	case Error:
		return Red
	case Warning:
		return Yellow
	case Note:
		return Blue
	case Help:
		return Cyan
	case Custom:
		return s.customColor
	default:
		return NoColor
	}
}

// Backend turns a Color into whatever escape sequence (or no-op) the
// output medium needs. Two implementations are provided: ANSIBackend
// (spec.md §6, "when color support is compiled in") and NoColorBackend
// (spec.md §6, "when off, a zero-sized unit").
type Backend interface {
	// Open returns the bytes that switch the output into the given color.
	Open(c Color) string

	// Reset returns the bytes that clear any active color.
	Reset() string
}
