package style

import (
	"fmt"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// ANSIBackend maps Color to a true-color terminal foreground escape. The
// palette is declared with lipgloss.Color hex strings the way
// internal/tui/styles.go's palette is, and the escape sequences themselves
// are hand-built 24-bit SGR codes the way internal/highlight/highlight.go
// builds its background sequence — lipgloss.Style.Render wraps a whole
// string, which doesn't fit the cell-by-cell, track-the-current-color
// emitter spec.md §4.7 describes.
type ANSIBackend struct {
	palette map[Color]lipgloss.Color
}

// NewANSIBackend returns the default six-color ANSI backend.
func NewANSIBackend() *ANSIBackend {
	return &ANSIBackend{
		palette: map[Color]lipgloss.Color{
			Red:     lipgloss.Color("#cc5555"),
			Green:   lipgloss.Color("#55cc6e"),
			Blue:    lipgloss.Color("#5588cc"),
			Magenta: lipgloss.Color("#cc55c3"),
			Yellow:  lipgloss.Color("#cbb84a"),
			Cyan:    lipgloss.Color("#4accc9"),
		},
	}
}

// Open returns the SGR sequence that switches the terminal to c's
// foreground color. NoColor returns the empty string — no escape is
// emitted for it.
func (b *ANSIBackend) Open(c Color) string {
	col, ok := b.palette[c]
	if !ok {
		return ""
	}
	return hexToFgSeq(string(col))
}

// Reset returns the SGR reset sequence.
func (b *ANSIBackend) Reset() string {
	return ansi.ResetStyle
}

// hexToFgSeq converts "#rrggbb" to a 24-bit ANSI foreground escape,
// mirroring internal/highlight/highlight.go's hexToBgSeq.
func hexToFgSeq(hex string) string {
	if len(hex) != 7 || hex[0] != '#' {
		return ""
	}
	r := hexByte(hex[1], hex[2])
	g := hexByte(hex[3], hex[4])
	bl := hexByte(hex[5], hex[6])
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, bl)
}

func hexByte(hi, lo byte) int {
	return hexNibble(hi)<<4 | hexNibble(lo)
}

func hexNibble(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return 0
}

// NoColorBackend emits no escapes at all — the "colors compiled out"
// variant from spec.md §6, where Color is effectively a zero-sized unit.
type NoColorBackend struct{}

func (NoColorBackend) Open(Color) string { return "" }
func (NoColorBackend) Reset() string     { return "" }
