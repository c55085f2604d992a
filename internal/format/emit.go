package format

import (
	"strings"

	"github.com/xonecas/snippetfmt/internal/grid"
	"github.com/xonecas/snippetfmt/internal/style"
)

// Formatted is the final sequence of per-line CharGrids produced by
// Render — one grid per visible source line (or elided placeholder row),
// stacked top to bottom at emit time (spec.md §4.5, §4.7).
type Formatted struct {
	grids []*grid.CharGrid
}

// Grids exposes the underlying per-line grids, mostly useful for tests
// that want to inspect a specific line's decorations directly.
func (f *Formatted) Grids() []*grid.CharGrid {
	return f.grids
}

// Emit flattens every grid through backend, tracking the current color and
// collapsing runs of same-colored cells into a single open/reset pair
// (spec.md §4.7).
func (f *Formatted) Emit(backend style.Backend) string {
	var sb strings.Builder
	current := style.NoColor

	for _, g := range f.grids {
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				c := g.Get(x, y)
				if !c.IsFree() && c.Color != current {
					sb.WriteString(backend.Reset())
					if c.Color != style.NoColor {
						sb.WriteString(backend.Open(c.Color))
					}
					current = c.Color
				}
				sb.WriteRune(c.Glyph())
			}
			sb.WriteByte('\n')
		}
	}
	sb.WriteString(backend.Reset())
	return sb.String()
}

// String renders with the default ANSI backend — the fmt.Stringer form
// spec.md §6 calls "Display a Formatted".
func (f *Formatted) String() string {
	return f.Emit(style.NewANSIBackend())
}

// PlainText renders with all color escapes suppressed — useful for golden
// tests and non-terminal output.
func (f *Formatted) PlainText() string {
	return f.Emit(style.NoColorBackend{})
}
