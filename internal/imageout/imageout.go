// Package imageout rasterizes a Formatted result to a PNG, a second
// output emitter alongside the text/ANSI one, demonstrating that the
// CharGrid model is output-format-agnostic (SPEC_FULL.md §3.9).
package imageout

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/xonecas/snippetfmt/internal/grid"
	"github.com/xonecas/snippetfmt/internal/style"
)

// cellWidth and cellHeight are the pixel dimensions of one grid cell under
// basicfont.Face7x13, the same 7x13 bitmap font golang.org/x/image ships
// for label-free diagnostic rendering.
const (
	cellWidth  = 7
	cellHeight = 13
	baseline   = 10
)

// palette mirrors style.ANSIBackend's hex palette so the PNG and terminal
// renders of the same Formatted agree on color.
var palette = map[style.Color]color.RGBA{
	style.Red:     {0xcc, 0x55, 0x55, 0xff},
	style.Green:   {0x55, 0xcc, 0x6e, 0xff},
	style.Blue:    {0x55, 0x88, 0xcc, 0xff},
	style.Magenta: {0xcc, 0x55, 0xc3, 0xff},
	style.Yellow:  {0xcb, 0xb8, 0x4a, 0xff},
	style.Cyan:    {0x4a, 0xcc, 0xc9, 0xff},
}

var background = color.RGBA{0x1e, 0x1e, 0x1e, 0xff}
var foreground = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}

// Render flattens grids into a single RGBA image, one cellWidth x
// cellHeight tile per Cell, and writes it as a PNG to w.
func Render(w io.Writer, grids []*grid.CharGrid) error {
	width, height := 0, 0
	for _, g := range grids {
		if g.Width() > width {
			width = g.Width()
		}
		height += g.Height()
	}
	if width == 0 {
		width = 1
	}
	if height == 0 {
		height = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, width*cellWidth, height*cellHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	row := 0
	for _, g := range grids {
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				c := g.Get(x, y)
				if c.IsFree() {
					continue
				}
				fg := foreground
				if col, ok := palette[c.Color]; ok {
					fg = col
				}
				drawGlyph(img, x*cellWidth, (row+y)*cellHeight, c.Glyph(), fg)
			}
		}
		row += g.Height()
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("imageout: encode png: %w", err)
	}
	return nil
}

func drawGlyph(img *image.RGBA, x, y int, r rune, fg color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{C: fg},
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y+baseline),
	}
	d.DrawString(string(r))
}
