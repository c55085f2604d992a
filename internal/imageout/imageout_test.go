package imageout

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/xonecas/snippetfmt/internal/grid"
	"github.com/xonecas/snippetfmt/internal/style"
)

func TestRenderProducesDecodablePNG(t *testing.T) {
	g := grid.New()
	g.Set(0, 0, grid.Cell{Kind: grid.Text, Char: 'A', Color: style.Red})
	g.Set(1, 0, grid.Cell{Kind: grid.Text, Char: 'B', Color: style.NoColor})

	var buf bytes.Buffer
	if err := Render(&buf, []*grid.CharGrid{g}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != g.Width()*cellWidth {
		t.Fatalf("got width %d, want %d", bounds.Dx(), g.Width()*cellWidth)
	}
	if bounds.Dy() != cellHeight {
		t.Fatalf("got height %d, want %d", bounds.Dy(), cellHeight)
	}
}

func TestRenderEmptyGridsProducesMinimalImage(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if img.Bounds().Dx() != cellWidth || img.Bounds().Dy() != cellHeight {
		t.Fatalf("got bounds %v, want a single 1x1 cell image", img.Bounds())
	}
}
