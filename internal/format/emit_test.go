package format

import (
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/xonecas/snippetfmt/internal/grid"
	"github.com/xonecas/snippetfmt/internal/style"
)

func TestEmitOpensAndResetsOnColorChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := NewMockBackend(ctrl)

	g := grid.New()
	g.Set(0, 0, grid.Cell{Kind: grid.Text, Char: 'a', Color: style.Red})
	g.Set(1, 0, grid.Cell{Kind: grid.Text, Char: 'b', Color: style.Red})
	g.Set(2, 0, grid.Cell{Kind: grid.Text, Char: 'c', Color: style.NoColor})

	formatted := &Formatted{grids: []*grid.CharGrid{g}}

	backend.EXPECT().Reset().Return("<R>").Times(3)
	backend.EXPECT().Open(style.Red).Return("<RED>").Times(1)

	out := formatted.Emit(backend)
	want := "<R><RED>ab<R>c\n<R>"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestEmitPlainTextSuppressesColor(t *testing.T) {
	g := grid.New()
	g.Set(0, 0, grid.Cell{Kind: grid.Text, Char: 'x', Color: style.Blue})
	formatted := &Formatted{grids: []*grid.CharGrid{g}}

	out := formatted.PlainText()
	if out != "x\n" {
		t.Fatalf("got %q, want %q", out, "x\n")
	}
}
