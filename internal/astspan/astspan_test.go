package astspan

import (
	"context"
	"testing"
)

func TestSupported(t *testing.T) {
	if !Supported(".go") {
		t.Fatal("expected .go to be a supported extension")
	}
	if Supported(".rs") {
		t.Fatal("expected .rs to be unsupported")
	}
}

func TestParseGo(t *testing.T) {
	src := []byte("package main\n\nfunc main() {}\n")
	nodes, err := Parse(context.Background(), ".go", src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(nodes) == 0 {
		t.Fatal("expected at least one named node")
	}

	var sawFuncDecl bool
	for _, n := range nodes {
		if n.Kind == "function_declaration" {
			sawFuncDecl = true
		}
		sp := n.Loc.Span()
		if sp.End.Less(sp.Start) {
			t.Fatalf("node %s has end before start", n.Kind)
		}
	}
	if !sawFuncDecl {
		t.Fatal("expected a function_declaration node")
	}
}

func TestParseUnsupportedExtension(t *testing.T) {
	_, err := Parse(context.Background(), ".rs", []byte("fn main() {}"))
	if err == nil {
		t.Fatal("expected an error for an unsupported extension")
	}
}
