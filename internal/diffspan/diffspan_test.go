package diffspan

import "testing"

func TestComputeNoChanges(t *testing.T) {
	changes, err := Compute("same\n", "same\n")
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(changes) != 0 {
		t.Fatalf("got %d changes, want 0", len(changes))
	}
}

func TestComputeDetectsAddedLine(t *testing.T) {
	before := "one\ntwo\n"
	after := "one\ntwo\nthree\n"

	changes, err := Compute(before, after)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(changes) == 0 {
		t.Fatal("expected at least one change")
	}

	var sawAdd bool
	for _, c := range changes {
		if c.Kind == Add {
			sawAdd = true
		}
		if c.Highlight.Label == "" {
			t.Fatal("expected every change to carry a label")
		}
	}
	if !sawAdd {
		t.Fatal("expected an Add-classified change for the appended line")
	}
}

func TestComputeDetectsChangedLine(t *testing.T) {
	before := "hello world\n"
	after := "hello there\n"

	changes, err := Compute(before, after)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(changes) == 0 {
		t.Fatal("expected at least one change")
	}
}
