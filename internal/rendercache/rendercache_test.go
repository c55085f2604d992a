package rendercache

import (
	"testing"
	"time"

	"github.com/xonecas/snippetfmt/internal/highlight"
	"github.com/xonecas/snippetfmt/internal/span"
	"github.com/xonecas/snippetfmt/internal/style"
)

func openTest(t *testing.T) *Cache {
	t.Helper()
	c, err := Open("", 16, time.Hour)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestGetSetRoundTrip(t *testing.T) {
	c := openTest(t)
	c.Set("abc", "rendered output")

	got, ok := c.Get("abc")
	if !ok {
		t.Fatal("expected a hit after Set")
	}
	if got != "rendered output" {
		t.Fatalf("got %q", got)
	}
}

func TestGetMiss(t *testing.T) {
	c := openTest(t)
	if _, ok := c.Get("does-not-exist"); ok {
		t.Fatal("expected a miss for an unknown fingerprint")
	}
}

func TestNilCacheIsSafe(t *testing.T) {
	var c *Cache
	if _, ok := c.Get("x"); ok {
		t.Fatal("expected a nil cache to always miss")
	}
	c.Set("x", "y")
	if err := c.Close(); err != nil {
		t.Fatalf("Close on nil cache: %v", err)
	}
}

func TestFingerprintStableAndSensitiveToHighlights(t *testing.T) {
	text := "package main\n"
	h1 := []highlight.Highlight{{Span: span.Empty(span.Position{}), Style: style.NoteStyle}}
	h2 := []highlight.Highlight{{Span: span.Empty(span.Position{}), Label: "x", Style: style.NoteStyle}}

	if Fingerprint(text, h1) != Fingerprint(text, h1) {
		t.Fatal("expected Fingerprint to be deterministic for identical input")
	}
	if Fingerprint(text, h1) == Fingerprint(text, h2) {
		t.Fatal("expected Fingerprint to differ when a highlight's label differs")
	}
}

func TestDurableTierSurvivesHotEviction(t *testing.T) {
	c, err := Open("", 1, time.Hour)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	c.Set("first", "first output")
	c.Set("second", "second output") // evicts "first" from the 1-entry hot tier

	got, ok := c.Get("first")
	if !ok {
		t.Fatal("expected the durable tier to still have \"first\"")
	}
	if got != "first output" {
		t.Fatalf("got %q", got)
	}
}
