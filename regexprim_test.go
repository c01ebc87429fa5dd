package grammarian

import "testing"

func TestRegex(t *testing.T) {
	data := []scanTestCase{
		{"123abc", 0, 3, Regex(`\d+`)},
		{"abc", 0, NOMATCH, Regex(`\d+`)},
		{"foobar", 0, 6, Regex(`foo(bar)?`)},
		{"foo", 0, 3, Regex(`foo(bar)?`)},
		{"xfoobar", 1, 7, Regex(`foo(bar)?`)},
	}
	for _, d := range data {
		runScanTestCase(t, d)
	}
}

func TestRegexAnchoredAtPos(t *testing.T) {
	// The match must begin exactly at pos, never search ahead for one.
	sc := Regex(`abc`)
	if got := sc.Scan("xabc", 0); got != NOMATCH {
		t.Errorf("Scan should not search past pos, got %d", got)
	}
	if got := sc.Scan("xabc", 1); got != 4 {
		t.Errorf("Scan(xabc, 1) = %d, want 4", got)
	}
}

func TestRegexMatchValue(t *testing.T) {
	m := Regex(`[a-z]+`).Match("hello world", 0)
	if m == nil {
		t.Fatal("expected match")
	}
	if m.Value() != "hello" {
		t.Errorf("Value() = %v, want hello", m.Value())
	}
}
