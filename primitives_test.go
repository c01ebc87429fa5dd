package grammarian

import "testing"

type scanTestCase struct {
	text string
	pos  int
	end  int // NOMATCH (-1) for no match
	sc   Scanner
}

func runScanTestCase(t *testing.T, d scanTestCase) {
	t.Helper()
	got := d.sc.Scan(d.text, d.pos)
	if got != d.end {
		t.Errorf("%s.Scan(%q, %d) = %d, want %d", d.sc.String(), d.text, d.pos, got, d.end)
	}
}

func TestDot(t *testing.T) {
	data := []scanTestCase{
		{"", 0, NOMATCH, Dot()},
		{"a", 0, 1, Dot()},
		{"中文", 0, 1, Dot()},
		{"ab", 1, 2, Dot()},
		{"ab", 2, NOMATCH, Dot()},
	}
	for _, d := range data {
		runScanTestCase(t, d)
	}
}

func TestLiteral(t *testing.T) {
	data := []scanTestCase{
		{"", 0, NOMATCH, Literal("abc")},
		{"abc", 0, 3, Literal("abc")},
		{"abcd", 0, 3, Literal("abc")},
		{"xabc", 1, 4, Literal("abc")},
		{"ab", 0, NOMATCH, Literal("abc")},
		{"", 0, 0, Literal("")},
	}
	for _, d := range data {
		runScanTestCase(t, d)
	}
}

func TestCharacterClass(t *testing.T) {
	digits := CharacterClass("0-9")
	alnumDash := CharacterClass("a-zA-Z0-9_-")
	data := []scanTestCase{
		{"5", 0, 1, digits},
		{"a", 0, NOMATCH, digits},
		{"", 0, NOMATCH, digits},
		{"_", 0, 1, alnumDash},
		{"-", 0, 1, alnumDash},
		{"!", 0, NOMATCH, alnumDash},
	}
	for _, d := range data {
		runScanTestCase(t, d)
	}

	// a trailing dash or a 1-2 char tail can never form a range.
	trailingDash := CharacterClass("ab-")
	for _, d := range []scanTestCase{
		{"a", 0, 1, trailingDash},
		{"b", 0, 1, trailingDash},
		{"-", 0, 1, trailingDash},
		{"c", 0, NOMATCH, trailingDash},
	} {
		runScanTestCase(t, d)
	}
}

func TestSpacing(t *testing.T) {
	ws := Spacing()
	data := []scanTestCase{
		{"", 0, 0, ws},
		{"   a", 0, 3, ws},
		{"\t\n\r a", 0, 4, ws},
		{"a", 0, 0, ws},
	}
	for _, d := range data {
		runScanTestCase(t, d)
	}

	custom := Spacing(",;")
	if got := custom.Scan(",,;x", 0); got != 3 {
		t.Errorf("custom Spacing().Scan = %d, want 3", got)
	}
}

func TestInteger(t *testing.T) {
	data := []scanTestCase{
		{"123", 0, 3, Integer()},
		{"-123", 0, 4, Integer()},
		{"+123", 0, 4, Integer()},
		{"-", 0, NOMATCH, Integer()},
		{"", 0, NOMATCH, Integer()},
		{"abc", 0, NOMATCH, Integer()},
		{"12.5", 0, 2, Integer()},
	}
	for _, d := range data {
		runScanTestCase(t, d)
	}
}

func TestFloat(t *testing.T) {
	data := []scanTestCase{
		{"1.5", 0, 3, Float()},
		{".5", 0, 2, Float()},
		{"1.", 0, 2, Float()},
		{"1e10", 0, 4, Float()},
		{"1.5e-10", 0, 7, Float()},
		{"-0.14e3", 0, 7, Float()},
		{"1", 0, NOMATCH, Float()},
		{"", 0, NOMATCH, Float()},
		{".", 0, NOMATCH, Float()},
		{"-", 0, NOMATCH, Float()},
		{"e10", 0, NOMATCH, Float()},
	}
	for _, d := range data {
		runScanTestCase(t, d)
	}
}

func TestBoundedString(t *testing.T) {
	dq := BoundedString(`"`, `"`)
	data := []scanTestCase{
		{`"hi"`, 0, 4, dq},
		{`"a\"b"`, 0, 6, dq},
		{`"unterminated`, 0, NOMATCH, dq},
		{`"a\`, 0, NOMATCH, dq},
		{"nope", 0, NOMATCH, dq},
	}
	for _, d := range data {
		runScanTestCase(t, d)
	}

	bracketed := BoundedString("[", "]")
	if got := bracketed.Scan("[x\\]y]", 0); got != 6 {
		t.Errorf("bracketed.Scan = %d, want 6", got)
	}
}

func TestPrimitiveMatchValueIsRawSubstring(t *testing.T) {
	m := Literal("abc").Match("abcdef", 0)
	if m == nil {
		t.Fatal("expected match")
	}
	if m.Value() != "abc" {
		t.Errorf("Value() = %v, want %q", m.Value(), "abc")
	}
	if m.Group() != "abc" {
		t.Errorf("Group() = %v, want %q", m.Group(), "abc")
	}
	if start, end := m.Span(); start != 0 || end != 3 {
		t.Errorf("Span() = (%d, %d), want (0, 3)", start, end)
	}
}
