package grammarian

import (
	"reflect"
	"testing"
)

func TestGrammarBuiltinsInstalled(t *testing.T) {
	g, err := NewGrammar("", nil, "Start")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"Integer", "Float", "DQString", "Spacing"} {
		if _, ok := g.Get(name); !ok {
			t.Errorf("built-in %q not installed", name)
		}
	}
}

func TestGrammarSetOverridesBuiltin(t *testing.T) {
	g, err := NewGrammar("", nil, "Start")
	if err != nil {
		t.Fatal(err)
	}
	g.Set("Spacing", Spacing(","))
	g.Set("Start", g.Nonterminal("Spacing"))
	if end := g.Scan(",,x", 0); end != 2 {
		t.Errorf("overridden Spacing not honored: Scan = %d, want 2", end)
	}
}

func TestGrammarReadAndMatch(t *testing.T) {
	g, err := NewGrammar(`
		Start = "a" "b" "c"
	`, nil, "Start")
	if err != nil {
		t.Fatal(err)
	}
	if end := g.Scan("abc", 0); end != 3 {
		t.Errorf("Scan(abc) = %d, want 3", end)
	}
	if end := g.Scan("abx", 0); end != NOMATCH {
		t.Errorf("Scan(abx) = %d, want NOMATCH", end)
	}
}

func TestGrammarRecursiveRule(t *testing.T) {
	g, err := NewGrammar(`
		Start = "(" (Start)? ")"
	`, nil, "Start")
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range []struct {
		text string
		end  int
	}{
		{"()", 2},
		{"(())", 4},
		{"((()))", 6},
		{"(()", NOMATCH},
	} {
		if got := g.Scan(d.text, 0); got != d.end {
			t.Errorf("Scan(%q) = %d, want %d", d.text, got, d.end)
		}
	}
}

func TestGrammarUpdateActions(t *testing.T) {
	g, err := NewGrammar(`
		Start = Integer
	`, nil, "Start")
	if err != nil {
		t.Fatal(err)
	}
	err = g.UpdateActions(map[string]interface{}{
		"Integer": Action(func(v interface{}) interface{} { return len(v.(string)) }),
	})
	if err != nil {
		t.Fatal(err)
	}
	m := g.Match("12345", 0)
	// Start is a bare alias of Integer, so Set installed it wrapped in
	// Group: the action's result arrives as a singleton list.
	want := []interface{}{5}
	if m == nil || !reflect.DeepEqual(m.Value(), want) {
		t.Fatalf("Value() = %#v, want %#v", m, want)
	}
}

func TestGrammarUpdateActionsUnknownRule(t *testing.T) {
	g, err := NewGrammar(`Start = "x"`, nil, "Start")
	if err != nil {
		t.Fatal(err)
	}
	err = g.UpdateActions(map[string]interface{}{"Nope": Const(1)})
	if err == nil {
		t.Fatal("expected an error for an unknown rule name")
	}
	if _, ok := err.(*StructuralError); !ok {
		t.Errorf("err = %#v, want *StructuralError", err)
	}
}

func TestGrammarUpdateActionsNotCallable(t *testing.T) {
	g, err := NewGrammar(`Start = "x"`, nil, "Start")
	if err != nil {
		t.Fatal(err)
	}
	err = g.UpdateActions(map[string]interface{}{"Start": 42})
	if err == nil {
		t.Fatal("expected an error for a non-callable action")
	}
}

func TestGrammarInvalidDefinition(t *testing.T) {
	_, err := NewGrammar(`this is not = a valid !! grammar <-<-<-`, nil, "Start")
	if err == nil {
		t.Fatal("expected an error for invalid grammar text")
	}
}

func TestGrammarAliasRuleCapturesThroughNonterminal(t *testing.T) {
	// Grammar.Set auto-wraps a bare-Nonterminal rule in Group, so an alias
	// rule still captures the value of the rule it points to.
	g, err := NewGrammar("", nil, "Alias")
	if err != nil {
		t.Fatal(err)
	}
	g.Set("Num", Group(Integer()).WithAction(func(v interface{}) interface{} { return v }))
	g.Set("Alias", g.Nonterminal("Num"))

	m := g.Match("7", 0)
	if m == nil {
		t.Fatal("expected match")
	}
	got, ok := m.Value().([]interface{})
	if !ok || len(got) != 1 || got[0] != "7" {
		t.Errorf("Value() = %#v, want a singleton list wrapping \"7\"", m.Value())
	}
}

func TestGrammarString(t *testing.T) {
	g, err := NewGrammar(`Start = "a" "b"`, nil, "Start")
	if err != nil {
		t.Fatal(err)
	}
	s := g.String()
	if s == "" {
		t.Fatal("expected a non-empty rendering")
	}
}

func TestNewPEGSyntax(t *testing.T) {
	g, err := NewPEG(`
		Start <- "a" / "b"
	`, nil, "Start")
	if err != nil {
		t.Fatal(err)
	}
	if end := g.Scan("a", 0); end != 1 {
		t.Errorf("Scan(a) = %d, want 1", end)
	}
	if end := g.Scan("b", 0); end != 1 {
		t.Errorf("Scan(b) = %d, want 1", end)
	}
	if end := g.Scan("c", 0); end != NOMATCH {
		t.Errorf("Scan(c) = %d, want NOMATCH", end)
	}
}

func TestGrammarMatchValueSequenceAndGroupNesting(t *testing.T) {
	// Sequence(Group, Group) flattens into one flat list; Group(Sequence(
	// Group, Group)) wraps that same flat list in one more singleton list.
	g, err := NewGrammar(`
		Digit  = [0-9]
		Flat   = (Digit) (Digit)
		Nested = (Flat)
	`, nil, "Flat")
	if err != nil {
		t.Fatal(err)
	}
	m := g.Match("12", 0)
	if m == nil {
		t.Fatal("expected match")
	}
	wantFlat := []interface{}{"1", "2"}
	if !reflect.DeepEqual(m.Value(), wantFlat) {
		t.Errorf("Flat value = %#v, want %#v", m.Value(), wantFlat)
	}

	g.Start = "Nested"
	m2 := g.Match("12", 0)
	if m2 == nil {
		t.Fatal("expected match")
	}
	wantNested := []interface{}{wantFlat}
	if !reflect.DeepEqual(m2.Value(), wantNested) {
		t.Errorf("Nested value = %#v, want %#v", m2.Value(), wantNested)
	}
}
