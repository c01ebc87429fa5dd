package grammarian

import "strings"

// Grammar is a named, possibly-recursive mapping from rule name to
// Scanner. Its Scan and Match delegate to whichever Scanner is bound to
// Start. A Grammar is not itself a Scanner value; another Grammar's rules
// refer to one of its rules through Nonterminal(g, name).
type Grammar struct {
	rules  map[string]Scanner
	ir     map[string]*node
	order  []string
	reader Scanner
	Start  string
}

// NewGrammar builds a Grammar. If definition is non-empty it is parsed
// with Read using the extended surface syntax; if actions is non-nil it
// is applied with UpdateActions. Every Grammar auto-installs Integer,
// Float, DQString, and Spacing as ordinary, overridable nonterminals
// before definition is read, so a grammar's rule text can reference them
// directly and override any of them with its own rule of the same name.
func NewGrammar(definition string, actions map[string]interface{}, start string) (*Grammar, error) {
	g := newBareGrammar(start)
	if definition != "" {
		if err := g.Read(definition); err != nil {
			return nil, err
		}
	}
	if actions != nil {
		if err := g.UpdateActions(actions); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// NewPEG builds a Grammar whose Read uses the strict PEG surface syntax
// (rule separator "<-", ordered choice "/", ~"..."/~'...' regex literals,
// no "{}" or "|") instead of the extended syntax NewGrammar uses.
func NewPEG(definition string, actions map[string]interface{}, start string) (*Grammar, error) {
	g := newBareGrammar(start)
	g.reader = pegGrammarReader
	if definition != "" {
		if err := g.Read(definition); err != nil {
			return nil, err
		}
	}
	if actions != nil {
		if err := g.UpdateActions(actions); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func newBareGrammar(start string) *Grammar {
	if start == "" {
		start = "Start"
	}
	g := &Grammar{
		rules:  make(map[string]Scanner),
		ir:     make(map[string]*node),
		reader: extendedGrammarReader,
		Start:  start,
	}
	g.Set("Integer", Integer())
	g.Set("Float", Float())
	g.Set("DQString", BoundedString(`"`, `"`))
	g.Set("Spacing", Spacing())
	return g
}

// Set binds identifier to scanner, installing it (or replacing an
// existing binding, e.g. one of the built-ins) directly, bypassing Read.
// A bare Nonterminal bound this way is wrapped in Group first, so that a
// rule written as a plain alias for another rule still captures (spec.md
// §9's resolution for "what happens when a Nonterminal has an action but
// no Group around it").
func (g *Grammar) Set(identifier string, scanner Scanner) {
	if _, isNonterminal := scanner.m.(*nonterminalNode); isNonterminal {
		scanner = Group(scanner)
	}
	if _, exists := g.rules[identifier]; !exists {
		g.order = append(g.order, identifier)
	}
	g.rules[identifier] = scanner
}

// Get returns the Scanner bound to identifier and whether it exists.
func (g *Grammar) Get(identifier string) (Scanner, bool) {
	sc, ok := g.rules[identifier]
	return sc, ok
}

// Nonterminal returns a weak reference to identifier within g, resolved
// at every scan/match call rather than once. See the Nonterminal
// package function.
func (g *Grammar) Nonterminal(identifier string) Scanner {
	return Nonterminal(g, identifier)
}

// Scan recognizes against g's Start rule.
func (g *Grammar) Scan(s string, pos int) int {
	sc, ok := g.rules[g.Start]
	if !ok {
		panic(errUnboundNonterminal(g.Start))
	}
	return sc.Scan(s, pos)
}

// Match recognizes and builds a value against g's Start rule.
func (g *Grammar) Match(s string, pos int) *Match {
	sc, ok := g.rules[g.Start]
	if !ok {
		panic(errUnboundNonterminal(g.Start))
	}
	return sc.Match(s, pos)
}

// Read parses definition with this Grammar's surface syntax (extended,
// unless this Grammar was built with NewPEG) and installs each rule it
// describes, replacing any existing binding of the same name (including
// a built-in).
func (g *Grammar) Read(definition string) error {
	m := g.reader.Match(definition, 0)
	if m == nil {
		return errInvalidDefinition(definition)
	}
	rules, ok := m.Value().(map[string]*node)
	if !ok {
		return errInvalidDefinition(definition)
	}
	for identifier, n := range rules {
		g.ir[identifier] = n
	}
	for identifier, n := range rules {
		sc, err := compile(g, n)
		if err != nil {
			return err
		}
		g.Set(identifier, sc)
	}
	return nil
}

// UpdateActions attaches an Action to each named rule. Every value in
// actions must be assertable to Action (func(interface{}) interface{});
// one that isn't is a StructuralError, this package's rendering of the
// source library's "ValueError when an action is not callable".
func (g *Grammar) UpdateActions(actions map[string]interface{}) error {
	type pair struct {
		sc Scanner
		a  Action
	}
	pairs := make([]pair, 0, len(actions))
	for identifier, raw := range actions {
		a, ok := raw.(Action)
		if !ok {
			if fn, ok2 := raw.(func(interface{}) interface{}); ok2 {
				a = Action(fn)
			} else {
				return errActionNotCallable(identifier)
			}
		}
		sc, ok := g.rules[identifier]
		if !ok {
			return errUnknownRule(identifier)
		}
		pairs = append(pairs, pair{sc, a})
	}
	for _, p := range pairs {
		p.sc.WithAction(p.a)
	}
	return nil
}

// String renders each installed rule as "name = <expr>" from the scanner
// graph it holds, not from the stored IR. Built-in primitives and
// all-literal choices render by a name ("Integer", "Spacing",
// "LiteralSet", ...), so reading the result back with Read does not in
// general reproduce the same grammar.
func (g *Grammar) String() string {
	var b strings.Builder
	for i, name := range g.order {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(name)
		b.WriteString(" = ")
		b.WriteString(g.rules[name].String())
	}
	return b.String()
}
