package grammarian

// node is the closed intermediate representation a grammar-definition
// reader produces and compile folds into a Scanner graph. It stands in
// for the source library's untyped (tag, payload...) tuple: Go has no ad
// hoc tuple type, so every tag's payload gets its own typed field instead
// of a generic slot, and compile switches on tag exhaustively the same
// way the Python original's _make_scanner switches on a[0].
type node struct {
	tag string

	str       string // Literal, CharacterClass, Regex, Nonterminal
	child     *node  // Group, Lookahead, NegativeLookahead, ZeroOrMore, OneOrMore, Optional, Repeat
	items     []*node // Sequence, Choice
	min, max  int      // Repeat
	delimiter *node    // Repeat, optional
}

func leaf(tag, str string) *node { return &node{tag: tag, str: str} }
func unary(tag string, child *node) *node { return &node{tag: tag, child: child} }

// list builds a Sequence or Choice node, collapsing a singleton list to
// its sole member, grammarian/io.py's and textpy/io.py's "minor
// optimization" in _make_list.
func list(tag string, items []*node) *node {
	if len(items) == 0 {
		if tag == "Choice" {
			panic(errEmptyChoice())
		}
		panic(errEmptySequence())
	}
	if len(items) == 1 {
		return items[0]
	}
	return &node{tag: tag, items: items}
}

// compile folds an IR node into a Scanner, the Go rendering of
// textpy.grammars.Grammar._make_scanner. An unrecognized tag can only
// arise from a bug in this package's own readers, since node values are
// never constructed outside compile's callers.
func compile(g *Grammar, n *node) (Scanner, error) {
	switch n.tag {
	case "Dot":
		return Dot(), nil
	case "Literal":
		return Literal(n.str), nil
	case "CharacterClass":
		return CharacterClass(n.str), nil
	case "Regex":
		return Regex(n.str), nil
	case "Group":
		child, err := compile(g, n.child)
		if err != nil {
			return Scanner{}, err
		}
		return Group(child), nil
	case "Nonterminal":
		return g.Nonterminal(n.str), nil
	case "Lookahead":
		child, err := compile(g, n.child)
		if err != nil {
			return Scanner{}, err
		}
		return Lookahead(child), nil
	case "NegativeLookahead":
		child, err := compile(g, n.child)
		if err != nil {
			return Scanner{}, err
		}
		return NegativeLookahead(child), nil
	case "ZeroOrMore":
		child, err := compile(g, n.child)
		if err != nil {
			return Scanner{}, err
		}
		return Repeat(child, 0, -1, nil), nil
	case "OneOrMore":
		child, err := compile(g, n.child)
		if err != nil {
			return Scanner{}, err
		}
		return Repeat(child, 1, -1, nil), nil
	case "Optional":
		child, err := compile(g, n.child)
		if err != nil {
			return Scanner{}, err
		}
		return Optional(child, UseZeroValueDefault), nil
	case "Repeat":
		child, err := compile(g, n.child)
		if err != nil {
			return Scanner{}, err
		}
		var delim *Scanner
		if n.delimiter != nil {
			d, err := compile(g, n.delimiter)
			if err != nil {
				return Scanner{}, err
			}
			delim = &d
		}
		return Repeat(child, n.min, n.max, delim), nil
	case "Sequence":
		children, err := compileAll(g, n.items)
		if err != nil {
			return Scanner{}, err
		}
		return Sequence(children...), nil
	case "Choice":
		children, err := compileAll(g, n.items)
		if err != nil {
			return Scanner{}, err
		}
		if allLiterals(n.items) {
			lits := make([]string, len(n.items))
			for i, c := range n.items {
				lits[i] = c.str
			}
			return LiteralSet(lits...), nil
		}
		return Choice(children...), nil
	default:
		return Scanner{}, errUnknownTag(n.tag)
	}
}

func compileAll(g *Grammar, ns []*node) ([]Scanner, error) {
	out := make([]Scanner, len(ns))
	for i, c := range ns {
		sc, err := compile(g, c)
		if err != nil {
			return nil, err
		}
		out[i] = sc
	}
	return out, nil
}

func allLiterals(ns []*node) bool {
	for _, n := range ns {
		if n.tag != "Literal" {
			return false
		}
	}
	return true
}
